// Package term talks to the terminal: it puts it into raw mode, decodes the
// bytes typed by the user into keys, queries its size and writes frames.
package term

import (
	"errors"
	"fmt"
	"os"
	"time"

	"src.elv.sh/kilo/pkg/logutil"
	"src.elv.sh/kilo/pkg/ui"
)

var logger = logutil.GetLogger("[term] ")

// Reader reads keys from the terminal.
type Reader interface {
	// ReadKey reads a single key. It waits at most one frame timeout for the
	// first byte and returns ErrTimeout if none arrives.
	ReadKey() (ui.Key, error)
	// ReadCursorPosition reads a cursor position report, the answer to a
	// device status report request. Positions are 1-based.
	ReadCursorPosition() (row, col int, err error)
	// Close releases resources associated with the Reader. Any outstanding
	// read will be aborted, returning ErrStopped.
	Close()
}

// ErrStopped is returned by Reader when Close is called during a read.
var ErrStopped = errors.New("stopped")

// ErrTimeout is returned by Reader when no byte arrives within the timeout.
// It is the "no key yet" signal and never fatal.
var ErrTimeout = errors.New("timed out")

// Timeout for the first byte of a key. It matches the VTIME setting of raw
// mode, so that the main loop gets control back about ten times a second.
var frameTimeout = 100 * time.Millisecond

// Timeout for bytes in escape sequences. Terminal emulators send escape
// sequences in one go, so 10ms is more than sufficient. SSH connections on a
// slow link might be problematic though.
var keySeqTimeout = 10 * time.Millisecond

// Timeout for each byte of a cursor position report.
var cprTimeout = time.Second

type byteReaderWithTimeout interface {
	// ReadByteWithTimeout reads a single byte with a timeout. A negative
	// timeout means no timeout.
	ReadByteWithTimeout(timeout time.Duration) (byte, error)
}

// NewReader creates a new Reader on the given terminal file.
func NewReader(f *os.File) (Reader, error) {
	fr, err := newFileReader(f)
	if err != nil {
		return nil, err
	}
	return &reader{fr}, nil
}

// IsReadErrorRecoverable returns whether an error returned by Reader is
// recoverable.
func IsReadErrorRecoverable(err error) bool {
	return err == ErrTimeout
}

type cprError struct {
	msg string
	seq []byte
}

func (err cprError) Error() string {
	return fmt.Sprintf("%s: %q", err.msg, err.seq)
}
