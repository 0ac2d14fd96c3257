package term

import (
	"fmt"
	"io"
	"os"

	"src.elv.sh/kilo/pkg/sys"
	"src.elv.sh/kilo/pkg/ui"
)

const (
	clearScreen = "\033[2J\033[H"
	// Moves the cursor as far right and down as the terminal allows.
	cursorToCorner = "\033[999C\033[999B"
	// Device status report request, answered by \e[row;colR.
	requestCursorPosition = "\033[6n"
)

// TTY is a terminal opened for full-screen editing.
type TTY struct {
	in, out *os.File
	r       Reader
}

// NewTTY returns a TTY that reads keys from in and writes frames to out.
func NewTTY(in, out *os.File) (*TTY, error) {
	r, err := NewReader(in)
	if err != nil {
		return nil, err
	}
	return &TTY{in, out, r}, nil
}

// ReadKey reads one key; see Reader.
func (t *TTY) ReadKey() (ui.Key, error) {
	return t.r.ReadKey()
}

// Write writes a whole frame with a single write call, so that the terminal
// never shows a half-drawn screen.
func (t *TTY) Write(frame []byte) error {
	_, err := t.out.Write(frame)
	return err
}

// Size returns the number of rows and columns of the terminal. If the
// terminal can't tell, it moves the cursor to the bottom right corner and
// asks where it ended up.
func (t *TTY) Size() (rows, cols int, err error) {
	rows, cols, err = sys.WinSize(t.out)
	if err == nil && cols > 0 {
		return rows, cols, nil
	}
	logger.Printf("window size query failed (%v), asking for cursor position", err)
	return querySizeByCursor(t.out, t.r)
}

// Close releases the reader. It does not close the files.
func (t *TTY) Close() {
	t.r.Close()
}

func querySizeByCursor(out io.Writer, r Reader) (rows, cols int, err error) {
	if _, err := io.WriteString(out, cursorToCorner+requestCursorPosition); err != nil {
		return 0, 0, fmt.Errorf("request cursor position: %w", err)
	}
	return r.ReadCursorPosition()
}
