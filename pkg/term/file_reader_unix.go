//go:build unix

package term

import (
	"os"
	"sync"
	"time"

	"golang.org/x/sys/unix"
	"src.elv.sh/kilo/pkg/sys/eunix"
)

// A helper for reading from a file.
type fileReader interface {
	byteReaderWithTimeout
	// Stop stops any outstanding read call. It blocks until the read returns.
	Stop() error
	// Close releases new resources allocated for the fileReader. It does not
	// close the underlying file.
	Close()
}

func newFileReader(file *os.File) (fileReader, error) {
	rStop, wStop, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	return &bReader{file: file, rStop: rStop, wStop: wStop}, nil
}

type bReader struct {
	file  *os.File
	rStop *os.File
	wStop *os.File
	// A mutex that is held when Read is in process.
	mutex sync.Mutex
}

func (r *bReader) ReadByteWithTimeout(timeout time.Duration) (byte, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	ready, err := eunix.WaitForRead(timeout, r.file, r.rStop)
	if err != nil {
		if err == unix.EINTR {
			// Usually SIGWINCH; give the caller a chance to look at it.
			return 0, ErrTimeout
		}
		return 0, err
	}
	if ready[1] {
		var b [1]byte
		r.rStop.Read(b[:])
		return 0, ErrStopped
	}
	if !ready[0] {
		return 0, ErrTimeout
	}
	var b [1]byte
	nr, err := r.file.Read(b[:])
	if err != nil {
		return 0, err
	}
	if nr != 1 {
		// A raw terminal with VMIN=0 may report readiness and still have
		// nothing to give.
		return 0, ErrTimeout
	}
	return b[0], nil
}

func (r *bReader) Stop() error {
	_, err := r.wStop.Write([]byte{'q'})
	r.mutex.Lock()
	//lint:ignore SA2001 We want to wait for the read to return.
	r.mutex.Unlock()
	return err
}

func (r *bReader) Close() {
	r.rStop.Close()
	r.wStop.Close()
}
