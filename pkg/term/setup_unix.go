//go:build unix

package term

import (
	"fmt"
	"io"
	"os"

	"src.elv.sh/kilo/pkg/errutil"
	"src.elv.sh/kilo/pkg/sys/eunix"
)

// Setup puts the terminal referenced by in into raw mode: no echo, no line
// buffering, no signal generating keys, no output post-processing, and reads
// that return after a tenth of a second even when nothing was typed.
//
// It returns a function that clears the screen written through out and
// restores the saved terminal attributes.
func Setup(in *os.File, out io.Writer) (restore func() error, err error) {
	// All fds pointing to the same terminal are equivalent; use the input.
	fd := int(in.Fd())
	term, err := eunix.TermiosForFd(fd)
	if err != nil {
		return nil, fmt.Errorf("can't get terminal attribute: %w", err)
	}
	savedTermios := term.Copy()

	term.SetRaw()
	term.SetVMin(0)
	term.SetVTime(1)

	if err := term.ApplyToFd(fd); err != nil {
		return nil, fmt.Errorf("can't set up terminal attribute: %w", err)
	}

	return func() error {
		_, errClear := io.WriteString(out, clearScreen)
		return errutil.Multi(errClear, savedTermios.ApplyToFd(fd))
	}, nil
}
