// Package sys provides system utilities with the same API across Unix
// flavors.
//
// The subpackage eunix provides the termios and polling primitives.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// IsATTY determines whether the given file is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// WinSize queries the size of the terminal referenced by the given file. It
// returns an error when the file is not a terminal or the terminal does not
// know its size.
func WinSize(file *os.File) (rows, cols int, err error) {
	cols, rows, err = term.GetSize(int(file.Fd()))
	return rows, cols, err
}
