//go:build unix

// Package eunix provides Unix-specific terminal utilities.
package eunix

import (
	"golang.org/x/sys/unix"
)

// Termios represents terminal attributes.
type Termios unix.Termios

// TermiosForFd returns the terminal attributes of the given file descriptor.
func TermiosForFd(fd int) (*Termios, error) {
	term, err := unix.IoctlGetTermios(fd, getAttrIOCTL)
	return (*Termios)(term), err
}

// ApplyToFd applies term to the given file descriptor.
func (term *Termios) ApplyToFd(fd int) error {
	return unix.IoctlSetTermios(fd, setAttrFlushIOCTL, (*unix.Termios)(term))
}

// Copy returns a copy of term.
func (term *Termios) Copy() *Termios {
	v := *term
	return &v
}

// SetRaw turns off everything that stands between the keyboard and the
// reader: echo, line buffering, signal generating keys, extended input
// processing, CR-to-NL translation, flow control, parity checks, 8th bit
// stripping and output post-processing. Characters are set to 8 bits.
func (term *Termios) SetRaw() {
	term.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	term.Oflag &^= unix.OPOST
	term.Cflag |= unix.CS8
	term.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
}

// SetVMin sets the minimal number of bytes a read waits for.
func (term *Termios) SetVMin(v uint8) {
	term.Cc[unix.VMIN] = v
}

// SetVTime sets the read timeout, in tenths of a second.
func (term *Termios) SetVTime(v uint8) {
	term.Cc[unix.VTIME] = v
}

// IsRaw reports whether echo and canonical mode are both off.
func (term *Termios) IsRaw() bool {
	return term.Lflag&(unix.ECHO|unix.ICANON) == 0
}
