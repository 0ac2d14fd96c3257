//go:build unix

package eunix

import (
	"testing"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
)

func TestTermios_SetRaw(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer ptmx.Close()
	defer tty.Close()
	fd := int(tty.Fd())

	orig, err := TermiosForFd(fd)
	if err != nil {
		t.Fatal("TermiosForFd:", err)
	}
	if orig.IsRaw() {
		t.Fatal("fresh pty is already raw")
	}

	raw := orig.Copy()
	raw.SetRaw()
	raw.SetVMin(0)
	raw.SetVTime(1)
	if err := raw.ApplyToFd(fd); err != nil {
		t.Fatal("ApplyToFd:", err)
	}

	got, err := TermiosForFd(fd)
	if err != nil {
		t.Fatal("TermiosForFd:", err)
	}
	if !got.IsRaw() {
		t.Errorf("terminal not raw after ApplyToFd")
	}
	if got.Lflag&unix.ISIG != 0 || got.Oflag&unix.OPOST != 0 {
		t.Errorf("ISIG or OPOST still set")
	}
	if got.Cc[unix.VMIN] != 0 || got.Cc[unix.VTIME] != 1 {
		t.Errorf("got VMIN=%d VTIME=%d, want 0 and 1", got.Cc[unix.VMIN], got.Cc[unix.VTIME])
	}

	if err := orig.ApplyToFd(fd); err != nil {
		t.Fatal("restore:", err)
	}
	if restored, _ := TermiosForFd(fd); restored.IsRaw() {
		t.Errorf("terminal still raw after restore")
	}
}
