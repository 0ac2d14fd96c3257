//go:build unix

package term

import (
	"strings"
	"testing"

	"github.com/creack/pty"
	"src.elv.sh/kilo/pkg/sys/eunix"
)

func TestSetup(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	var out strings.Builder
	restore, err := Setup(tty, &out)
	if err != nil {
		t.Fatal("Setup:", err)
	}
	if termios, _ := eunix.TermiosForFd(int(tty.Fd())); !termios.IsRaw() {
		t.Errorf("terminal not raw after Setup")
	}

	if err := restore(); err != nil {
		t.Error("restore:", err)
	}
	if termios, _ := eunix.TermiosForFd(int(tty.Fd())); termios.IsRaw() {
		t.Errorf("terminal still raw after restore")
	}
	if out.String() != clearScreen {
		t.Errorf("restore wrote %q, want %q", out.String(), clearScreen)
	}
}

func TestSetup_NotATerminal(t *testing.T) {
	r, w := pipe(t)
	if _, err := Setup(r, w); err == nil {
		t.Errorf("Setup on a pipe returns nil error")
	}
}

func TestTTY_Size(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer ptmx.Close()
	defer tty.Close()
	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 30, Cols: 100}); err != nil {
		t.Skip("cannot set pty size:", err)
	}

	tt, err := NewTTY(tty, tty)
	if err != nil {
		t.Fatal(err)
	}
	defer tt.Close()
	rows, cols, err := tt.Size()
	if rows != 30 || cols != 100 || err != nil {
		t.Errorf("got (%v, %v, %v), want (30, 100, nil)", rows, cols, err)
	}
}

func TestTTY_Size_FallsBackToCursorPosition(t *testing.T) {
	r, w := pipe(t)
	outR, outW := pipe(t)
	tt, err := NewTTY(r, outW)
	if err != nil {
		t.Fatal(err)
	}
	defer tt.Close()

	w.WriteString("\x1b[24;80R")
	rows, cols, err := tt.Size()
	if rows != 24 || cols != 80 || err != nil {
		t.Errorf("got (%v, %v, %v), want (24, 80, nil)", rows, cols, err)
	}

	outW.Close()
	want := cursorToCorner + requestCursorPosition
	buf := make([]byte, 64)
	n, _ := outR.Read(buf)
	if got := string(buf[:n]); got != want {
		t.Errorf("wrote %q, want %q", got, want)
	}
}

func TestTTY_Write(t *testing.T) {
	r, w := pipe(t)
	tt, err := NewTTY(r, w)
	if err != nil {
		t.Fatal(err)
	}
	defer tt.Close()

	if err := tt.Write([]byte("frame")); err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 16)
	n, _ := r.Read(buf)
	if string(buf[:n]) != "frame" {
		t.Errorf("got %q, want %q", buf[:n], "frame")
	}
}
