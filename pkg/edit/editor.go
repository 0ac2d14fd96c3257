// Package edit implements the editing session: the main loop that renders a
// frame, reads a key and acts on it, together with the commands the keys are
// bound to.
package edit

import (
	"fmt"
	"time"

	"src.elv.sh/kilo/pkg/buildinfo"
	"src.elv.sh/kilo/pkg/logutil"
	"src.elv.sh/kilo/pkg/render"
	"src.elv.sh/kilo/pkg/rows"
	"src.elv.sh/kilo/pkg/term"
	"src.elv.sh/kilo/pkg/ui"
	"src.elv.sh/kilo/pkg/view"
)

var logger = logutil.GetLogger("[edit] ")

// QuitTimes is the number of extra Ctrl-Q presses needed to quit with
// unsaved changes.
const QuitTimes = 1

const helpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-/ = find"

// TTY is the terminal the editor runs on.
type TTY interface {
	// ReadKey reads a key, returning term.ErrTimeout if none arrives soon.
	ReadKey() (ui.Key, error)
	// Write writes a whole frame.
	Write(frame []byte) error
	// Size returns the size of the terminal.
	Size() (rows, cols int, err error)
}

// Editor is an editing session.
type Editor struct {
	tty TTY
	// Receives a value when the terminal has been resized. May be nil.
	resize <-chan struct{}

	store rows.Store
	// Cursor position. cx is a byte offset into row cy; cy may be
	// store.NumRows(), one past the last row. rx is derived from cx on each
	// frame.
	cx, cy, rx int
	view       view.Viewport

	filename string
	msg      string
	msgTime  time.Time

	quitTimes int
	quit      bool

	now func() time.Time
}

// NewEditor creates an Editor with an empty document, sized to the terminal.
func NewEditor(tty TTY, resize <-chan struct{}) (*Editor, error) {
	e := &Editor{tty: tty, resize: resize, quitTimes: QuitTimes, now: time.Now}
	if err := e.updateSize(); err != nil {
		return nil, err
	}
	e.setStatus(helpMessage)
	return e, nil
}

// Run runs the main loop until the user quits. It returns a non-nil error
// only when the terminal fails.
func (e *Editor) Run() error {
	for !e.quit {
		if err := e.refresh(); err != nil {
			return err
		}
		k, err := e.readKey()
		if err != nil {
			return err
		}
		if err := e.handleKey(k); err != nil {
			return err
		}
	}
	return nil
}

// readKey reads a key, handling resizes while waiting for it.
func (e *Editor) readKey() (ui.Key, error) {
	for {
		select {
		case <-e.resize:
			if err := e.handleResize(); err != nil {
				return 0, err
			}
		default:
		}
		k, err := e.tty.ReadKey()
		if term.IsReadErrorRecoverable(err) {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("read key: %w", err)
		}
		return k, nil
	}
}

func (e *Editor) handleResize() error {
	if err := e.updateSize(); err != nil {
		return err
	}
	logger.Printf("resized to %dx%d", e.view.Rows, e.view.Cols)
	if n := e.store.NumRows(); e.cy > n {
		e.cy = n
	}
	e.clampCx()
	return e.refresh()
}

func (e *Editor) updateSize() error {
	height, width, err := e.tty.Size()
	if err != nil {
		return fmt.Errorf("get window size: %w", err)
	}
	e.view.SetSize(height, width)
	return nil
}

// refresh scrolls the cursor into view and draws a frame.
func (e *Editor) refresh() error {
	e.scroll()
	frame := render.Render(&render.Screen{
		Store: &e.store, View: e.view, Cy: e.cy, Rx: e.rx,
		Filename: e.filename, Message: e.msg, MessageTime: e.msgTime,
		Now: e.now(), Version: buildinfo.Version,
	})
	if err := e.tty.Write(frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

func (e *Editor) scroll() {
	e.rx = 0
	if row := e.store.Row(e.cy); row != nil {
		e.rx = view.CxToRx(row.Chars(), e.cx)
	}
	e.view.Scroll(e.cy, e.rx)
}

func (e *Editor) setStatus(format string, args ...any) {
	e.msg = fmt.Sprintf(format, args...)
	e.msgTime = e.now()
}
