package edit

import (
	"src.elv.sh/kilo/pkg/search"
	"src.elv.sh/kilo/pkg/ui"
)

func (e *Editor) handleKey(k ui.Key) error {
	switch k {
	case ui.Enter:
		e.insertNewline()

	case ui.Ctrl('Q'):
		if e.store.Dirty() > 0 && e.quitTimes > 0 {
			e.setStatus("WARNING!!! File has unsaved changes. "+
				"Press Ctrl-Q %d more times to quit.", e.quitTimes)
			e.quitTimes--
			return nil
		}
		e.quit = true
		return nil

	case ui.Ctrl('S'):
		if err := e.save(); err != nil {
			return err
		}

	case ui.ArrowUp, ui.Ctrl('P'), ui.ArrowDown, ui.Ctrl('N'),
		ui.ArrowLeft, ui.Ctrl('B'), ui.ArrowRight, ui.Ctrl('F'):
		e.moveCursor(k)

	case ui.Home, ui.Ctrl('A'):
		e.cx = 0

	case ui.End, ui.Ctrl('E'):
		if row := e.store.Row(e.cy); row != nil {
			e.cx = row.Size()
		}

	case ui.Ctrl('_'):
		if err := e.find(); err != nil {
			return err
		}

	case ui.Backspace, ui.Ctrl('H'), ui.Delete, ui.Ctrl('D'):
		if k == ui.Delete || k == ui.Ctrl('D') {
			e.moveCursor(ui.ArrowRight)
		}
		e.deleteChar()

	case ui.PageUp, ui.PageDown:
		dir := ui.ArrowUp
		if k == ui.PageUp {
			e.cy = e.view.RowOff
		} else {
			dir = ui.ArrowDown
			e.cy = min(e.view.RowOff+e.view.Rows-1, e.store.NumRows())
		}
		for i := 0; i < e.view.Rows; i++ {
			e.moveCursor(dir)
		}

	case ui.Ctrl('L'), ui.Escape:
		// Ignored.

	default:
		if k < 0x100 {
			e.insertChar(byte(k))
		}
	}
	e.quitTimes = QuitTimes
	return nil
}

// moveCursor moves the cursor one step. Moving left from the start of a row
// goes to the end of the previous one, and moving right from the end of a row
// goes to the start of the next one. The cursor can move down to one row past
// the end of the document.
func (e *Editor) moveCursor(k ui.Key) {
	row := e.store.Row(e.cy)
	switch k {
	case ui.ArrowLeft, ui.Ctrl('B'):
		if e.cx > 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = e.store.Row(e.cy).Size()
		}
	case ui.ArrowRight, ui.Ctrl('F'):
		if row != nil && e.cx < row.Size() {
			e.cx++
		} else if row != nil && e.cx == row.Size() {
			e.cy++
			e.cx = 0
		}
	case ui.ArrowUp, ui.Ctrl('P'):
		if e.cy > 0 {
			e.cy--
		}
	case ui.ArrowDown, ui.Ctrl('N'):
		if e.cy < e.store.NumRows() {
			e.cy++
		}
	}
	e.clampCx()
}

// clampCx moves the cursor to the end of its row if it is past it.
func (e *Editor) clampCx() {
	n := 0
	if row := e.store.Row(e.cy); row != nil {
		n = row.Size()
	}
	if e.cx > n {
		e.cx = n
	}
}

func (e *Editor) insertChar(c byte) {
	if e.cy == e.store.NumRows() {
		e.store.InsertRow(e.cy, nil)
	}
	e.store.InsertChar(e.cy, e.cx, c)
	e.cx++
}

func (e *Editor) insertNewline() {
	if e.cx == 0 {
		e.store.InsertRow(e.cy, nil)
	} else {
		e.store.SplitAt(e.cy, e.cx)
	}
	e.cy++
	e.cx = 0
}

// deleteChar deletes the byte before the cursor. At the start of a row, it
// joins the row with the previous one.
func (e *Editor) deleteChar() {
	if e.cy == e.store.NumRows() || (e.cx == 0 && e.cy == 0) {
		return
	}
	if e.cx > 0 {
		e.store.DeleteChar(e.cy, e.cx-1)
		e.cx--
	} else {
		e.cx = e.store.JoinWithPrevious(e.cy)
		e.cy--
	}
}

// find runs an incremental search. Every edit of the query scans again from
// the row the cursor was on when the search started. Cancelling it puts the
// cursor and the viewport back where they were.
func (e *Editor) find() error {
	savedCx, savedCy := e.cx, e.cy
	savedRowOff, savedColOff := e.view.RowOff, e.view.ColOff

	session := search.NewSession()
	_, ok, err := e.prompt("Search: %s (Use ESC/Arrows/Enter)", func(query string, k ui.Key) {
		hit, found := session.Step(&e.store, query, k, savedCy)
		if !found {
			return
		}
		e.cy, e.cx = hit.Row, hit.Cx
		// Scroll so that the hit ends up on the top row.
		e.view.RowOff = e.store.NumRows()
	})
	if err != nil {
		return err
	}
	if !ok {
		e.cx, e.cy = savedCx, savedCy
		e.view.RowOff, e.view.ColOff = savedRowOff, savedColOff
	}
	return nil
}

// prompt shows a prompt in the message bar and reads a line of input. The
// format must contain one %s verb, which is replaced by the input so far. If
// cb is not nil, it is called after every key with the input and the key.
//
// It returns the input and true when the user presses Enter with a non-empty
// input, and false when the user presses Escape.
func (e *Editor) prompt(format string, cb func(string, ui.Key)) (string, bool, error) {
	var buf []byte
	for {
		e.setStatus(format, buf)
		if err := e.refresh(); err != nil {
			return "", false, err
		}
		k, err := e.readKey()
		if err != nil {
			return "", false, err
		}
		switch {
		case k == ui.Backspace || k == ui.Delete || k == ui.Ctrl('H'):
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case k == ui.Escape:
			e.setStatus("")
			if cb != nil {
				cb(string(buf), k)
			}
			return "", false, nil
		case k == ui.Enter:
			if len(buf) > 0 {
				e.setStatus("")
				if cb != nil {
					cb(string(buf), k)
				}
				return string(buf), true, nil
			}
		case k.IsPrintable():
			buf = append(buf, byte(k))
		}
		if cb != nil {
			cb(string(buf), k)
		}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
