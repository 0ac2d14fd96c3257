// Package render composes full-screen frames of VT100 escape sequences.
package render

import (
	"bytes"
	"fmt"
	"time"

	"src.elv.sh/kilo/pkg/rows"
	"src.elv.sh/kilo/pkg/view"
)

// MessageLifetime is how long a status message stays on the message bar.
const MessageLifetime = 5 * time.Second

// Escape sequences used in frames.
const (
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
	cursorHome  = "\033[H"
	eraseLine   = "\033[K"
	reverse     = "\033[7m"
	resetStyle  = "\033[m"
	resetColor  = "\033[39m"
	lineEnd     = eraseLine + "\r\n"
	noName      = "[No Name]"
	modified    = "(modified)"
	placeholder = "~"
)

// Screen is everything a frame depends on.
type Screen struct {
	Store *rows.Store
	View  view.Viewport
	// Cursor, as document row and render column.
	Cy, Rx int

	Filename string
	Message  string
	// When Message was set.
	MessageTime time.Time
	// Current time, compared against MessageTime.
	Now time.Time
	// Shown in the welcome banner.
	Version string
}

// Render returns the frame for s. The same Screen always renders to the same
// bytes.
func Render(s *Screen) []byte {
	var buf bytes.Buffer
	buf.WriteString(hideCursor)
	buf.WriteString(cursorHome)
	drawRows(&buf, s)
	drawStatusBar(&buf, s)
	drawMessageBar(&buf, s)
	fmt.Fprintf(&buf, "\033[%d;%dH", s.Cy-s.View.RowOff+1, s.Rx-s.View.ColOff+1)
	buf.WriteString(showCursor)
	return buf.Bytes()
}

// Color returns the SGR foreground color of a highlight class.
func Color(c rows.Class) int {
	switch c {
	case rows.Number:
		return 31
	case rows.Match:
		return 34
	default:
		return 37
	}
}

func drawRows(buf *bytes.Buffer, s *Screen) {
	v := &s.View
	numRows := s.Store.NumRows()
	for y := 0; y < v.Rows; y++ {
		fileRow := y + v.RowOff
		if fileRow >= numRows {
			if numRows == 0 && y == v.Rows/3 {
				drawBanner(buf, s)
			} else {
				buf.WriteString(placeholder)
			}
		} else {
			drawCells(buf, s.Store.Row(fileRow).Render(), v.ColOff, v.Cols)
		}
		buf.WriteString(lineEnd)
	}
}

func drawBanner(buf *bytes.Buffer, s *Screen) {
	cols := s.View.Cols
	welcome := fmt.Sprintf("Kilo editor -- version %s", s.Version)
	if len(welcome) > cols {
		welcome = welcome[:cols]
	}
	padding := (cols - len(welcome)) / 2
	if padding > 0 {
		buf.WriteString(placeholder)
		padding--
	}
	for ; padding > 0; padding-- {
		buf.WriteByte(' ')
	}
	buf.WriteString(welcome)
}

// drawCells writes cells [off, off+n), switching colors only when the color
// changes between adjacent cells.
func drawCells(buf *bytes.Buffer, cells []rows.Cell, off, n int) {
	if off > len(cells) {
		off = len(cells)
	}
	cells = cells[off:]
	if len(cells) > n {
		cells = cells[:n]
	}
	current := -1
	for _, cell := range cells {
		if color := Color(cell.Class); color != current {
			fmt.Fprintf(buf, "\033[%dm", color)
			current = color
		}
		buf.WriteByte(cell.Byte)
	}
	buf.WriteString(resetColor)
}

func drawStatusBar(buf *bytes.Buffer, s *Screen) {
	cols := s.View.Cols
	name := s.Filename
	if name == "" {
		name = noName
	}
	mod := ""
	if s.Store.Dirty() > 0 {
		mod = modified
	}
	status := fmt.Sprintf("%.20s - %d lines %s", name, s.Store.NumRows(), mod)
	rstatus := fmt.Sprintf("%d/%d", s.Cy+1, s.Store.NumRows())
	if len(status) > cols {
		status = status[:cols]
	}

	buf.WriteString(reverse)
	buf.WriteString(status)
	for n := len(status); n < cols; n++ {
		if cols-n == len(rstatus) {
			buf.WriteString(rstatus)
			break
		}
		buf.WriteByte(' ')
	}
	buf.WriteString(resetStyle)
	buf.WriteString("\r\n")
}

func drawMessageBar(buf *bytes.Buffer, s *Screen) {
	buf.WriteString(eraseLine)
	msg := s.Message
	if len(msg) > s.View.Cols {
		msg = msg[:s.View.Cols]
	}
	if msg != "" && s.Now.Sub(s.MessageTime) < MessageLifetime {
		buf.WriteString(msg)
	}
}
