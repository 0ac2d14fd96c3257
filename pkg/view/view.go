// Package view maps cursor positions to screen columns and keeps the cursor
// inside the visible part of the document.
package view

import "src.elv.sh/kilo/pkg/rows"

// CxToRx converts a byte offset into chars to the corresponding column of the
// render form.
func CxToRx(chars []byte, cx int) int {
	rx := 0
	for j := 0; j < cx && j < len(chars); j++ {
		rx = advance(rx, chars[j])
	}
	return rx
}

// RxToCx converts a column of the render form back into a byte offset into
// chars. A column inside an expanded tab maps to the tab itself; a column
// past the end maps to len(chars).
func RxToCx(chars []byte, rx int) int {
	cur := 0
	for cx, c := range chars {
		cur = advance(cur, c)
		if cur > rx {
			return cx
		}
	}
	return len(chars)
}

func advance(rx int, c byte) int {
	if c == '\t' {
		return rx + rows.TabStop - rx%rows.TabStop
	}
	return rx + 1
}

// Reserved is the number of terminal rows taken by the status and message
// bars.
const Reserved = 2

// Viewport is the visible rectangle of the document.
type Viewport struct {
	RowOff, ColOff int
	// Size of the text area, excluding the bars.
	Rows, Cols int
}

// SetSize sets the size of the text area from the size of the terminal.
func (v *Viewport) SetSize(termRows, termCols int) {
	v.Rows = max(termRows-Reserved, 0)
	v.Cols = max(termCols, 0)
}

// Scroll adjusts the offsets so that the cursor at document row cy and render
// column rx is visible.
func (v *Viewport) Scroll(cy, rx int) {
	if cy < v.RowOff {
		v.RowOff = cy
	}
	if cy >= v.RowOff+v.Rows {
		v.RowOff = cy - v.Rows + 1
	}
	if rx < v.ColOff {
		v.ColOff = rx
	}
	if rx >= v.ColOff+v.Cols {
		v.ColOff = rx - v.Cols + 1
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
