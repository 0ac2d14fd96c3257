// Package rows keeps the lines of the edited document.
//
// Every Row keeps two views of its line: the bytes as they are in the file,
// and a render form in which tabs are expanded and every cell carries a
// highlight class. The render form is recomputed whenever the bytes change.
package rows

// TabStop is the width of a tab stop, in columns.
const TabStop = 8

// Cell is one rendered byte and its highlight class.
type Cell struct {
	Byte  byte
	Class Class
}

// Row is one line of the document.
type Row struct {
	idx    int
	chars  []byte
	render []Cell
}

func newRow(idx int, text []byte) Row {
	r := Row{idx: idx, chars: append([]byte(nil), text...)}
	r.update()
	return r
}

// Idx returns the position of the row in its Store.
func (r *Row) Idx() int { return r.idx }

// Chars returns the bytes of the row, without a line terminator. The caller
// must not modify them.
func (r *Row) Chars() []byte { return r.chars }

// Size returns the number of bytes in the row.
func (r *Row) Size() int { return len(r.chars) }

// Render returns the rendered cells. The caller must not modify them.
func (r *Row) Render() []Cell { return r.render }

// RSize returns the number of rendered cells.
func (r *Row) RSize() int { return len(r.render) }

// RenderString returns the rendered bytes, without highlight classes.
func (r *Row) RenderString() string {
	b := make([]byte, len(r.render))
	for i, c := range r.render {
		b[i] = c.Byte
	}
	return string(b)
}

// update recomputes the render form and its highlight from chars.
func (r *Row) update() {
	tabs := 0
	for _, c := range r.chars {
		if c == '\t' {
			tabs++
		}
	}
	render := make([]Cell, 0, len(r.chars)+tabs*(TabStop-1))
	for _, c := range r.chars {
		if c == '\t' {
			render = append(render, Cell{Byte: ' '})
			for len(render)%TabStop != 0 {
				render = append(render, Cell{Byte: ' '})
			}
		} else {
			render = append(render, Cell{Byte: c})
		}
	}
	r.render = render
	highlight(r.render)
}
