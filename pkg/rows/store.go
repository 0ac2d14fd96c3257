package rows

import "strings"

// Store is the ordered sequence of rows of a document. Row i always has
// Idx() == i.
//
// Positions that are out of range make the editing methods no-ops; they never
// fail.
type Store struct {
	rows  []Row
	dirty int
}

// NumRows returns the number of rows.
func (s *Store) NumRows() int { return len(s.rows) }

// Row returns row y, or nil if y is out of range. The pointer is invalidated
// by InsertRow and DeleteRow.
func (s *Store) Row(y int) *Row {
	if y < 0 || y >= len(s.rows) {
		return nil
	}
	return &s.rows[y]
}

// Dirty returns the number of modifications since the last load or save. It
// is zero when the document is unmodified.
func (s *Store) Dirty() int { return s.dirty }

// ClearDirty marks the document as unmodified.
func (s *Store) ClearDirty() { s.dirty = 0 }

// Load replaces the content of the store with the given lines and marks it
// unmodified.
func (s *Store) Load(lines []string) {
	s.rows = make([]Row, 0, len(lines))
	for _, line := range lines {
		s.InsertRow(len(s.rows), []byte(line))
	}
	s.dirty = 0
}

// Lines returns the content of every row.
func (s *Store) Lines() []string {
	lines := make([]string, len(s.rows))
	for i := range s.rows {
		lines[i] = string(s.rows[i].chars)
	}
	return lines
}

// Bytes flattens the document into one buffer, terminating every row with
// '\n'.
func (s *Store) Bytes() []byte {
	n := 0
	for i := range s.rows {
		n += len(s.rows[i].chars) + 1
	}
	buf := make([]byte, 0, n)
	for i := range s.rows {
		buf = append(buf, s.rows[i].chars...)
		buf = append(buf, '\n')
	}
	return buf
}

// InsertRow inserts a row with the given text at position at, which may be
// equal to NumRows to append.
func (s *Store) InsertRow(at int, text []byte) {
	if at < 0 || at > len(s.rows) {
		return
	}
	s.rows = append(s.rows, Row{})
	copy(s.rows[at+1:], s.rows[at:])
	s.rows[at] = newRow(at, text)
	s.renumber(at + 1)
	s.dirty++
}

// DeleteRow deletes the row at position at.
func (s *Store) DeleteRow(at int) {
	if at < 0 || at >= len(s.rows) {
		return
	}
	copy(s.rows[at:], s.rows[at+1:])
	s.rows[len(s.rows)-1] = Row{}
	s.rows = s.rows[:len(s.rows)-1]
	s.renumber(at)
	s.dirty++
}

func (s *Store) renumber(from int) {
	for i := from; i < len(s.rows); i++ {
		s.rows[i].idx = i
	}
}

// InsertChar inserts c into row y before position at. A position outside
// [0, Size] means the end of the row.
func (s *Store) InsertChar(y, at int, c byte) {
	r := s.Row(y)
	if r == nil {
		return
	}
	if at < 0 || at > len(r.chars) {
		at = len(r.chars)
	}
	r.chars = append(r.chars, 0)
	copy(r.chars[at+1:], r.chars[at:])
	r.chars[at] = c
	r.update()
	s.dirty++
}

// DeleteChar deletes the byte at position at of row y.
func (s *Store) DeleteChar(y, at int) {
	r := s.Row(y)
	if r == nil || at < 0 || at >= len(r.chars) {
		return
	}
	r.chars = append(r.chars[:at], r.chars[at+1:]...)
	r.update()
	s.dirty++
}

// AppendString appends text to row y.
func (s *Store) AppendString(y int, text []byte) {
	r := s.Row(y)
	if r == nil {
		return
	}
	r.chars = append(r.chars, text...)
	r.update()
	s.dirty++
}

// SplitAt moves the bytes of row y from position cx on into a new row right
// below it.
func (s *Store) SplitAt(y, cx int) {
	r := s.Row(y)
	if r == nil || cx < 0 || cx > len(r.chars) {
		return
	}
	s.InsertRow(y+1, r.chars[cx:])
	// InsertRow may have moved the rows.
	r = &s.rows[y]
	r.chars = r.chars[:cx:cx]
	r.update()
}

// JoinWithPrevious appends row y to row y-1 and deletes row y. It returns the
// position in row y-1 where the appended bytes start, or -1 if nothing was
// done.
func (s *Store) JoinWithPrevious(y int) int {
	if y <= 0 || y >= len(s.rows) {
		return -1
	}
	at := len(s.rows[y-1].chars)
	s.AppendString(y-1, s.rows[y].chars)
	s.DeleteRow(y)
	return at
}

// Find returns the offset of the first occurrence of query in the render form
// of row y, or -1.
func (s *Store) Find(y int, query string) int {
	r := s.Row(y)
	if r == nil {
		return -1
	}
	return strings.Index(r.RenderString(), query)
}

// Classes returns a copy of the highlight classes of row y.
func (s *Store) Classes(y int) []Class {
	r := s.Row(y)
	if r == nil {
		return nil
	}
	classes := make([]Class, len(r.render))
	for i, c := range r.render {
		classes[i] = c.Class
	}
	return classes
}

// RestoreClasses overwrites the highlight classes of row y with saved, as
// returned by Classes. It does nothing if the lengths don't match, which
// means the row has changed since.
func (s *Store) RestoreClasses(y int, saved []Class) {
	r := s.Row(y)
	if r == nil || len(saved) != len(r.render) {
		return
	}
	for i := range r.render {
		r.render[i].Class = saved[i]
	}
}

// MarkMatch sets the class of n render cells of row y from offset from on to
// Match. The range is clipped to the row. This does not count as a
// modification.
func (s *Store) MarkMatch(y, from, n int) {
	r := s.Row(y)
	if r == nil {
		return
	}
	for i := from; i < from+n && i < len(r.render); i++ {
		if i >= 0 {
			r.render[i].Class = Match
		}
	}
}
