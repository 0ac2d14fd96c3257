package rows

import "strings"

// Class is the highlight class of one render cell. It selects the color the
// cell is drawn in.
type Class uint8

// Highlight classes.
const (
	Normal Class = iota
	Number
	Match
)

func (c Class) String() string {
	switch c {
	case Normal:
		return "Normal"
	case Number:
		return "Number"
	case Match:
		return "Match"
	}
	return "Class(?)"
}

const separators = ",.()+-/*=~%<>[];"

func isSeparator(c byte) bool {
	return isSpace(c) || c == 0 || strings.IndexByte(separators, c) >= 0
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// highlight classifies the cells in one forward pass. A digit is a Number
// when it starts a word or continues a Number; a '.' continues a Number.
// Anything else is Normal. This recognizes plain numeric literals and
// nothing more.
func highlight(cells []Cell) {
	prevSep := true
	for i := range cells {
		c := cells[i].Byte
		prevClass := Normal
		if i > 0 {
			prevClass = cells[i-1].Class
		}
		if (isDigit(c) && (prevSep || prevClass == Number)) || (c == '.' && prevClass == Number) {
			cells[i].Class = Number
			prevSep = false
			continue
		}
		cells[i].Class = Normal
		prevSep = isSeparator(c)
	}
}
