// Package ui defines the logical keys that the terminal reader produces and
// the editor consumes.
package ui

import "fmt"

// Key is a logical key. Values below 256 are the bytes read from the
// terminal, passed through unchanged. Values from 1000 on are function keys
// decoded from escape sequences.
type Key int

// Bytes with a name.
const (
	Tab       Key = '\t'
	Enter     Key = '\r'
	Escape    Key = 0x1b
	Backspace Key = 0x7f
)

// Function keys.
const (
	ArrowLeft Key = iota + 1000
	ArrowRight
	ArrowUp
	ArrowDown
	Delete
	Home
	End
	PageUp
	PageDown
)

// Ctrl returns the key produced by holding Ctrl while typing c, which clears
// the upper 3 bits of c.
func Ctrl(c byte) Key {
	return Key(c & 0x1f)
}

// IsPrintable reports whether k is a printable ASCII byte.
func (k Key) IsPrintable() bool {
	return 0x20 <= k && k < 0x7f
}

var keyNames = map[Key]string{
	Tab: "Tab", Enter: "Enter", Escape: "Escape", Backspace: "Backspace",

	ArrowLeft: "Left", ArrowRight: "Right", ArrowUp: "Up", ArrowDown: "Down",
	Delete: "Delete", Home: "Home", End: "End",
	PageUp: "PageUp", PageDown: "PageDown",
}

// String returns the name of a named key, "Ctrl-X" for other control bytes,
// the character itself for printable bytes and a hex escape otherwise.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	switch {
	case k == 0:
		return "Ctrl-@"
	case k < 0x20:
		return "Ctrl-" + string(rune(k+0x40))
	case k.IsPrintable():
		return string(rune(k))
	case k < 0x100:
		return fmt.Sprintf("\\x%02x", int(k))
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// ParseKey parses the output of String back into a Key.
func ParseKey(s string) (Key, error) {
	for k, name := range keyNames {
		if s == name {
			return k, nil
		}
	}
	switch {
	case len(s) == 1:
		return Key(s[0]), nil
	case len(s) == 6 && s[:5] == "Ctrl-" && '@' <= s[5] && s[5] <= '_':
		return Ctrl(s[5]), nil
	}
	var b int
	if _, err := fmt.Sscanf(s, "\\x%02x", &b); err == nil && b < 0x100 {
		return Key(b), nil
	}
	return 0, fmt.Errorf("bad key: %q", s)
}
