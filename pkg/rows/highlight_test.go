package rows

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const (
	N = Normal
	D = Number
)

var highlightTests = []struct {
	text string
	want []Class
}{
	// Digits glued to a word are part of an identifier.
	{"ab12.3cd", []Class{N, N, N, N, N, N, N, N}},
	{"a 12.3cd", []Class{N, N, D, D, D, D, N, N}},
	{"12", []Class{D, D}},
	{"x=1.5;", []Class{N, N, D, D, D, N}},
	// A digit after a letter does not start a number.
	{"a1", []Class{N, N}},
	// A '.' only continues a number.
	{".5", []Class{N, D}},
	{"1..2", []Class{D, D, D, D}},
	{"(42)", []Class{N, D, D, N}},
	{"-7", []Class{N, D}},
	{"a 7", []Class{N, N, D}},
	{"f(x[3])", []Class{N, N, N, N, D, N, N}},
	{"\x003", []Class{N, D}},
	{"", []Class{}},
}

func TestHighlight(t *testing.T) {
	for _, test := range highlightTests {
		var s Store
		s.InsertRow(0, []byte(test.text))
		if diff := cmp.Diff(test.want, s.Classes(0)); diff != "" {
			t.Errorf("classes of %q (-want +got):\n%s", test.text, diff)
		}
	}
}

func TestHighlight_TabIsSeparator(t *testing.T) {
	var s Store
	s.InsertRow(0, []byte("a\t9"))
	classes := s.Classes(0)
	if len(classes) != 9 || classes[8] != Number {
		t.Errorf("got %v, want 8 Normal cells followed by one Number", classes)
	}
}
