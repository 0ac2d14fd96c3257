package ui

import (
	"testing"

	"src.elv.sh/kilo/pkg/tt"
)

func TestCtrl(t *testing.T) {
	tt.Test(t, tt.Fn("Ctrl", Ctrl), tt.Table{
		tt.Args(byte('q')).Rets(Key(0x11)),
		tt.Args(byte('Q')).Rets(Key(0x11)),
		tt.Args(byte('s')).Rets(Key(0x13)),
		tt.Args(byte('_')).Rets(Key(0x1f)),
	})
}

func TestKey_String(t *testing.T) {
	tt.Test(t, tt.Fn("Key.String", Key.String), tt.Table{
		tt.Args(Key('a')).Rets("a"),
		tt.Args(Enter).Rets("Enter"),
		tt.Args(Escape).Rets("Escape"),
		tt.Args(Backspace).Rets("Backspace"),
		tt.Args(Ctrl('q')).Rets("Ctrl-Q"),
		tt.Args(ArrowUp).Rets("Up"),
		tt.Args(PageDown).Rets("PageDown"),
		tt.Args(Key(0xe9)).Rets(`\xe9`),
	})
}

func TestParseKey_RoundTrip(t *testing.T) {
	keys := []Key{'a', ' ', '~', Enter, Escape, Backspace, Tab,
		Ctrl('a'), Ctrl('q'), Ctrl('_'), 0,
		ArrowLeft, ArrowRight, ArrowUp, ArrowDown,
		Delete, Home, End, PageUp, PageDown, 0x80, 0xff}
	for _, k := range keys {
		got, err := ParseKey(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKey(%q) -> (%v, %v), want (%v, nil)", k.String(), got, err, k)
		}
	}
}

func TestParseKey_Bad(t *testing.T) {
	for _, s := range []string{"", "Ctrl-", "Hyper-x", "\\xzz"} {
		if _, err := ParseKey(s); err == nil {
			t.Errorf("ParseKey(%q) returns nil error", s)
		}
	}
}
