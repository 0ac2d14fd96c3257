package view

import (
	"testing"

	. "src.elv.sh/kilo/pkg/tt"
)

func TestCxToRx(t *testing.T) {
	Test(t, Fn("CxToRx", CxToRx), Table{
		Args([]byte("abc"), 0).Rets(0),
		Args([]byte("abc"), 2).Rets(2),
		Args([]byte("\tx"), 1).Rets(8),
		Args([]byte("\tx"), 2).Rets(9),
		Args([]byte("abc\tx"), 4).Rets(8),
		Args([]byte("abcdefgh\t"), 9).Rets(16),
		Args([]byte("a\t\tb"), 3).Rets(16),
		// Offsets past the end stop at the end.
		Args([]byte("ab"), 5).Rets(2),
	})
}

func TestRxToCx(t *testing.T) {
	Test(t, Fn("RxToCx", RxToCx), Table{
		Args([]byte("abc"), 1).Rets(1),
		Args([]byte("\tx"), 8).Rets(1),
		// Columns inside a tab map to the tab.
		Args([]byte("\tx"), 0).Rets(0),
		Args([]byte("\tx"), 5).Rets(0),
		Args([]byte("abc\tx"), 8).Rets(4),
		Args([]byte("abc"), 10).Rets(3),
		Args([]byte(""), 0).Rets(0),
	})
}

func TestCxRxRoundTrip(t *testing.T) {
	lines := []string{"", "plain", "\tlead", "mid\tdle", "a\t\tb", "x\t1.5\ty"}
	for _, line := range lines {
		chars := []byte(line)
		for cx := 0; cx < len(chars); cx++ {
			if got := RxToCx(chars, CxToRx(chars, cx)); got != cx {
				t.Errorf("%q: RxToCx(CxToRx(%d)) = %d", line, cx, got)
			}
		}
	}
}

func TestSetSize(t *testing.T) {
	var v Viewport
	v.SetSize(24, 80)
	if v.Rows != 22 || v.Cols != 80 {
		t.Errorf("got %dx%d, want 22x80", v.Rows, v.Cols)
	}
	v.SetSize(1, 10)
	if v.Rows != 0 {
		t.Errorf("got %d rows, want 0", v.Rows)
	}
}

func TestScroll_Vertical(t *testing.T) {
	v := Viewport{Rows: 10, Cols: 80}
	v.Scroll(25, 0)
	if v.RowOff != 16 {
		t.Errorf("after moving to row 25, RowOff = %d, want 16", v.RowOff)
	}
	v.Scroll(20, 0)
	if v.RowOff != 16 {
		t.Errorf("moving within the screen changed RowOff to %d", v.RowOff)
	}
	v.Scroll(3, 0)
	if v.RowOff != 3 {
		t.Errorf("after moving to row 3, RowOff = %d, want 3", v.RowOff)
	}
}

func TestScroll_Horizontal(t *testing.T) {
	v := Viewport{Rows: 10, Cols: 20}
	v.Scroll(0, 30)
	if v.ColOff != 11 {
		t.Errorf("ColOff = %d, want 11", v.ColOff)
	}
	v.Scroll(0, 5)
	if v.ColOff != 5 {
		t.Errorf("ColOff = %d, want 5", v.ColOff)
	}
}
