package edit

import (
	"io"
	"testing"
	"time"

	"src.elv.sh/kilo/pkg/term"
	"src.elv.sh/kilo/pkg/ui"
)

// A key that makes fakeTTY.ReadKey time out.
const timeout ui.Key = -1

// A TTY that replays keys and records frames.
type fakeTTY struct {
	keys          []ui.Key
	frames        [][]byte
	height, width int
	sizeErr       error
	// Called when a timeout key is read.
	onTimeout func()
}

func (t *fakeTTY) ReadKey() (ui.Key, error) {
	if len(t.keys) == 0 {
		return 0, io.EOF
	}
	k := t.keys[0]
	t.keys = t.keys[1:]
	if k == timeout {
		if t.onTimeout != nil {
			t.onTimeout()
		}
		return 0, term.ErrTimeout
	}
	return k, nil
}

func (t *fakeTTY) Write(frame []byte) error {
	t.frames = append(t.frames, append([]byte(nil), frame...))
	return nil
}

func (t *fakeTTY) Size() (int, int, error) {
	return t.height, t.width, t.sizeErr
}

func (t *fakeTTY) lastFrame() string {
	if len(t.frames) == 0 {
		return ""
	}
	return string(t.frames[len(t.frames)-1])
}

// feed appends keys. Strings are typed byte by byte.
func (t *fakeTTY) feed(items ...any) {
	for _, item := range items {
		switch item := item.(type) {
		case ui.Key:
			t.keys = append(t.keys, item)
		case string:
			for i := 0; i < len(item); i++ {
				t.keys = append(t.keys, ui.Key(item[i]))
			}
		default:
			panic("bad item")
		}
	}
}

var t0 = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

// setup returns an Editor on a 24x80 fakeTTY, with a document made of the
// given lines and a clock stopped at t0.
func setup(t *testing.T, lines ...string) (*Editor, *fakeTTY) {
	t.Helper()
	tty := &fakeTTY{height: 24, width: 80}
	e, err := NewEditor(tty, nil)
	if err != nil {
		t.Fatal("NewEditor:", err)
	}
	e.now = func() time.Time { return t0 }
	e.store.Load(lines)
	return e, tty
}

// press handles each key in turn, failing the test on errors.
func press(t *testing.T, e *Editor, keys ...ui.Key) {
	t.Helper()
	for _, k := range keys {
		if err := e.handleKey(k); err != nil {
			t.Fatalf("handleKey(%v): %v", k, err)
		}
	}
}
