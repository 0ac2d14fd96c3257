package term

import (
	"os"
	"testing"

	"src.elv.sh/kilo/pkg/must"
)

func pipe(t *testing.T) (*os.File, *os.File) {
	r, w := must.Pipe()
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	return r, w
}
