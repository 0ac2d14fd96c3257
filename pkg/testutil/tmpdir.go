package testutil

import (
	"os"
	"path/filepath"

	"src.elv.sh/kilo/pkg/must"
)

// TempDirer wraps the TempDir method of testing.TB.
type TempDirer interface {
	Cleanuper
	TempDir() string
}

// InTempDir creates a temporary directory, changes into it for the duration
// of a test and returns its path.
func InTempDir(t TempDirer) string {
	// Resolve symlinks, so that the result matches os.Getwd on macOS.
	dir := must.OK1(filepath.EvalSymlinks(t.TempDir()))
	oldWd := must.OK1(os.Getwd())
	must.OK(os.Chdir(dir))
	t.Cleanup(func() { must.OK(os.Chdir(oldWd)) })
	return dir
}
