// Package buildinfo contains build information.
//
// The version can be overridden at build time by passing
// -ldflags "-X src.elv.sh/kilo/pkg/buildinfo.Version=value" to "go build".
package buildinfo

import (
	"fmt"
	"os"

	"src.elv.sh/kilo/pkg/prog"
)

// Version identifies the version of kilo. It is shown by -version and in the
// welcome banner.
var Version = "0.0.1"

// Program is the buildinfo subprogram. It runs when -version is given.
var Program prog.Program = program{}

type program struct{}

func (program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	if !f.Version {
		return prog.ErrNotSuitable
	}
	fmt.Fprintln(fds[1], Version)
	return nil
}
