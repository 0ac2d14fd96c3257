// Kilo is a small full-screen text editor for VT100-compatible terminals.
package main

import (
	"os"

	"src.elv.sh/kilo/pkg/buildinfo"
	"src.elv.sh/kilo/pkg/edit"
	"src.elv.sh/kilo/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, edit.Program)))
}
