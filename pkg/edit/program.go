package edit

import (
	"errors"
	"os"

	"src.elv.sh/kilo/pkg/prog"
	"src.elv.sh/kilo/pkg/sys"
	"src.elv.sh/kilo/pkg/term"
)

// Program is the editor subprogram. It takes at most one argument, the file
// to edit.
var Program prog.Program = program{}

type program struct{}

var errNotTerminal = errors.New("standard input and output must be a terminal")

func (program) Run(fds [3]*os.File, _ *prog.Flags, args []string) error {
	if len(args) > 1 {
		return prog.BadUsage("at most one file can be edited")
	}
	in, out := fds[0], fds[1]
	if !sys.IsATTY(in.Fd()) || !sys.IsATTY(out.Fd()) {
		return errNotTerminal
	}

	restore, err := term.Setup(in, out)
	if err != nil {
		return err
	}
	defer func() {
		if errRestore := restore(); errRestore != nil {
			logger.Println("restore terminal:", errRestore)
		}
	}()

	tty, err := term.NewTTY(in, out)
	if err != nil {
		return err
	}
	defer tty.Close()

	resize, stopResize := sys.NotifyResize()
	defer stopResize()

	ed, err := NewEditor(tty, resize)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		if err := ed.Open(args[0]); err != nil {
			return err
		}
	}
	err = ed.Run()
	if err != nil {
		logger.Println("editor exited with error:", err)
	}
	return err
}
