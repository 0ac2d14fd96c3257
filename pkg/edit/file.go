package edit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"src.elv.sh/kilo/pkg/errutil"
)

// Open loads the named file into the editor, replacing the document. A file
// that doesn't exist yet gives an empty document that is saved under the
// name.
func (e *Editor) Open(name string) error {
	e.filename = name
	lines, err := readLines(name)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Printf("%s does not exist, starting with an empty document", name)
		lines = nil
	} else if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	e.store.Load(lines)
	e.cx, e.cy = 0, 0
	e.view.RowOff, e.view.ColOff = 0, 0
	logger.Printf("opened %s, %d lines", name, len(lines))
	return nil
}

// readLines reads the lines of a file, without the line terminators. Both
// "\n" and "\r\n" end a line.
func readLines(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			lines = append(lines, trimEOL(line))
		}
		if err == io.EOF {
			return lines, nil
		} else if err != nil {
			return nil, err
		}
	}
}

func trimEOL(line string) string {
	n := len(line)
	for n > 0 && (line[n-1] == '\n' || line[n-1] == '\r') {
		n--
	}
	return line[:n]
}

// save writes the document to its file, asking for a file name first if
// there is none. Failures are reported in the message bar; only a terminal
// failure while prompting is returned.
func (e *Editor) save() error {
	if e.filename == "" {
		name, ok, err := e.prompt("Save as: %s (ESC to cancel)", nil)
		if err != nil {
			return err
		}
		if !ok {
			e.setStatus("Save aborted")
			return nil
		}
		e.filename = name
	}

	buf := e.store.Bytes()
	if err := writeFile(e.filename, buf); err != nil {
		logger.Printf("save %s: %v", e.filename, err)
		e.setStatus("Can't save! I/O error: %s", err)
		return nil
	}
	e.store.ClearDirty()
	logger.Printf("saved %s, %d bytes", e.filename, len(buf))
	e.setStatus("%d bytes written to disk", len(buf))
	return nil
}

// writeFile replaces the content of the named file with data, using a single
// write.
func writeFile(name string, data []byte) (err error) {
	f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	defer func() { err = errutil.Multi(err, f.Close()) }()

	if err := f.Truncate(int64(len(data))); err != nil {
		return err
	}
	n, err := f.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	return err
}
