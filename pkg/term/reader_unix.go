//go:build unix

package term

import (
	"fmt"

	"src.elv.sh/kilo/pkg/ui"
)

// reader decodes the bytes of a terminal into keys.
type reader struct {
	fr fileReader
}

func (rd *reader) ReadKey() (ui.Key, error) {
	return readKey(rd.fr)
}

func (rd *reader) ReadCursorPosition() (row, col int, err error) {
	return readCursorPosition(rd.fr)
}

func (rd *reader) Close() {
	rd.fr.Stop()
	rd.fr.Close()
}

func readKey(rd byteReaderWithTimeout) (ui.Key, error) {
	c, err := rd.ReadByteWithTimeout(frameTimeout)
	if err != nil {
		return 0, err
	}
	if c == 0x1b {
		return readEscapeSeq(rd), nil
	}
	return ui.Key(c), nil
}

// readEscapeSeq decodes what follows an ESC. Terminals send the whole
// sequence at once, so running out of bytes means the user pressed Escape
// itself. Sequences not listed in the tables below also decode as Escape; the
// bytes already consumed are lost.
func readEscapeSeq(rd byteReaderWithTimeout) ui.Key {
	var seq []byte
	next := func() bool {
		b, err := rd.ReadByteWithTimeout(keySeqTimeout)
		if err != nil {
			return false
		}
		seq = append(seq, b)
		return true
	}

	if !next() || !next() {
		return ui.Escape
	}
	switch seq[0] {
	case '[':
		if '0' <= seq[1] && seq[1] <= '9' {
			// \e[5~ and friends: one more byte.
			if !next() {
				return ui.Escape
			}
			if k, ok := csiSeqTilde[seq[1]]; ok && seq[2] == '~' {
				return k
			}
		} else if k, ok := csiSeqByLast[seq[1]]; ok {
			return k
		}
	case 'O':
		if k, ok := g3Seq[seq[1]]; ok {
			return k
		}
	}
	logger.Printf("unrecognized escape sequence %q", "\x1b"+string(seq))
	return ui.Escape
}

// Tables for key sequences. Comments document which terminal emulators are
// known to generate which sequences.

// CSI-style sequences identified by the last byte, like \e[A for Up.
var csiSeqByLast = map[byte]ui.Key{
	// xterm, urxvt, tmux
	'A': ui.ArrowUp, 'B': ui.ArrowDown, 'C': ui.ArrowRight, 'D': ui.ArrowLeft,
	// xterm (Windows Terminal, VS Code)
	'H': ui.Home, 'F': ui.End,
}

// CSI-style sequences with one digit, ending in '~', like \e[3~ for Delete.
var csiSeqTilde = map[byte]ui.Key{
	// tmux
	'1': ui.Home, '4': ui.End,
	// xterm, urxvt, tmux
	'3': ui.Delete,
	'5': ui.PageUp, '6': ui.PageDown,
	// urxvt
	'7': ui.Home, '8': ui.End,
}

// G3-style sequences: \eO followed by exactly one byte.
var g3Seq = map[byte]ui.Key{
	// xterm in application cursor mode
	'H': ui.Home, 'F': ui.End,
}

// maxCPRLen bounds the length of a cursor position report.
const maxCPRLen = 32

// readCursorPosition reads a report of the form \e[row;colR.
func readCursorPosition(rd byteReaderWithTimeout) (row, col int, err error) {
	var buf []byte
	for len(buf) < maxCPRLen-1 {
		b, err := rd.ReadByteWithTimeout(cprTimeout)
		if err != nil {
			return 0, 0, fmt.Errorf("read cursor position: %w", err)
		}
		if b == 'R' {
			break
		}
		buf = append(buf, b)
	}
	return parseCPR(buf)
}

// parseCPR parses the part of a cursor position report before the final 'R'.
func parseCPR(buf []byte) (row, col int, err error) {
	if len(buf) < 2 || buf[0] != 0x1b || buf[1] != '[' {
		return 0, 0, cprError{"bad cursor position report", buf}
	}
	if _, err := fmt.Sscanf(string(buf[2:]), "%d;%d", &row, &col); err != nil {
		return 0, 0, cprError{"bad cursor position report", buf}
	}
	return row, col, nil
}
