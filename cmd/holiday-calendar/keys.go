package main

import (
	"bytes"
	"io"

	"github.com/username/holiday-calendar/internal/browser"
)

// command is one key press of the interactive browser
type command int

const (
	cmdNext command = iota + 1
	cmdPrev
	cmdToday
	cmdTheme
	cmdLegend
	cmdQuit
)

// intent maps navigation commands to navigator intents
func (c command) intent() (browser.Intent, bool) {
	switch c {
	case cmdNext:
		return browser.NextMonth, true
	case cmdPrev:
		return browser.PreviousMonth, true
	case cmdToday:
		return browser.CurrentMonth, true
	default:
		return 0, false
	}
}

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
)

// parseKeys decodes raw terminal input. Unknown bytes are ignored.
func parseKeys(buf []byte) []command {
	var cmds []command
	for i := 0; i < len(buf); i++ {
		switch b := buf[i]; b {
		case 'n', 'l':
			cmds = append(cmds, cmdNext)
		case 'p', 'h':
			cmds = append(cmds, cmdPrev)
		case 't':
			cmds = append(cmds, cmdToday)
		case 'd':
			cmds = append(cmds, cmdTheme)
		case 'g':
			cmds = append(cmds, cmdLegend)
		case 'q', keyCtrlC:
			cmds = append(cmds, cmdQuit)
		case keyEscape:
			// Arrow keys: ESC [ C and ESC [ D
			if i+2 < len(buf) && buf[i+1] == '[' {
				switch buf[i+2] {
				case 'C':
					cmds = append(cmds, cmdNext)
				case 'D':
					cmds = append(cmds, cmdPrev)
				}
				i += 2
				continue
			}
			if i+1 == len(buf) {
				cmds = append(cmds, cmdQuit)
			}
		}
	}
	return cmds
}

// crlfWriter translates "\n" to "\r\n" for terminals in raw mode
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
