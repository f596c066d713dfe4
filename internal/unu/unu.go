// Package unu implements the `file:run` file ingester: stream a file
// through internal/fileinput (the teacher's line/location-tracking
// rune reader), normalise CR/LF/TAB to spaces, skip `//` comment
// lines, and feed everything else to the lexer.Compiler, starting in
// suppressed (prose) mode and unconditionally leaving suppression
// cleared on exit. Grounded on original_source/forthduino.cpp's
// op_runfile.
package unu

import (
	"io"
	"strings"

	"github.com/wmalkin/rgbforth/internal/fileinput"
)

// Run streams r (named name, for fileinput's location tracking)
// through feed one normalised line at a time. setSuppress brackets the
// whole read: true on entry, false on exit regardless of the file's
// own trailing `~~~` state, matching
// forth_unu(true)/forth_unu(false) around op_runfile's read loop.
//
// r is closed here, if it implements io.Closer, once fully read:
// fileinput.Input's own auto-close never fires for it, since
// runeio.NewReader wraps any reader that doesn't already implement
// rune reading in a struct that embeds io.Reader — which promotes
// only the Read method, not whatever Close method the concrete reader
// underneath also has.
func Run(r io.Reader, name string, setSuppress func(bool), feed func(line string)) {
	setSuppress(true)
	defer setSuppress(false)
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	in := &fileinput.Input{Queue: []io.Reader{r}}
	in.Scan.Name = name

	var buf []rune
	flush := func() {
		if len(buf) == 0 {
			return
		}
		line := string(buf)
		buf = buf[:0]
		if !strings.HasPrefix(line, "//") {
			feed(line)
		}
	}

	for {
		ch, _, err := in.ReadRune()
		if err != nil {
			break
		}
		switch ch {
		case '\r', '\t':
			ch = ' '
		case '\n':
			buf = append(buf, ' ')
			flush()
			continue
		}
		buf = append(buf, ch)
	}
	flush()
}
