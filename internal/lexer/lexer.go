// Package lexer implements the sigil-based compiler: it turns
// whitespace-delimited source words into a Sequence of Values, handling
// the `[ ] @ ! # ' : ; (` sigils, whole-line `//` and `~~~` commenting,
// and the default dictionary-lookup-or-number resolution. Grounded on
// original_source/forth.cpp's parseSequenceWord/forth_run and the
// sigil_* handlers.
package lexer

import (
	"strconv"
	"strings"

	"github.com/wmalkin/rgbforth/internal/eval"
	"github.com/wmalkin/rgbforth/internal/value"
	"github.com/wmalkin/rgbforth/internal/vstack"
)

// Compiler holds the state that must persist across lines: the
// currently-open sequence (nil between top-level statements), any
// pending `:name` awaiting its closing `;`, and whether source is
// currently inside a `~~~` prose block.
type Compiler struct {
	it      *eval.Interp
	current *vstack.Stack
	pending string
	unu     bool
}

// New returns a Compiler that resolves dictionary lookups and number
// parsing against it.
func New(it *eval.Interp) *Compiler {
	return &Compiler{it: it}
}

// Feed compiles one line of source. It returns a completed top-level
// Sequence ready to run once the line closes every sequence it opened
// (no unmatched `[` or `:`), and nil otherwise — either because the
// line was a comment/unu-toggle, source is inside a `~~~` block, or the
// sequence is still open and awaiting more lines.
func (c *Compiler) Feed(line string) *vstack.Stack {
	if strings.HasPrefix(line, "//") {
		return nil
	}
	if strings.HasPrefix(line, "~~~") {
		c.unu = !c.unu
		return nil
	}
	if c.unu {
		return nil
	}

	if c.current == nil {
		c.current = vstack.New(nil)
	}
	for _, w := range strings.Fields(line) {
		c.parseWord(w)
	}
	if c.current.Outer == nil {
		done := c.current
		c.current = nil
		return done
	}
	return nil
}

// SetSuppress forces the `~~~` prose/code state directly, used by
// internal/unu to start a file in suppressed (prose) mode on entry and
// clear suppression unconditionally on exit, per op_runfile's
// forth_unu(true)/forth_unu(false) bracketing.
func (c *Compiler) SetSuppress(suppress bool) { c.unu = suppress }

func (c *Compiler) parseWord(w string) {
	if w == "" {
		return
	}
	rest := w[1:]
	switch w[0] {
	case '[':
		c.sigilSeq()
	case ']':
		c.sigilEndSeq()
	case '@':
		c.sigilGet(rest)
	case '!':
		c.sigilPut(rest)
	case '#':
		c.sigilHexN(rest)
	case '\'':
		c.sigilStr(rest)
	case ':':
		c.sigilDefine(rest)
	case ';':
		c.sigilDefEnd()
	case '(':
		// stack comments are for source readability only
	default:
		c.resolve(w)
	}
}

func (c *Compiler) sigilSeq() {
	c.current = vstack.New(c.current)
}

func (c *Compiler) sigilEndSeq() {
	c.current = c.current.CloseSequence(c.it.Arena)
}

func (c *Compiler) sigilGet(name string) {
	c.current.PushTail(c.it.Arena.Str(name))
	c.current.PushTail(c.it.Arena.Clone(c.it.Dict.Find("vget")))
}

func (c *Compiler) sigilPut(name string) {
	c.current.PushTail(c.it.Arena.Str(name))
	c.current.PushTail(c.it.Arena.Clone(c.it.Dict.Find("def")))
}

func (c *Compiler) sigilHexN(digits string) {
	c.current.PushTail(c.it.Arena.Int(int32(parseHexLenient(digits))))
}

func (c *Compiler) sigilStr(s string) {
	c.current.PushTail(c.it.Arena.Str(s))
}

func (c *Compiler) sigilDefine(name string) {
	c.pending = name
	c.sigilSeq()
}

func (c *Compiler) sigilDefEnd() {
	if c.pending == "" {
		return
	}
	c.sigilEndSeq()
	c.current.PushTail(c.it.Arena.Str(c.pending))
	c.current.PushTail(c.it.Arena.Clone(c.it.Dict.Find("def")))
	c.pending = ""
}

// resolve handles any word that isn't a sigil: a defined word (wrapped
// in a `call`-bound FUNC if it is a SEQ, so the compiled sequence can
// recurse into itself the same way original_source/forth.cpp's default
// case does) or, failing that, a number literal.
func (c *Compiler) resolve(w string) {
	if sym := c.it.Dict.FindSym(w); sym != nil {
		if seq, ok := sym.Value().AsSeq().(*vstack.Stack); ok && sym.Value().Kind == value.SEQ {
			callFn := c.it.Dict.Find("call").AsFunc()
			c.current.PushTail(c.it.Arena.Fn(callFn, seq))
			return
		}
		c.current.PushTail(c.it.Arena.Sym(sym))
		return
	}
	if strings.Contains(w, ".") {
		f, _ := strconv.ParseFloat(w, 64)
		c.current.PushTail(c.it.Arena.Float(f))
		return
	}
	n, _ := strconv.ParseInt(w, 10, 32)
	c.current.PushTail(c.it.Arena.Int(int32(n)))
}

// parseHexLenient parses the leading run of hex digits in s, like C's
// strtol(s, NULL, 16): trailing garbage is ignored and an unparsable
// string reads as 0, matching the language's silent-failure policy.
func parseHexLenient(s string) int64 {
	end := 0
	for end < len(s) && isHexDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0
	}
	n, _ := strconv.ParseInt(s[:end], 16, 64)
	return n
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
