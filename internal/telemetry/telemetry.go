// Package telemetry formats Values and dumps the stack/dictionary for
// the language's debug words, grounded on original_source/
// forthduino.cpp's prtvalue, dot, prtdict, and prtstk.
package telemetry

import (
	"fmt"
	"io"

	"github.com/wmalkin/rgbforth/internal/dict"
	"github.com/wmalkin/rgbforth/internal/value"
)

// FormatValue renders v the way prtvalue does: a literal for INT/
// FLOAT/STR, and a bracketed type tag for the reference-carrying kinds
// which have no useful flat text form.
func FormatValue(v *value.Value) string {
	if v == nil {
		return "<free>"
	}
	switch v.Kind {
	case value.FREE:
		return "<free>"
	case value.INT:
		return fmt.Sprintf("%d", v.AsInt())
	case value.FLOAT:
		return fmt.Sprintf("%g", v.AsFloat())
	case value.STR:
		return v.AsString()
	case value.FUNC:
		return "<func>"
	case value.SEQ:
		return "<seq>"
	case value.ARRAY:
		return fmt.Sprintf("<int[%d]>", v.Len())
	case value.SYM:
		if e := v.AsEntry(); e != nil {
			return "<" + e.Word() + ">"
		}
		return "<sym>"
	default:
		return "<?>"
	}
}

// DumpStack writes every element of seq, top to bottom, space
// separated, followed by a newline, per prtstk.
func DumpStack(w io.Writer, seq value.Sequence) {
	seq.Walk(func(v *value.Value) {
		fmt.Fprintf(w, "%s ", FormatValue(v))
	})
	fmt.Fprintln(w)
}

// DumpDict writes every dictionary entry, most- to least-recently
// defined, one per line as "word: value", per prtdict.
func DumpDict(w io.Writer, d *dict.Dict) {
	d.Walk(func(e *dict.Entry) {
		fmt.Fprintf(w, "%s: %s\n", e.Word(), FormatValue(e.Value()))
	})
}
