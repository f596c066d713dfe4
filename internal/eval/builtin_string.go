package eval

import "fmt"

// String/number-formatting words, grounded on original_source/
// forth.cpp's op_num_dec, op_num_sci, op_str_mid.

func opNumDec(it *Interp) {
	dps := it.PopInt()
	width := it.PopInt()
	num := it.PopFloat()
	it.Push(it.Arena.Str(fmt.Sprintf(fmt.Sprintf("%%%d.%df", width, dps), num)))
}

func opNumSci(it *Interp) {
	dps := it.PopInt()
	width := it.PopInt()
	num := it.PopFloat()
	it.Push(it.Arena.Str(fmt.Sprintf(fmt.Sprintf("%%%d.%dE", width, dps), num)))
}

// opStrMid implements `inp start len str:mid`: returns inp starting at
// start, truncated to at most len bytes, or "" if start is past the
// end of inp.
func opStrMid(it *Interp) {
	length := int(it.PopInt())
	start := int(it.PopInt())
	inp := it.PopString()
	if start >= len(inp) {
		it.Push(it.Arena.Str(""))
		return
	}
	end := start + length
	if end > len(inp) {
		end = len(inp)
	}
	it.Push(it.Arena.Str(inp[start:end]))
}
