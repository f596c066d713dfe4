package eval

import "github.com/wmalkin/rgbforth/internal/numeric"

// Array words, grounded on original_source/forth.cpp's op_array through
// op_map. geta/puta/size peek the top of stack rather than popping it,
// so the array value remains in place for further use.

func opArray(it *Interp) {
	n := int(it.PopInt())
	if n < 0 {
		n = 0
	}
	it.Push(it.Arena.Array(n))
}

func opIdentity(it *Interp) {
	if a := it.Stack().Top().AsArray(); a != nil {
		for i := range a {
			a[i] = int32(i)
		}
	}
}

// opIndex is preserved from op_index, which in the original is an
// incomplete stub: it pops an index array and the operand array, does
// nothing with the index array, and pushes the operand array back
// unchanged.
func opIndex(it *Interp) {
	idx := it.Pop()
	operand := it.Pop()
	it.Push(operand)
	it.Arena.Free(idx)
}

func opSum(it *Interp) {
	v := it.Pop()
	it.Push(it.Arena.Int(numeric.Sum(v)))
	it.Arena.Free(v)
}

func opGeta(it *Interp) {
	idx := int(it.PopInt())
	if a := it.Stack().Top().AsArray(); a != nil && idx >= 0 && idx < len(a) {
		it.Push(it.Arena.Int(a[idx]))
		return
	}
	it.Push(it.Arena.Int(0))
}

func opPuta(it *Interp) {
	ival := it.PopInt()
	idx := int(it.PopInt())
	v := it.Stack().Top()
	if a := v.AsArray(); a != nil && idx >= 0 && idx < len(a) {
		a[idx] = ival
	}
}

func opDgeta(it *Interp) {
	idx := int(it.PopInt())
	word := it.PopString()
	v := it.Dict.Find(word)
	if a := v.AsArray(); a != nil && idx >= 0 && idx < len(a) {
		it.Push(it.Arena.Int(a[idx]))
		return
	}
	it.Push(it.Arena.Int(0))
}

func opDputa(it *Interp) {
	ival := it.PopInt()
	idx := int(it.PopInt())
	word := it.PopString()
	v := it.Dict.Find(word)
	if a := v.AsArray(); a != nil && idx >= 0 && idx < len(a) {
		a[idx] = ival
	}
}

func opSize(it *Interp) {
	v := it.Stack().Top()
	it.Push(it.Arena.Int(int32(v.Len())))
}

// opMap pops a sequence and the top array, runs the sequence once per
// element with that element pushed as the sole argument and its
// return popped back into place, then pushes the array back. A
// non-ARRAY operand is silently dropped, per op_map.
func opMap(it *Interp) {
	block := it.PopSeq()
	va := it.Pop()
	a := va.AsArray()
	if a == nil {
		it.Arena.Free(va)
		return
	}
	for i := range a {
		it.Push(it.Arena.Int(a[i]))
		it.Run(block)
		a[i] = it.PopInt()
	}
	it.Push(va)
}
