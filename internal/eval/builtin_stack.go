package eval

import "github.com/wmalkin/rgbforth/internal/value"

// Stack-manipulation words, grounded on original_source/forth.cpp's
// op_dup through op_swapstash. All index words read position 0 as the
// top of stack, matching ValueStack::at.

func opDup(it *Interp) {
	if v := it.Stack().Top(); v != nil {
		it.Push(it.Arena.Clone(v))
	}
}

func opOver(it *Interp) {
	if v := it.Stack().At(1); v != nil {
		it.Push(it.Arena.Clone(v))
	}
}

func opAt(n int) func(*Interp) {
	return func(it *Interp) {
		if v := it.Stack().At(n); v != nil {
			it.Push(it.Arena.Clone(v))
		}
	}
}

func opAtN(it *Interp) {
	n := int(it.PopInt())
	if v := it.Stack().At(n); v != nil {
		it.Push(it.Arena.Clone(v))
	}
}

func opStackSize(it *Interp) {
	it.Push(it.Arena.Int(int32(it.Stack().Size())))
}

func opSwap(it *Interp) {
	a := it.Pop()
	b := it.Pop()
	it.Push(a)
	it.Push(b)
}

func opRot(it *Interp) {
	v1 := it.Pop()
	v2 := it.Pop()
	v3 := it.Pop()
	it.Push(v1)
	it.Push(v3)
	it.Push(v2)
}

func opRup(it *Interp) {
	v1 := it.Pop()
	v2 := it.Pop()
	v3 := it.Pop()
	it.Push(v2)
	it.Push(v1)
	it.Push(v3)
}

func opRot4(it *Interp) {
	v1 := it.Pop()
	v2 := it.Pop()
	v3 := it.Pop()
	v4 := it.Pop()
	it.Push(v1)
	it.Push(v4)
	it.Push(v3)
	it.Push(v2)
}

func opRup4(it *Interp) {
	v1 := it.Pop()
	v2 := it.Pop()
	v3 := it.Pop()
	v4 := it.Pop()
	it.Push(v3)
	it.Push(v2)
	it.Push(v1)
	it.Push(v4)
}

// popN pops n values off the stack, top first (vals[0] is the former
// top, vals[n-1] the deepest of the group). Missing elements read as
// nil, matching the silent-underflow policy.
func popN(it *Interp, n int) []*value.Value {
	vals := make([]*value.Value, n)
	for i := 0; i < n; i++ {
		vals[i] = it.Pop()
	}
	return vals
}

// opRotn left-rotates the top n values by one (the former top becomes
// the n-th from the top), per op_rotn's linked-list splice.
func opRotn(it *Interp) {
	n := int(it.PopInt())
	if n < 1 {
		return
	}
	vals := popN(it, n)
	it.Push(vals[0])
	for i := n - 1; i >= 1; i-- {
		it.Push(vals[i])
	}
}

// opRupn right-rotates the top n values by one (the deepest of the
// group becomes the new top), the inverse of opRotn, per op_rupn.
func opRupn(it *Interp) {
	n := int(it.PopInt())
	if n < 1 {
		return
	}
	vals := popN(it, n)
	for i := n - 2; i >= 0; i-- {
		it.Push(vals[i])
	}
	it.Push(vals[n-1])
}

func opDrop(it *Interp) {
	it.Arena.Free(it.Pop())
}

func opDup2(it *Interp) {
	opOver(it)
	opOver(it)
}

func opDrop2(it *Interp) {
	opDrop(it)
	opDrop(it)
}

func opClst(it *Interp) {
	it.Stack().Clear(it.Arena)
}

func opStash(it *Interp) {
	it.Stash().Push(it.Pop())
}

func opUnstash(it *Interp) {
	it.Push(it.Stash().Pop())
}

func opSwapStash(it *Interp) {
	it.SwapStacks()
}
