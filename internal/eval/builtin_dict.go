package eval

// Dictionary words, grounded on original_source/forth.cpp's op_def
// through op_varget. Each except `step` pops the target word name off
// the top of stack, matching `value 'name def` usage order.

func opDef(it *Interp) {
	word := it.PopString()
	val := it.Pop()
	it.Define(word, val)
}

func opRedef(it *Interp) {
	word := it.PopString()
	val := it.Pop()
	it.DefineShadow(word, val)
}

func opForget(it *Interp) {
	word := it.PopString()
	it.Dict.Forget(word)
}

func opDefp(it *Interp) {
	word := it.PopString()
	if it.Dict.Defined(word) {
		it.Push(it.Arena.Int(1))
	} else {
		it.Push(it.Arena.Int(0))
	}
}

func opVarget(it *Interp) {
	word := it.PopString()
	if v := it.Dict.Find(word); v != nil {
		it.Push(it.Arena.Clone(v))
		return
	}
	it.Push(it.Arena.Int(0))
}

func opStep(it *Interp) {
	it.Step = true
}
