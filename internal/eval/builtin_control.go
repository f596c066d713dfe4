package eval

import "github.com/wmalkin/rgbforth/internal/vstack"

// Control-flow words, grounded on original_source/forth.cpp's op_if
// through op_call.

func opIf(it *Interp) {
	test := it.PopInt()
	block := it.PopSeq()
	if test != 0 {
		it.Run(block)
	}
}

func opIfe(it *Interp) {
	test := it.PopInt()
	elseBlock := it.PopSeq()
	ifBlock := it.PopSeq()
	if test != 0 {
		it.Run(ifBlock)
	} else {
		it.Run(elseBlock)
	}
}

func opLoop(it *Interp) {
	end := it.PopInt()
	begin := it.PopInt()
	block := it.PopSeq()
	if begin < end {
		for i := begin; i < end; i++ {
			it.Push(it.Arena.Int(i))
			it.Run(block)
		}
	} else {
		for i := begin; i > end; i-- {
			it.Push(it.Arena.Int(i))
			it.Run(block)
		}
	}
}

func opRepeat(it *Interp) {
	times := it.PopInt()
	block := it.PopSeq()
	for i := int32(0); i < times; i++ {
		it.Run(block)
	}
}

// opCall re-enters the sequence captured by the currently executing
// FUNC (it.cur), the rendition of gfuncparams->seq; this is how a word
// defined as `... call ;` recurses into its own body. With no captured
// sequence it falls back to popping a word name and looking it up in
// the dictionary, running it if bound to a SEQ.
func opCall(it *Interp) {
	if it.cur != nil {
		if seq, ok := it.cur.AsSeq().(*vstack.Stack); ok && seq != nil {
			it.Run(seq)
			return
		}
	}
	word := it.PopString()
	dv := it.Dict.Find(word)
	if seq, ok := dv.AsSeq().(*vstack.Stack); ok && dv != nil {
		it.Run(seq)
	}
}
