package eval

import "github.com/wmalkin/rgbforth/internal/numeric"

// Numeric and comparison word bindings, wiring internal/numeric's
// broadcasting unary/binary/ternary dispatch to the word names
// original_source/forth.cpp registers them under.

func unary(iop numeric.IntOp, fop numeric.FloatOp) func(*Interp) {
	return func(it *Interp) { numeric.Unary(it.Arena, it.Stack(), iop, fop) }
}

func binary(iop numeric.IntOp2, fop numeric.FloatOp2) func(*Interp) {
	return func(it *Interp) { numeric.Binary(it.Arena, it.Stack(), iop, fop) }
}

func ternary(iop numeric.IntOp3, fop numeric.FloatOp3) func(*Interp) {
	return func(it *Interp) { numeric.Ternary(it.Arena, it.Stack(), iop, fop) }
}
