// Package numeric implements the broadcasting scalar/array numeric model:
// unary, binary, and ternary operators that transparently lift over
// ARRAY operands, matching the implicit-array broadcasting rules in
// original_source/forth.cpp's unary/binary/trinary.
package numeric

import "github.com/wmalkin/rgbforth/internal/value"

// IntOp is an integer-domain operator of arity 1.
type IntOp func(a int32) int32

// FloatOp is a float-domain operator of arity 1.
type FloatOp func(a float64) float64

// IntOp2/FloatOp2/IntOp3/FloatOp3 are the binary and ternary counterparts.
type (
	IntOp2   func(a, b int32) int32
	FloatOp2 func(a, b float64) float64
	IntOp3   func(a, b, c int32) int32
	FloatOp3 func(a, b, c float64) float64
)

// isNumericDomain reports whether v's kind participates in the integer
// fast path: INT and ARRAY both do. The float implementation is used
// only when some operand is neither INT nor ARRAY.
func isNumericDomain(v *value.Value) bool {
	return v != nil && (v.Kind == value.INT || v.Kind == value.ARRAY)
}

func elemAt(v *value.Value, i int) int32 {
	if v.Kind == value.ARRAY {
		if a := v.AsArray(); i < len(a) {
			return a[i]
		}
		return 0
	}
	return v.AsInt()
}

func elemAtFloat(v *value.Value, i int) float64 {
	if v.Kind == value.ARRAY {
		if a := v.AsArray(); i < len(a) {
			return float64(a[i])
		}
		return 0
	}
	return v.AsFloat()
}

func arrayLen(v *value.Value) int {
	if v.Kind == value.ARRAY {
		return v.Len()
	}
	return 1
}

func maxLen(ls ...int) int {
	m := 0
	for _, l := range ls {
		if l > m {
			m = l
		}
	}
	return m
}

// Unary pops one operand and pushes the result of iop (if the operand is
// INT or ARRAY) or fop (otherwise), broadcasting element-wise over an
// ARRAY operand.
func Unary(arena *value.Arena, stack popper, iop IntOp, fop FloatOp) {
	a := stack.Pop()
	defer arena.Free(a)

	if a.Kind == value.ARRAY {
		src := a.AsArray()
		out := make([]int32, len(src))
		for i, v := range src {
			out[i] = iop(v)
		}
		stack.Push(arena.ArrayFrom(out))
		return
	}
	if a.Kind == value.INT || fop == nil {
		stack.Push(arena.Int(iop(a.AsInt())))
		return
	}
	stack.Push(arena.Float(fop(a.AsFloat())))
}

// Binary pops two operands (b, then a; a was pushed first) and pushes the
// broadcast result, per original_source/forth.cpp's binary().
func Binary(arena *value.Arena, stack popper, iop IntOp2, fop FloatOp2) {
	b := stack.Pop()
	a := stack.Pop()
	defer arena.Free(a)
	defer arena.Free(b)

	useFloat := fop != nil && !(isNumericDomain(a) && isNumericDomain(b))

	if a.Kind == value.ARRAY || b.Kind == value.ARRAY {
		n := maxLen(arrayLen(a), arrayLen(b))
		out := make([]int32, n)
		for i := 0; i < n; i++ {
			if useFloat {
				out[i] = int32(fop(elemAtFloat(a, i), elemAtFloat(b, i)))
			} else {
				out[i] = iop(elemAt(a, i), elemAt(b, i))
			}
		}
		stack.Push(arena.ArrayFrom(out))
		return
	}

	if useFloat {
		stack.Push(arena.Float(fop(a.AsFloat(), b.AsFloat())))
		return
	}
	stack.Push(arena.Int(iop(a.AsInt(), b.AsInt())))
}

// Ternary pops three operands (c, b, a in pop order) and pushes the
// broadcast result, per original_source/forth.cpp's trinary().
func Ternary(arena *value.Arena, stack popper, iop IntOp3, fop FloatOp3) {
	c := stack.Pop()
	b := stack.Pop()
	a := stack.Pop()
	defer arena.Free(a)
	defer arena.Free(b)
	defer arena.Free(c)

	useFloat := fop != nil && !(isNumericDomain(a) && isNumericDomain(b) && isNumericDomain(c))

	if a.Kind == value.ARRAY || b.Kind == value.ARRAY || c.Kind == value.ARRAY {
		n := maxLen(arrayLen(a), arrayLen(b), arrayLen(c))
		out := make([]int32, n)
		for i := 0; i < n; i++ {
			if useFloat {
				out[i] = int32(fop(elemAtFloat(a, i), elemAtFloat(b, i), elemAtFloat(c, i)))
			} else {
				out[i] = iop(elemAt(a, i), elemAt(b, i), elemAt(c, i))
			}
		}
		stack.Push(arena.ArrayFrom(out))
		return
	}

	if useFloat {
		stack.Push(arena.Float(fop(a.AsFloat(), b.AsFloat(), c.AsFloat())))
		return
	}
	stack.Push(arena.Int(iop(a.AsInt(), b.AsInt(), c.AsInt())))
}

// popper is the minimal stack surface Unary/Binary/Ternary need; satisfied
// by *vstack.Stack without this package importing vstack.
type popper interface {
	Pop() *value.Value
	Push(*value.Value)
}

// Sum implements the scalar word `sum`: sums an ARRAY's elements, or
// returns 0 for any other operand kind.
func Sum(v *value.Value) int32 {
	if v == nil || v.Kind != value.ARRAY {
		return 0
	}
	var total int32
	for _, e := range v.AsArray() {
		total += e
	}
	return total
}
