package eval

import (
	"github.com/wmalkin/rgbforth/internal/color"
	"github.com/wmalkin/rgbforth/internal/numeric"
)

// Color words, grounded on original_source/forth.cpp's op_rgbformat
// through op_argb_blend.

func opRgbformat(it *Interp) {
	it.ColorFormat = color.Format(it.PopInt())
}

func opRgbToColor(it *Interp) {
	b := it.PopInt()
	g := it.PopInt()
	r := it.PopInt()
	it.Push(it.Arena.Int(color.Pack(it.ColorFormat, r, g, b)))
}

func opColorToRgb(it *Interp) {
	c := it.PopInt()
	r, g, b := color.Unpack(it.ColorFormat, c)
	it.Push(it.Arena.Int(r))
	it.Push(it.Arena.Int(g))
	it.Push(it.Arena.Int(b))
}

func opHsv(it *Interp) {
	numeric.Ternary(it.Arena, it.Stack(), func(h, s, v int32) int32 {
		return color.HSL(it.ColorFormat, h, s, v)
	}, nil)
}

func opHsvr(it *Interp) {
	numeric.Ternary(it.Arena, it.Stack(), func(h, s, v int32) int32 {
		return color.Rainbow(it.ColorFormat, h, s, v)
	}, nil)
}

func opBlend(it *Interp) {
	ratio := it.PopInt()
	b := it.PopInt()
	a := it.PopInt()
	it.Push(it.Arena.Int(color.Blend(it.ColorFormat, a, b, ratio)))
}

// opAblend blends two equal-length packed-color ARRAYs element-wise in
// place, freeing the second operand; a kind or length mismatch frees
// both operands silently, per op_argb_blend.
func opAblend(it *Interp) {
	ratio := it.PopInt()
	vb := it.Pop()
	va := it.Pop()
	ab := va.AsArray()
	bb := vb.AsArray()
	if ab != nil && bb != nil && len(ab) == len(bb) {
		blended := color.ABlend(it.ColorFormat, ab, bb, ratio)
		copy(ab, blended)
		it.Push(va)
		it.Arena.Free(vb)
		return
	}
	it.Arena.Free(va)
	it.Arena.Free(vb)
}
