// Package color implements the language's 24-bit RGB packing, byte-order
// selection, and the two HSV-to-RGB mappings (`hsv>` and `hsvr>`), grounded
// on original_source/forth.cpp's rgbpack/rgbunpack/makeColor/h2rgb/
// oper_hsvr/rgbblend/cblend.
package color

import "math"

// Format selects the byte order a 24-bit packed color is read/written in.
type Format int

// The six byte orderings the hardware may wire an LED strip in.
const (
	RGB Format = iota
	GRB
	BGR
	GBR
	RBG
	BRG
)

func clampByte(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Pack assembles r, g, b (each clamped to 0..255) into a 24-bit integer
// ordered per format.
func Pack(format Format, r, g, b int32) int32 {
	r, g, b = clampByte(r)&0xff, clampByte(g)&0xff, clampByte(b)&0xff
	switch format {
	case GRB:
		return g<<16 | r<<8 | b
	case BGR:
		return b<<16 | g<<8 | r
	case GBR:
		return g<<16 | b<<8 | r
	case RBG:
		return r<<16 | b<<8 | g
	case BRG:
		return b<<16 | r<<8 | g
	default: // RGB
		return r<<16 | g<<8 | b
	}
}

// Unpack splits a packed 24-bit color into r, g, b per format.
func Unpack(format Format, c int32) (r, g, b int32) {
	x := (c & 0xff0000) >> 16
	y := (c & 0x00ff00) >> 8
	z := c & 0x0000ff
	switch format {
	case GRB:
		return y, x, z
	case BGR:
		return z, y, x
	case GBR:
		return z, x, y
	case RBG:
		return x, z, y
	case BRG:
		return y, z, x
	default: // RGB
		return x, y, z
	}
}

func h2rgb(v1, v2, hue uint32) uint32 {
	switch {
	case hue < 60:
		return v1*60 + (v2-v1)*hue
	case hue < 180:
		return v2 * 60
	case hue < 240:
		return v1*60 + (v2-v1)*(240-hue)
	default:
		return v1 * 60
	}
}

// HSL computes the HSL-style `hsv>` mapping: hue in [0,360), saturation
// and lightness ("value" in the language's naming) in [0,100], per
// original_source/forth.cpp's makeColor (itself the classic easyrgb.com
// HSL->RGB formulation).
func HSL(format Format, hue, sat, light int32) int32 {
	h := uint32(((hue % 360) + 360) % 360)
	s := uint32(clampByte(sat))
	if s > 100 {
		s = 100
	}
	l := uint32(clampByte(light))
	if l > 100 {
		l = 100
	}

	var red, green, blue uint32
	if s == 0 {
		red, green, blue = l*255/100, l*255/100, l*255/100
	} else {
		var var1, var2 uint32
		if l < 50 {
			var2 = l * (100 + s)
		} else {
			var2 = (l+s)*100 - s*l
		}
		var1 = l*200 - var2

		hr := h + 120
		if h >= 240 {
			hr = h - 240
		}
		hb := h - 120
		if h < 120 {
			hb = h + 240
		}

		red = h2rgb(var1, var2, hr) * 255 / 600000
		green = h2rgb(var1, var2, h) * 255 / 600000
		blue = h2rgb(var1, var2, hb) * 255 / 600000
	}

	return Pack(format, int32(red), int32(green), int32(blue))
}

// scale8 is FastLED's classic "scale one 8-bit value by another 8-bit
// value" fixed-point helper, used by the rainbow mapping so its ramps
// land on the same boundaries the hardware library's own does.
func scale8(i, scale uint32) uint32 {
	return (i * (scale + 1)) >> 8
}

// Rainbow computes the "equal-area hues" rainbow mapping used by `hsvr>`:
// hue/sat/value are first folded into 0..255 per original_source/
// forth.cpp's oper_hsvr, then run through the same eight-section
// (32 hue steps each) ramp FastLED's hsv2rgb_rainbow uses to keep perceived
// brightness roughly constant across the hue wheel, before saturation and
// value scale the result down.
func Rainbow(format Format, hue, sat, val int32) int32 {
	h8 := uint32(clampByte(((val2(hue, 360)) * 255) / 360) % 256)
	s8 := uint32(clampByte((sat * 255) / 100) % 256)
	v8 := uint32(clampByte((val * 255) / 100) % 256)

	offset := h8 & 0x1f
	offset8 := offset << 3
	third := scale8(offset8, 256/3)

	var r, g, b uint32
	switch {
	case h8&0x80 == 0 && h8&0x40 == 0 && h8&0x20 == 0:
		r, g, b = 255-third, third, 0
	case h8&0x80 == 0 && h8&0x40 == 0:
		r, g, b = 171, 85+third, 0
	case h8&0x80 == 0 && h8&0x20 == 0:
		twothirds := scale8(offset8, (256*2)/3)
		r, g, b = clampU(171, twothirds), 170+third, 0
	case h8&0x80 == 0:
		r, g, b = 0, 255-third, third
	case h8&0x40 == 0 && h8&0x20 == 0:
		twothirds := scale8(offset8, (256*2)/3)
		r, g, b = 0, clampU(171, twothirds), 85+twothirds
	case h8&0x40 == 0:
		r, g, b = third, 0, 255-third
	case h8&0x20 == 0:
		r, g, b = 85+third, 0, clampU(171, third)
	default:
		r, g, b = 170+third, 0, clampU(85, third)
	}

	if s8 != 255 {
		if s8 == 0 {
			r, g, b = 255, 255, 255
		} else {
			desat := 255 - s8
			floor := scale8(desat, desat)
			scale := 255 - floor
			r = scale8(r, scale) + floor
			g = scale8(g, scale) + floor
			b = scale8(b, scale) + floor
		}
	}

	if v8 != 255 {
		r = scale8(r, v8)
		g = scale8(g, v8)
		b = scale8(b, v8)
	}

	return Pack(format, int32(r), int32(g), int32(b))
}

func val2(hue, mod int32) int32 {
	h := hue % mod
	if h < 0 {
		h += mod
	}
	return h
}

func clampU(a, b uint32) uint32 {
	if b > a {
		return 0
	}
	return a - b
}

// Blend returns a*(100-ratio)/100 + b*ratio/100 per channel, ratio in
// 0..100, per original_source/forth.cpp's rgbblend/cblend.
func Blend(format Format, a, b, ratio int32) int32 {
	ar, ag, ab := Unpack(format, a)
	br, bg, bb := Unpack(format, b)
	r := (br*ratio + ar*(100-ratio)) / 100
	g := (bg*ratio + ag*(100-ratio)) / 100
	bl := (bb*ratio + ab*(100-ratio)) / 100
	return Pack(format, r, g, bl)
}

// ABlend blends two equal-length packed-color ARRAYs element-wise,
// writing into a freshly allocated result slice. The caller is
// responsible for checking length equality (per spec, a mismatch frees
// both operand arrays and pushes nothing; that policy lives in the word
// binding, not here, since it concerns Value ownership, not color math).
func ABlend(format Format, a, b []int32, ratio int32) []int32 {
	n := len(a)
	out := make([]int32, n)
	for i := range out {
		out[i] = Blend(format, a[i], b[i], ratio)
	}
	return out
}

// roundTrunc truncates a float to int32. Nothing in this module calls it:
// hsv>/hsvr> go through the ternary broadcaster's integer path only.
func roundTrunc(f float64) int32 { return int32(math.Trunc(f)) }
