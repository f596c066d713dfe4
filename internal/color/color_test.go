package color_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wmalkin/rgbforth/internal/color"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		format color.Format
	}{
		{"RGB", color.RGB},
		{"GRB", color.GRB},
		{"BGR", color.BGR},
		{"GBR", color.GBR},
		{"RBG", color.RBG},
		{"BRG", color.BRG},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			packed := color.Pack(c.format, 10, 20, 30)
			r, g, b := color.Unpack(c.format, packed)
			require.Equal(t, int32(10), r)
			require.Equal(t, int32(20), g)
			require.Equal(t, int32(30), b)
		})
	}
}

func TestPackClampsChannels(t *testing.T) {
	packed := color.Pack(color.RGB, -5, 300, 128)
	r, g, b := color.Unpack(color.RGB, packed)
	require.Equal(t, int32(0), r)
	require.Equal(t, int32(255), g)
	require.Equal(t, int32(128), b)
}

func TestPackByteOrderDiffers(t *testing.T) {
	rgb := color.Pack(color.RGB, 10, 20, 30)
	grb := color.Pack(color.GRB, 10, 20, 30)
	require.NotEqual(t, rgb, grb, "GRB must reorder bytes relative to RGB")
}

func TestHSLGrayscaleAtZeroSaturation(t *testing.T) {
	packed := color.HSL(color.RGB, 180, 0, 50)
	r, g, b := color.Unpack(color.RGB, packed)
	require.Equal(t, r, g)
	require.Equal(t, g, b, "zero saturation must produce a gray (equal channels)")
}

func TestHSLWrapsHueModulo(t *testing.T) {
	a := color.HSL(color.RGB, 10, 100, 50)
	b := color.HSL(color.RGB, 370, 100, 50)
	require.Equal(t, a, b, "hue must wrap modulo 360")
}

func TestRainbowFullSaturationValue(t *testing.T) {
	packed := color.Rainbow(color.RGB, 0, 100, 100)
	r, g, b := color.Unpack(color.RGB, packed)
	require.Greater(t, int(r), int(g), "hue 0 should land solidly in the red segment")
	require.Equal(t, int32(0), b)
}

func TestRainbowZeroSaturationIsWhite(t *testing.T) {
	packed := color.Rainbow(color.RGB, 90, 0, 100)
	r, g, b := color.Unpack(color.RGB, packed)
	require.Equal(t, int32(255), r)
	require.Equal(t, int32(255), g)
	require.Equal(t, int32(255), b)
}

func TestBlendEndpoints(t *testing.T) {
	a := color.Pack(color.RGB, 10, 20, 30)
	b := color.Pack(color.RGB, 200, 210, 220)

	require.Equal(t, a, color.Blend(color.RGB, a, b, 0))
	require.Equal(t, b, color.Blend(color.RGB, a, b, 100))
}

func TestBlendMidpoint(t *testing.T) {
	a := color.Pack(color.RGB, 0, 0, 0)
	b := color.Pack(color.RGB, 100, 100, 100)

	mid := color.Blend(color.RGB, a, b, 50)
	r, g, bl := color.Unpack(color.RGB, mid)
	require.Equal(t, int32(50), r)
	require.Equal(t, int32(50), g)
	require.Equal(t, int32(50), bl)
}

func TestABlendElementwise(t *testing.T) {
	a := []int32{
		color.Pack(color.RGB, 0, 0, 0),
		color.Pack(color.RGB, 10, 10, 10),
	}
	b := []int32{
		color.Pack(color.RGB, 100, 100, 100),
		color.Pack(color.RGB, 20, 20, 20),
	}

	out := color.ABlend(color.RGB, a, b, 50)
	require.Len(t, out, 2)

	r0, _, _ := color.Unpack(color.RGB, out[0])
	require.Equal(t, int32(50), r0)
}
