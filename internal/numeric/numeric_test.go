package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wmalkin/rgbforth/internal/numeric"
	"github.com/wmalkin/rgbforth/internal/value"
	"github.com/wmalkin/rgbforth/internal/vstack"
)

func addI(a, b int32) int32     { return a + b }
func addF(a, b float64) float64 { return a + b }
func negI(a int32) int32        { return -a }
func negF(a float64) float64    { return -a }
func sumI(a, b, c int32) int32  { return a + b + c }

func TestUnaryScalarInt(t *testing.T) {
	a := &value.Arena{}
	s := vstack.New(nil)
	s.Push(a.Int(5))

	numeric.Unary(a, s, negI, negF)
	require.Equal(t, int32(-5), s.Pop().AsInt())
}

func TestUnaryScalarFloatFallback(t *testing.T) {
	a := &value.Arena{}
	s := vstack.New(nil)
	s.Push(a.Float(2.5))

	numeric.Unary(a, s, negI, negF)
	require.Equal(t, -2.5, s.Pop().AsFloat())
}

func TestUnaryBroadcastsOverArray(t *testing.T) {
	a := &value.Arena{}
	s := vstack.New(nil)
	s.Push(a.ArrayFrom([]int32{1, 2, 3}))

	numeric.Unary(a, s, negI, negF)
	got := s.Pop()
	require.Equal(t, value.ARRAY, got.Kind)
	require.Equal(t, []int32{-1, -2, -3}, got.AsArray())
}

func TestBinaryScalarInt(t *testing.T) {
	a := &value.Arena{}
	s := vstack.New(nil)
	s.Push(a.Int(2))
	s.Push(a.Int(3))

	numeric.Binary(a, s, addI, addF)
	require.Equal(t, int32(5), s.Pop().AsInt())
}

func TestBinaryArrayAndScalarBroadcast(t *testing.T) {
	a := &value.Arena{}
	s := vstack.New(nil)
	s.Push(a.ArrayFrom([]int32{1, 2, 3}))
	s.Push(a.Int(10))

	numeric.Binary(a, s, addI, addF)
	got := s.Pop()
	require.Equal(t, []int32{11, 12, 13}, got.AsArray())
}

func TestBinaryComparisonHasNoFloatPath(t *testing.T) {
	a := &value.Arena{}
	s := vstack.New(nil)
	s.Push(a.Float(1))
	s.Push(a.Float(2))

	gt := func(x, y int32) int32 {
		if x > y {
			return 1
		}
		return 0
	}
	numeric.Binary(a, s, gt, nil)
	require.Equal(t, int32(0), s.Pop().AsInt(), "comparisons stay integer even with float operands when fop is nil")
}

func TestTernaryScalar(t *testing.T) {
	a := &value.Arena{}
	s := vstack.New(nil)
	s.Push(a.Int(1))
	s.Push(a.Int(2))
	s.Push(a.Int(3))

	numeric.Ternary(a, s, sumI, nil)
	require.Equal(t, int32(6), s.Pop().AsInt())
}

func TestTernaryBroadcastsLongestArray(t *testing.T) {
	a := &value.Arena{}
	s := vstack.New(nil)
	s.Push(a.Int(100))
	s.Push(a.ArrayFrom([]int32{1, 2}))
	s.Push(a.ArrayFrom([]int32{10, 20, 30}))

	numeric.Ternary(a, s, sumI, nil)
	got := s.Pop()
	require.Equal(t, []int32{111, 122, 130}, got.AsArray(), "array shorter than the longest operand reads as 0 past its end")
}

func TestSum(t *testing.T) {
	a := &value.Arena{}
	arr := a.ArrayFrom([]int32{1, 2, 3, 4})
	require.Equal(t, int32(10), numeric.Sum(arr))

	require.Equal(t, int32(0), numeric.Sum(a.Int(5)))
	require.Equal(t, int32(0), numeric.Sum(nil))
}
