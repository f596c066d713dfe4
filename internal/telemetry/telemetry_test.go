package telemetry_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wmalkin/rgbforth/internal/dict"
	"github.com/wmalkin/rgbforth/internal/telemetry"
	"github.com/wmalkin/rgbforth/internal/value"
	"github.com/wmalkin/rgbforth/internal/vstack"
)

func TestFormatValueScalars(t *testing.T) {
	a := &value.Arena{}
	require.Equal(t, "42", telemetry.FormatValue(a.Int(42)))
	require.Equal(t, "3.5", telemetry.FormatValue(a.Float(3.5)))
	require.Equal(t, "hi", telemetry.FormatValue(a.Str("hi")))
	require.Equal(t, "<free>", telemetry.FormatValue(nil))
}

func TestFormatValueReferenceKinds(t *testing.T) {
	a := &value.Arena{}
	require.Equal(t, "<int[3]>", telemetry.FormatValue(a.Array(3)))
	require.Equal(t, "<seq>", telemetry.FormatValue(a.Seq(vstack.New(nil))))
	require.Equal(t, "<func>", telemetry.FormatValue(a.Fn(func(interface{}) {}, nil)))
}

func TestFormatValueSymResolvesToWordName(t *testing.T) {
	a := &value.Arena{}
	d := dict.New()
	d.Define("x", a.Int(1))
	entry := d.FindSym("x")

	require.Equal(t, "<x>", telemetry.FormatValue(a.Sym(entry)))
}

func TestDumpStackWritesTopToBottom(t *testing.T) {
	a := &value.Arena{}
	s := vstack.New(nil)
	s.Push(a.Int(1))
	s.Push(a.Int(2))
	s.Push(a.Int(3))

	var buf bytes.Buffer
	telemetry.DumpStack(&buf, s)
	require.Equal(t, "3 2 1 \n", buf.String())
}

func TestDumpDictWritesMostRecentFirst(t *testing.T) {
	a := &value.Arena{}
	d := dict.New()
	d.Define("a", a.Int(1))
	d.Define("b", a.Int(2))

	var buf bytes.Buffer
	telemetry.DumpDict(&buf, d)
	require.Equal(t, "b: 2\na: 1\n", buf.String())
}
