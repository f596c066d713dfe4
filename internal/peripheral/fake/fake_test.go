package fake_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wmalkin/rgbforth/internal/peripheral"
	"github.com/wmalkin/rgbforth/internal/peripheral/fake"
)

func TestGPIODigitalReadWriteRoundTrip(t *testing.T) {
	g := fake.NewGPIO()
	var _ peripheral.GPIO = g

	g.PinMode(1, peripheral.PinModeOutput)
	g.DigitalWrite(1, 1)
	require.Equal(t, 1, g.DigitalRead(1))
	require.Equal(t, peripheral.PinModeOutput, g.Modes[1])
}

func TestGPIOAnalogReadWrite(t *testing.T) {
	g := fake.NewGPIO()
	g.AnalogWrite(9, 128)
	require.Equal(t, 128, g.AnalogRead(9))
}

func TestLEDStripSetPixelAndRender(t *testing.T) {
	s := fake.NewLEDStrip(3)
	var _ peripheral.LEDStrip = s

	s.SetPixel(1, 0xff00ff)
	require.Equal(t, 0xff00ff, s.Pixels[1])
	require.Equal(t, 0, s.Pixels[0])

	require.NoError(t, s.Render())
	require.Equal(t, 1, s.RenderCalls)
}

func TestLEDStripSetPixelOutOfRangeIsNoop(t *testing.T) {
	s := fake.NewLEDStrip(2)
	require.NotPanics(t, func() {
		s.SetPixel(-1, 1)
		s.SetPixel(5, 1)
	})
}

func TestLEDStripRenderErrIsReturned(t *testing.T) {
	s := fake.NewLEDStrip(1)
	s.RenderErr = io.ErrClosedPipe
	require.ErrorIs(t, s.Render(), io.ErrClosedPipe)
}

func TestDisplay7SegWriteDigitAndShow(t *testing.T) {
	d := fake.NewDisplay7Seg()
	var _ peripheral.Display7Seg = d

	d.WriteDigit(0, '1')
	d.WriteDigit(1, '2')
	require.NoError(t, d.Show())
	require.Equal(t, "12", d.String())
}

func TestDisplay7SegWriteDigitOutOfRangeIsNoop(t *testing.T) {
	d := fake.NewDisplay7Seg()
	require.NotPanics(t, func() {
		d.WriteDigit(-1, 'x')
		d.WriteDigit(10, 'x')
	})
}

func TestFileStoreReadExisting(t *testing.T) {
	fs := fake.NewFileStore(map[string]string{"a.fs": "dup *"})
	var _ peripheral.FileStore = fs

	rwc, err := fs.Open("a.fs", false)
	require.NoError(t, err)
	defer rwc.Close()

	data, err := io.ReadAll(rwc)
	require.NoError(t, err)
	require.Equal(t, "dup *", string(data))
}

func TestFileStoreReadMissingErrors(t *testing.T) {
	fs := fake.NewFileStore(nil)
	_, err := fs.Open("missing.fs", false)
	require.Error(t, err)
}

func TestFileStoreWriteThenRead(t *testing.T) {
	fs := fake.NewFileStore(nil)

	w, err := fs.Open("out.fs", true)
	require.NoError(t, err)
	_, err = io.WriteString(w, "1 2 +\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := fs.Open("out.fs", false)
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "1 2 +\n", string(data))
}

func TestFileStoreWriteHandleRejectsRead(t *testing.T) {
	fs := fake.NewFileStore(nil)
	w, err := fs.Open("out.fs", true)
	require.NoError(t, err)

	n, err := w.Read(make([]byte, 8))
	require.Equal(t, 0, n)
	require.ErrorIs(t, err, io.EOF)
}
