// Package fake provides in-memory peripheral.* implementations for
// tests and for running the interpreter on a host with no attached
// hardware.
package fake

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
)

// GPIO is an in-memory GPIO bank: writes land in Pins/Analog, reads
// come back out of the same maps, so a test can pre-seed an input
// value and assert on a written output.
type GPIO struct {
	Modes  map[int]int
	Pins   map[int]int
	Analog map[int]int
}

// NewGPIO returns an empty GPIO bank.
func NewGPIO() *GPIO {
	return &GPIO{Modes: map[int]int{}, Pins: map[int]int{}, Analog: map[int]int{}}
}

func (g *GPIO) PinMode(pin, mode int)   { g.Modes[pin] = mode }
func (g *GPIO) DigitalRead(pin int) int { return g.Pins[pin] }
func (g *GPIO) DigitalWrite(pin, v int) { g.Pins[pin] = v }
func (g *GPIO) AnalogRead(pin int) int  { return g.Analog[pin] }
func (g *GPIO) AnalogWrite(pin, v int)  { g.Analog[pin] = v }

// LEDStrip is an in-memory pixel buffer.
type LEDStrip struct {
	Pixels      []int
	RenderErr   error
	RenderCalls int
	busy        bool
}

// NewLEDStrip returns a strip with n pixels, all initially black.
func NewLEDStrip(n int) *LEDStrip {
	return &LEDStrip{Pixels: make([]int, n)}
}

func (s *LEDStrip) SetPixel(i, rgb int) {
	if i >= 0 && i < len(s.Pixels) {
		s.Pixels[i] = rgb
	}
}

func (s *LEDStrip) Render() error {
	s.RenderCalls++
	return s.RenderErr
}

func (s *LEDStrip) Busy() bool { return s.busy }

// Display7Seg is an in-memory 4-digit display: WriteDigit buffers one
// position, Show snapshots the buffer into Shown so a test can tell
// the two apart (a digit written but not yet shown must not appear in
// Shown).
type Display7Seg struct {
	digits [4]rune
	Shown  [4]rune
	ShowErr error
}

// NewDisplay7Seg returns a display with every position blank.
func NewDisplay7Seg() *Display7Seg {
	d := &Display7Seg{}
	for i := range d.digits {
		d.digits[i] = ' '
		d.Shown[i] = ' '
	}
	return d
}

func (d *Display7Seg) WriteDigit(pos int, digit rune) {
	if pos >= 0 && pos < len(d.digits) {
		d.digits[pos] = digit
	}
}

func (d *Display7Seg) Show() error {
	d.Shown = d.digits
	return d.ShowErr
}

// String renders the currently-shown digits for test assertions.
func (d *Display7Seg) String() string {
	return strings.TrimRight(string(d.Shown[:]), " ")
}

// FileStore is an in-memory named-file store; its map is guarded by a
// mutex, so it is safe for concurrent use.
type FileStore struct {
	mu    sync.Mutex
	Files map[string]string
}

// NewFileStore returns a store seeded with files.
func NewFileStore(files map[string]string) *FileStore {
	if files == nil {
		files = map[string]string{}
	}
	return &FileStore{Files: files}
}

// Open implements peripheral.FileStore. A write-mode Open returns a
// fresh in-memory buffer that is committed back into Files on Close,
// mirroring os.Create's truncate-on-open semantics. A read-mode Open
// returns the named file's current contents, or an error if absent.
func (fs *FileStore) Open(name string, write bool) (io.ReadWriteCloser, error) {
	if write {
		return &writeHandle{store: fs, name: name}, nil
	}
	fs.mu.Lock()
	content, ok := fs.Files[name]
	fs.mu.Unlock()
	if !ok {
		return nil, errNotFound(name)
	}
	return &readHandle{Reader: strings.NewReader(content)}, nil
}

type writeHandle struct {
	store *FileStore
	name  string
	buf   bytes.Buffer
}

func (w *writeHandle) Read([]byte) (int, error) { return 0, io.EOF }
func (w *writeHandle) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}
func (w *writeHandle) Close() error {
	w.store.mu.Lock()
	defer w.store.mu.Unlock()
	w.store.Files[w.name] = w.buf.String()
	return nil
}

type readHandle struct {
	*strings.Reader
}

var errReadOnly = errors.New("fake: file opened read-only")

func (readHandle) Write([]byte) (int, error) { return 0, errReadOnly }
func (readHandle) Close() error              { return nil }

type errNotFound string

func (e errNotFound) Error() string { return "file not found: " + string(e) }
