// Package peripheral defines the collaborator interfaces the language
// binds hardware-facing words to: an LED strip, GPIO/ADC pins, a
// 7-segment alphanumeric display, and a file store. Grounded on
// original_source/forthduino.cpp's op_pinmode/op_digitalread/
// op_analogwrite/op_quad_str/op_runfile and the Adafruit/NativeEthernet
// libraries it drives; concrete hardware drivers are out of scope, only
// the words that bind to these interfaces are implemented here.
package peripheral

import "io"

// GPIO is the digital/analog pin interface bound to `pinmode`,
// `dread`, `dwrite`, `aread`, `awrite`.
type GPIO interface {
	PinMode(pin int, mode int)
	DigitalRead(pin int) int
	DigitalWrite(pin int, value int)
	AnalogRead(pin int) int
	AnalogWrite(pin int, value int)
}

// PinMode values, per original_source/forthduino.cpp's op_pinmode
// switch (0 is a no-op, matching the original's missing default case).
const (
	PinModeNone = iota
	PinModeInput
	PinModeOutput
)

// LEDStrip is the addressable-LED driver bound to `strip:set`,
// `strip:show`, `strip:busy`.
type LEDStrip interface {
	SetPixel(i int, rgb int)
	Render() error
	Busy() bool
}

// Display7Seg is the segmented-display I2C device bound to `quad:str`
// (which writes up to four digits via WriteDigit) and `quad:show`
// (which flips the written digits onto the physical display), per the
// quad:str/I2C backpack usage visible in
// original_source/forthduino.cpp's comment block above CheckUDP.
type Display7Seg interface {
	WriteDigit(pos int, digit rune)
	Show() error
}

// FileStore is the attached-storage collaborator bound to `file:run`
// (read) and the UDP "----- name" file-write path, grounded on
// forthduino.cpp's udp_open_file/SD-card usage. write selects open-for-
// read (false) vs. truncate-and-open-for-write (true). Callers are
// responsible for closing the returned ReadWriteCloser once done with
// it; internal/unu.Run does this for the read side, udpframe.Framer
// for the write side.
type FileStore interface {
	Open(name string, write bool) (io.ReadWriteCloser, error)
}
