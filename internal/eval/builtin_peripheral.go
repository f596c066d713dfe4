package eval

// GPIO, timing, strip, and display words, grounded on
// original_source/forthduino.cpp's op_pinmode through op_quad_blank.
// Each is a no-op (after consuming its stack operands) when the
// corresponding collaborator interface isn't bound, matching the
// original's un-set-up peripheral behaving as a no-op.

func opPinmode(it *Interp) {
	mode := int(it.PopInt())
	pin := int(it.PopInt())
	if it.GPIO != nil {
		it.GPIO.PinMode(pin, mode)
	}
}

func opDread(it *Interp) {
	pin := int(it.PopInt())
	v := int32(0)
	if it.GPIO != nil {
		v = int32(it.GPIO.DigitalRead(pin))
	}
	it.Push(it.Arena.Int(v))
}

func opDwrite(it *Interp) {
	v := int(it.PopInt())
	pin := int(it.PopInt())
	if it.GPIO != nil {
		it.GPIO.DigitalWrite(pin, v)
	}
}

func opAread(it *Interp) {
	pin := int(it.PopInt())
	v := int32(0)
	if it.GPIO != nil {
		v = int32(it.GPIO.AnalogRead(pin))
	}
	it.Push(it.Arena.Int(v))
}

func opAwrite(it *Interp) {
	v := int(it.PopInt())
	pin := int(it.PopInt())
	if it.GPIO != nil {
		it.GPIO.AnalogWrite(pin, v)
	}
}

func opDelay(it *Interp) {
	ms := it.PopInt()
	if ms > 0 && it.Sleep != nil {
		it.Sleep(ms)
	}
}

func opDelayUs(it *Interp) {
	// microsecond delay collapses to the same millisecond-resolution
	// Sleep hook as `delay`; sub-millisecond timing isn't meaningful on
	// a host scheduler.
	us := it.PopInt()
	if ms := us / 1000; ms > 0 && it.Sleep != nil {
		it.Sleep(ms)
	}
}

func opNow(it *Interp) {
	var now float64
	if it.Clock != nil {
		now = it.Clock()
	}
	it.Push(it.Arena.Float(now))
}

func opStripSet(it *Interp) {
	rgb := int(it.PopInt())
	idx := int(it.PopInt())
	if it.Strip != nil {
		it.Strip.SetPixel(idx, rgb)
	}
}

func opStripShow(it *Interp) {
	if it.Strip != nil {
		if err := it.Strip.Render(); err != nil {
			it.logf("strip:show: %v", err)
		}
	}
}

func opStripBusy(it *Interp) {
	busy := int32(0)
	if it.Strip != nil && it.Strip.Busy() {
		busy = 1
	}
	it.Push(it.Arena.Int(busy))
}

// opQuadStr writes up to four digits from a popped string onto the
// display buffer, left-justified and space-padded, without flipping
// them onto the physical display — that is `quad:show`'s job, so a
// program can stage all four digits before they become visible
// together, per op_quad_str/op_quad_char's buffered-then-shown model.
func opQuadStr(it *Interp) {
	s := it.PopString()
	if it.Display == nil {
		return
	}
	for i := 0; i < 4; i++ {
		c := rune(' ')
		if i < len(s) {
			c = rune(s[i])
		}
		it.Display.WriteDigit(i, c)
	}
}

func opQuadShow(it *Interp) {
	if it.Display != nil {
		if err := it.Display.Show(); err != nil {
			it.logf("quad:show: %v", err)
		}
	}
}
