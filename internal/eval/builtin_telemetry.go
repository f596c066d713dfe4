package eval

import (
	"math/rand"

	"github.com/wmalkin/rgbforth/internal/telemetry"
)

// opDot implements `.`: pops and prints one value. opCr/opPrtDict/
// opPrtStk print a newline, the whole dictionary, and the whole stack,
// respectively. All are silent no-ops if Out isn't set.
func opDot(it *Interp) {
	v := it.Pop()
	if it.Out != nil {
		it.Out.Write([]byte(telemetry.FormatValue(v) + " "))
	}
	it.Arena.Free(v)
}

func opCr(it *Interp) {
	if it.Out != nil {
		it.Out.Write([]byte("\n"))
	}
}

func opPrtDict(it *Interp) {
	if it.Out != nil {
		telemetry.DumpDict(it.Out, it.Dict)
	}
}

func opPrtStk(it *Interp) {
	if it.Out != nil {
		telemetry.DumpStack(it.Out, it.Stack())
	}
}

func opRndm(it *Interp) {
	max := it.PopInt()
	if max <= 0 {
		it.Push(it.Arena.Int(0))
		return
	}
	it.Push(it.Arena.Int(rand.Int31n(max)))
}

func opRrndm(it *Interp) {
	max := it.PopInt()
	min := it.PopInt()
	if max <= min {
		it.Push(it.Arena.Int(min))
		return
	}
	it.Push(it.Arena.Int(min + rand.Int31n(max-min)))
}

func opLoopDef(it *Interp) {
	word := it.PopString()
	val := it.Pop()
	it.Scheduler.Bind(word, val)
}

func opLoopForget(it *Interp) {
	word := it.PopString()
	it.Scheduler.Forget(word)
}

func opCmdEcho(it *Interp) {
	it.Echo = it.PopInt() != 0
}

func opRunFile(it *Interp) {
	name := it.PopString()
	if it.RunFile != nil {
		it.RunFile(name)
	}
}

// opUdpInit implements `udp:init`: pops the port, four IP octets, and
// six MAC bytes load_inet() consumes to bring up the network link.
// This port's UDP socket is already bound by main before the
// evaluator ever runs (a host OS has no notion of handing a NIC's MAC
// address to the language), so the popped values are only logged, per
// load_inet's own Serial.print status chatter.
func opUdpInit(it *Interp) {
	port := it.PopInt()
	var ip [4]int32
	for i := 3; i >= 0; i-- {
		ip[i] = it.PopInt()
	}
	var mac [6]int32
	for i := 5; i >= 0; i-- {
		mac[i] = it.PopInt()
	}
	it.logf("udp:init mac=%v ip=%v port=%d", mac, ip, port)
}
