package eval

import "github.com/wmalkin/rgbforth/internal/numeric"

// Bootstrap registers every native word the language ships with,
// mirroring original_source/forth.cpp's initWords dict->def(...) call
// sequence. It runs once, from New.
func Bootstrap(it *Interp) {
	// arithmetic and math
	it.DefineNative("+", binary(numeric.AddI, numeric.AddF))
	it.DefineNative("-", binary(numeric.SubI, numeric.SubF))
	it.DefineNative("*", binary(numeric.MulI, numeric.MulF))
	it.DefineNative("/", binary(numeric.DivI, numeric.DivF))
	it.DefineNative("mod", binary(numeric.ModI, numeric.ModF))
	it.DefineNative("sq", unary(numeric.SqI, numeric.SqF))
	it.DefineNative("sqrt", unary(numeric.SqrtI, numeric.SqrtF))
	it.DefineNative("constrain", ternary(numeric.ConstrainI, numeric.ConstrainF))
	it.DefineNative("sin", unary(numeric.SinI, numeric.SinF))
	it.DefineNative("cos", unary(numeric.CosI, numeric.CosF))
	it.DefineNative("tan", unary(numeric.TanI, numeric.TanF))
	it.DefineNative("deg", unary(numeric.DegI, numeric.DegF))
	it.DefineNative("rad", unary(numeric.RadI, numeric.RadF))
	it.DefineNative("pow", binary(numeric.PowI, numeric.PowF))
	it.DefineNative("abs", unary(numeric.AbsI, numeric.AbsF))

	it.DefineNative("min", binary(numeric.MinI, numeric.MinF))
	it.DefineNative("max", binary(numeric.MaxI, numeric.MaxF))
	it.DefineNative("round", unary(numeric.RoundI, numeric.RoundF))
	it.DefineNative("ceil", unary(numeric.CeilI, numeric.CeilF))
	it.DefineNative("floor", unary(numeric.FloorI, numeric.FloorF))

	it.DefineNative("stack:size", opStackSize)
	it.DefineNative("num:dec", opNumDec)
	it.DefineNative("num:sci", opNumSci)
	it.DefineNative("str:mid", opStrMid)

	// stack manipulation
	it.DefineNative("dup", opDup)
	it.DefineNative("over", opOver)
	it.DefineNative("aty", opAt(1))
	it.DefineNative("atz", opAt(2))
	it.DefineNative("atu", opAt(3))
	it.DefineNative("atv", opAt(4))
	it.DefineNative("atw", opAt(5))
	it.DefineNative("at", opAtN)
	it.DefineNative("swap", opSwap)
	it.DefineNative("rot", opRot)
	it.DefineNative("rup", opRup)
	it.DefineNative("rot4", opRot4)
	it.DefineNative("rup4", opRup4)
	it.DefineNative("rotn", opRotn)
	it.DefineNative("rupn", opRupn)
	it.DefineNative("drop", opDrop)
	it.DefineNative("dup2", opDup2)
	it.DefineNative("drop2", opDrop2)
	it.DefineNative("clst", opClst)

	it.DefineNative(">>>", opStash)
	it.DefineNative("<<<", opUnstash)
	it.DefineNative("<swap>", opSwapStash)

	// int array operands
	it.DefineNative("sum", opSum)
	it.DefineNative("array", opArray)
	it.DefineNative("identity", opIdentity)
	it.DefineNative("index", opIndex)
	it.DefineNative("geta", opGeta)
	it.DefineNative("puta", opPuta)
	it.DefineNative("dgeta", opDgeta)
	it.DefineNative("dputa", opDputa)
	it.DefineNative("size", opSize)
	it.DefineNative("map", opMap)

	it.DefineNative("eq", binary(numeric.EqI, nil))
	it.DefineNative("ne", binary(numeric.NeI, nil))
	it.DefineNative("gt", binary(numeric.GtI, nil))
	it.DefineNative("lt", binary(numeric.LtI, nil))
	it.DefineNative("ge", binary(numeric.GeI, nil))
	it.DefineNative("le", binary(numeric.LeI, nil))
	it.DefineNative("and", binary(numeric.AndI, nil))
	it.DefineNative("or", binary(numeric.OrI, nil))
	it.DefineNative("not", unary(numeric.NotI, nil))

	it.DefineNative("if", opIf)
	it.DefineNative("ife", opIfe)
	it.DefineNative("loop", opLoop)
	it.DefineNative("repeat", opRepeat)
	it.DefineNative("call", opCall)

	it.DefineNative("rgbformat", opRgbformat)
	it.DefineNative("rgb>", opRgbToColor)
	it.DefineNative(">rgb", opColorToRgb)
	it.DefineNative("hsv>", opHsv)
	it.DefineNative("hsvr>", opHsvr)
	it.DefineNative("blend", opBlend)
	it.DefineNative("ablend", opAblend)

	it.DefineNative("def", opDef)
	it.DefineNative("redef", opRedef)
	it.DefineNative("forget", opForget)
	it.DefineNative("def?", opDefp)
	it.DefineNative("vget", opVarget)
	it.DefineNative("step", opStep)

	it.DefineNative("mem:malloc", opMemMalloc)
	it.DefineNative("mem:alloc", opMemAlloc)
	it.DefineNative("mem:free", opMemFree)
	it.DefineNative("mem:calloc", opMemCalloc)
	it.DefineNative("mem:cfree", opMemCfree)
	it.DefineNative("mem:amalloc", opMemAmalloc)
	it.DefineNative("mem:afree", opMemAfreed)

	// telemetry and debug output
	it.DefineNative(".", opDot)
	it.DefineNative("cr", opCr)
	it.DefineNative("prtdict", opPrtDict)
	it.DefineNative("prtstk", opPrtStk)
	it.DefineNative("rndm", opRndm)
	it.DefineNative("rrndm", opRrndm)

	// loop tasks and command framing
	it.DefineNative("loop:def", opLoopDef)
	it.DefineNative("loop:forget", opLoopForget)
	it.DefineNative("cmd:echo", opCmdEcho)
	it.DefineNative("file:run", opRunFile)
	it.DefineNative("udp:init", opUdpInit)

	// GPIO, timing, and the LED strip / 7-segment display collaborators
	it.DefineNative("pinmode", opPinmode)
	it.DefineNative("dread", opDread)
	it.DefineNative("dwrite", opDwrite)
	it.DefineNative("aread", opAread)
	it.DefineNative("awrite", opAwrite)
	it.DefineNative("delay", opDelay)
	it.DefineNative("delayus", opDelayUs)
	it.DefineNative("now", opNow)
	it.DefineNative("strip:set", opStripSet)
	it.DefineNative("strip:show", opStripShow)
	it.DefineNative("strip:busy", opStripBusy)
	it.DefineNative("quad:str", opQuadStr)
	it.DefineNative("quad:show", opQuadShow)
}
