package eval

// Memory-telemetry words, grounded on original_source/forth.cpp's
// op_mem_malloc through op_mem_afreed: each reads an Arena.Stats
// counter rather than the original's global mem struct fields.

func opMemMalloc(it *Interp) { it.Push(it.Arena.Int(int32(it.Arena.Stats().HeapAllocs))) }
func opMemAlloc(it *Interp)  { it.Push(it.Arena.Int(int32(it.Arena.Stats().Allocs))) }
func opMemFree(it *Interp)   { it.Push(it.Arena.Int(int32(it.Arena.Stats().Frees))) }
func opMemCalloc(it *Interp) { it.Push(it.Arena.Int(int32(it.Arena.Stats().Live))) }
func opMemCfree(it *Interp)  { it.Push(it.Arena.Int(int32(it.Arena.Stats().FreeListLen))) }
func opMemAmalloc(it *Interp) {
	it.Push(it.Arena.Int(int32(it.Arena.Stats().ArrayAllocs)))
}
func opMemAfreed(it *Interp) {
	it.Push(it.Arena.Int(int32(it.Arena.Stats().ArrayFrees)))
}
