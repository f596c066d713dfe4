// Package value implements the interpreter's tagged Value union and the
// free list that recycles its cells. There is no garbage collector here on
// purpose: a Value is always owned by exactly one stack slot, dictionary
// entry, or local reference, and callers must Free it explicitly when that
// ownership ends.
package value

import "fmt"

// Kind tags the variant held by a Value.
type Kind int

// The eight variants a Value may hold, per the language's data model.
const (
	FREE Kind = iota
	INT
	FLOAT
	STR
	FUNC
	SEQ
	ARRAY
	SYM
)

func (k Kind) String() string {
	switch k {
	case FREE:
		return "FREE"
	case INT:
		return "INT"
	case FLOAT:
		return "FLOAT"
	case STR:
		return "STR"
	case FUNC:
		return "FUNC"
	case SEQ:
		return "SEQ"
	case ARRAY:
		return "ARRAY"
	case SYM:
		return "SYM"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Func is a native operation a FUNC value may carry, optionally closing
// over a captured Sequence that `call` re-enters. It receives the
// evaluator as an opaque interface{} (concretely *eval.Interp) rather than
// a narrow interface here, since word bodies live in internal/eval and
// need its full surface (both stacks, the dictionary, the color format,
// the arena); threading that surface through an interface defined in this
// lower-level package would just be a second name for *eval.Interp.
type Func func(ev interface{})

// Sequence is the minimal surface of vstack.Stack that a captured FUNC or a
// SEQ payload needs; the concrete type lives in internal/vstack to avoid an
// import cycle between value and vstack (vstack.Stack is built from
// *Value).
type Sequence interface {
	Walk(func(*Value))
}

// Entry is the minimal surface of a dict.Entry that a SYM payload points
// at; defined here to avoid an import cycle with internal/dict.
type Entry interface {
	Word() string
	Value() *Value
}

// Value is a tagged union cell. Next links it into an intrusive singly
// linked stack or free list; it is not part of the value's identity.
type Value struct {
	Kind Kind
	Next *Value

	inum int32
	fnum float64
	str  string
	fn   Func
	seq  Sequence
	ia   []int32
	sym  Entry
}

// Arena recycles Value cells through an explicit free list, tracking the
// lifetime memory counters the language's telemetry words expose.
type Arena struct {
	free  *Value
	stats Stats
}

// Stats is a point-in-time snapshot of an Arena's memory counters.
type Stats struct {
	HeapAllocs  uint64 // cells obtained from the Go heap (free list was empty)
	Allocs      uint64 // total cells handed out, heap or recycled
	Frees       uint64 // total cells returned to the free list
	Live        uint64 // Allocs - Frees
	FreeListLen uint64 // cells currently sitting in the free list
	ArrayAllocs uint64 // lifetime ARRAY payload allocations
	ArrayFrees  uint64 // lifetime ARRAY payload frees
}

// Stats returns a snapshot of the arena's memory counters.
func (a *Arena) Stats() Stats { return a.stats }

// alloc pops a cell off the free list, or makes a new one if it is empty.
func (a *Arena) alloc() *Value {
	a.stats.Allocs++
	if v := a.free; v != nil {
		a.free = v.Next
		a.stats.FreeListLen--
		*v = Value{}
		return v
	}
	a.stats.HeapAllocs++
	return &Value{}
}

// Free releases v's owned payload and returns the cell to the free list.
// Free is a no-op on a nil Value, and double-freeing an already-FREE Value
// is also a no-op (mirrors the silent-failure policy elsewhere in the
// language: freeing is not itself a word a program can misuse).
func (a *Arena) Free(v *Value) {
	if v == nil || v.Kind == FREE {
		return
	}
	if v.Kind == ARRAY {
		a.stats.ArrayFrees++
	}
	*v = Value{Kind: FREE, Next: a.free}
	a.free = v
	a.stats.Frees++
	a.stats.FreeListLen++
	a.stats.Live = a.stats.Allocs - a.stats.Frees
}

// Int allocates an INT Value.
func (a *Arena) Int(n int32) *Value {
	v := a.alloc()
	v.Kind = INT
	v.inum = n
	a.stats.Live = a.stats.Allocs - a.stats.Frees
	return v
}

// Float allocates a FLOAT Value.
func (a *Arena) Float(f float64) *Value {
	v := a.alloc()
	v.Kind = FLOAT
	v.fnum = f
	a.stats.Live = a.stats.Allocs - a.stats.Frees
	return v
}

// Str allocates a STR Value owning a copy of s.
func (a *Arena) Str(s string) *Value {
	v := a.alloc()
	v.Kind = STR
	v.str = s
	a.stats.Live = a.stats.Allocs - a.stats.Frees
	return v
}

// Fn allocates a FUNC Value bound to f, optionally capturing seq (nil if
// the FUNC does not carry a sequence).
func (a *Arena) Fn(f Func, seq Sequence) *Value {
	v := a.alloc()
	v.Kind = FUNC
	v.fn = f
	v.seq = seq
	a.stats.Live = a.stats.Allocs - a.stats.Frees
	return v
}

// Seq allocates a SEQ Value referencing seq. Ownership of seq itself is
// the caller's concern (see design note on SEQ lifetimes): a SEQ pushed to
// an operand stack is non-owning when it aliases a dictionary-bound
// sequence, and owning when it is a freshly parsed top-level sequence.
func (a *Arena) Seq(seq Sequence) *Value {
	v := a.alloc()
	v.Kind = SEQ
	v.seq = seq
	a.stats.Live = a.stats.Allocs - a.stats.Frees
	return v
}

// Array allocates a zero-initialised ARRAY Value of length n.
func (a *Arena) Array(n int) *Value {
	v := a.alloc()
	v.Kind = ARRAY
	v.ia = make([]int32, n)
	a.stats.ArrayAllocs++
	a.stats.Live = a.stats.Allocs - a.stats.Frees
	return v
}

// ArrayFrom allocates an ARRAY Value owning a clone of ia.
func (a *Arena) ArrayFrom(ia []int32) *Value {
	v := a.alloc()
	v.Kind = ARRAY
	v.ia = append([]int32(nil), ia...)
	a.stats.ArrayAllocs++
	a.stats.Live = a.stats.Allocs - a.stats.Frees
	return v
}

// Sym allocates a SYM Value pointing at entry.
func (a *Arena) Sym(entry Entry) *Value {
	v := a.alloc()
	v.Kind = SYM
	v.sym = entry
	a.stats.Live = a.stats.Allocs - a.stats.Frees
	return v
}

// Clone returns a new Value with v's payload duplicated: STR and ARRAY
// payloads are deep-copied so the clone has its own owned buffer, per the
// "duplicating a Value clones its payload" invariant. SEQ payloads are
// shared (a SEQ clone still points at the same underlying Sequence; deep
// cloning a SEQ body on dictionary bind is handled one level up, in
// internal/eval via vstack.Stack.Clone, since it needs a Sequence-shaped
// deep-copy that this package, by design, does not know how to perform).
func (a *Arena) Clone(v *Value) *Value {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case INT:
		return a.Int(v.inum)
	case FLOAT:
		return a.Float(v.fnum)
	case STR:
		return a.Str(v.str)
	case FUNC:
		return a.Fn(v.fn, v.seq)
	case SEQ:
		return a.Seq(v.seq)
	case ARRAY:
		return a.ArrayFrom(v.ia)
	case SYM:
		return a.Sym(v.sym)
	default:
		return a.alloc()
	}
}

// Accessors. Each follows the original's silent-coercion policy: reading a
// Value as the "wrong" type never panics, it just produces the zero value
// (or, for AsInt/AsFloat, a best-effort numeric coercion).

// AsInt coerces v to an int32: INT as itself, FLOAT truncated, anything
// else 0. A nil Value reads as 0, matching the stack-underflow policy.
func (v *Value) AsInt() int32 {
	if v == nil {
		return 0
	}
	switch v.Kind {
	case INT:
		return v.inum
	case FLOAT:
		return int32(v.fnum)
	default:
		return 0
	}
}

// AsFloat coerces v to a float64: FLOAT as itself, INT widened, anything
// else 0.
func (v *Value) AsFloat() float64 {
	if v == nil {
		return 0
	}
	switch v.Kind {
	case FLOAT:
		return v.fnum
	case INT:
		return float64(v.inum)
	default:
		return 0
	}
}

// AsString returns v's STR payload, or "" for any other kind.
func (v *Value) AsString() string {
	if v == nil || v.Kind != STR {
		return ""
	}
	return v.str
}

// AsSeq returns the Sequence captured by a FUNC, or referenced by a SEQ;
// nil otherwise.
func (v *Value) AsSeq() Sequence {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case FUNC, SEQ:
		return v.seq
	default:
		return nil
	}
}

// AsArray returns the backing slice of an ARRAY Value, or nil otherwise.
// The returned slice aliases v's storage: mutating it mutates v in place,
// per the "ARRAY contents are mutable in place" invariant.
func (v *Value) AsArray() []int32 {
	if v == nil || v.Kind != ARRAY {
		return nil
	}
	return v.ia
}

// AsFunc returns v's native operation, or nil if v is not a FUNC.
func (v *Value) AsFunc() Func {
	if v == nil || v.Kind != FUNC {
		return nil
	}
	return v.fn
}

// AsEntry returns the dictionary entry a SYM points at, or nil otherwise.
func (v *Value) AsEntry() Entry {
	if v == nil || v.Kind != SYM {
		return nil
	}
	return v.sym
}

// SetFloat overwrites a FLOAT Value's payload in place, used by the
// scheduler to bump a loop task's next-deadline without reallocating.
// No-op on a nil or non-FLOAT Value.
func (v *Value) SetFloat(f float64) {
	if v == nil || v.Kind != FLOAT {
		return
	}
	v.fnum = f
}

// Len returns an ARRAY's length, or 0 for any other kind.
func (v *Value) Len() int {
	if v == nil || v.Kind != ARRAY {
		return 0
	}
	return len(v.ia)
}
