// Package eval implements the evaluator: the dictionary-and-two-stacks
// interpreter context, sequence dispatch, and the word bindings that give
// the language its behaviour (stack manipulation, the dictionary words,
// control flow, broadcasting numerics, arrays, and color). Grounded on
// original_source/forth.cpp's runValue/runSequence and the op_* word
// bodies it dispatches to.
package eval

import (
	"io"

	"github.com/wmalkin/rgbforth/internal/color"
	"github.com/wmalkin/rgbforth/internal/dict"
	"github.com/wmalkin/rgbforth/internal/peripheral"
	"github.com/wmalkin/rgbforth/internal/scheduler"
	"github.com/wmalkin/rgbforth/internal/value"
	"github.com/wmalkin/rgbforth/internal/vstack"
)

// Interp is the interpreter's process-wide mutable state: the value
// arena, the dictionary, the two operand stacks, the color-format
// selector, and the step-trace hook. There is exactly one Interp per
// running system, passed to every word — the faithful rendition of design
// note 4 (global state as a single instance).
type Interp struct {
	Arena *value.Arena
	Dict  *dict.Dict

	// stack and stash are the primary and secondary operand stacks.
	// `<swap>` exchanges which is which, so word bodies must always go
	// through Push/Pop/Top/etc rather than caching *vstack.Stack.
	stack, stash *vstack.Stack

	// cur is the currently-executing FUNC Value (gfuncparams in the
	// original), read by the `call` word to find its captured sequence.
	cur *value.Value

	ColorFormat color.Format

	Step   bool
	StepFn func(*value.Value)

	Logf func(mess string, args ...interface{})

	// Out is where the print words (`.`, `cr`, `prtdict`, `prtstk`)
	// write; defaults to io.Discard-like no-op if nil.
	Out io.Writer

	// Clock returns the current host time in milliseconds, backing
	// `now` and the scheduler's Tick. Sleep implements the blocking
	// `delay`/`delayus` words; both are host-supplied since internal/eval
	// has no notion of wall-clock time on its own.
	Clock func() float64
	Sleep func(ms int32)

	// Collaborator interfaces bound to the hardware-facing words; each
	// is nil-safe (the corresponding words are no-ops without a bound
	// implementation), matching the original's no-op pinMode/etc on an
	// unrecognized configuration.
	GPIO      peripheral.GPIO
	Strip     peripheral.LEDStrip
	Display   peripheral.Display7Seg
	Files     peripheral.FileStore
	Scheduler *scheduler.Scheduler

	// Echo controls whether a frontend echoes received input back to
	// the user, toggled by `cmd:echo`; internal/host's tick loop reads it.
	Echo bool

	// RunFile is set by main to feed a named file through the same
	// compiler/evaluator path as any other input source, backing
	// `file:run`. internal/eval cannot do this itself without creating
	// an import cycle with internal/lexer.
	RunFile func(name string)
}

// New returns a ready-to-run Interp with empty stacks and dictionary.
func New() *Interp {
	it := &Interp{
		Arena: &value.Arena{},
		Dict:  dict.New(),
		stack: vstack.New(nil),
		stash: vstack.New(nil),
		Echo:  true,
	}
	it.Scheduler = scheduler.New(it.Arena)
	Bootstrap(it)
	return it
}

func (it *Interp) logf(mess string, args ...interface{}) {
	if it.Logf != nil {
		it.Logf(mess, args...)
	}
}

// Push pushes v onto the primary operand stack.
func (it *Interp) Push(v *value.Value) { it.stack.Push(v) }

// Pop pops the primary operand stack, returning nil on underflow (callers
// read a nil Pop as the zero value, per the silent stack-underflow
// policy).
func (it *Interp) Pop() *value.Value { return it.stack.Pop() }

// Stack returns the primary operand stack.
func (it *Interp) Stack() *vstack.Stack { return it.stack }

// Stash returns the secondary operand stack.
func (it *Interp) Stash() *vstack.Stack { return it.stash }

// SwapStacks exchanges the primary and stash stacks' identities (`<swap>`).
func (it *Interp) SwapStacks() { it.stack, it.stash = it.stash, it.stack }

// PopInt pops and coerces to int32, freeing the popped cell.
func (it *Interp) PopInt() int32 {
	v := it.Pop()
	n := v.AsInt()
	it.Arena.Free(v)
	return n
}

// PopFloat pops and coerces to float64, freeing the popped cell.
func (it *Interp) PopFloat() float64 {
	v := it.Pop()
	f := v.AsFloat()
	it.Arena.Free(v)
	return f
}

// PopString pops and reads as a string, freeing the popped cell.
func (it *Interp) PopString() string {
	v := it.Pop()
	s := v.AsString()
	it.Arena.Free(v)
	return s
}

// PopSeq pops a Value and returns the *vstack.Stack it references (a SEQ
// payload, or a FUNC's captured sequence), or nil. The popped cell is
// freed; per SEQ ownership rules the Sequence itself is not — it is
// either a dictionary-owned body (outlives this pop) or a top-level
// sub-sequence nested in the sequence currently being evaluated (owned by
// that outer sequence, also not this pop).
func (it *Interp) PopSeq() *vstack.Stack {
	v := it.Pop()
	var seq *vstack.Stack
	if s, ok := v.AsSeq().(*vstack.Stack); ok {
		seq = s
	}
	it.Arena.Free(v)
	return seq
}

// Run evaluates seq in source order: FUNC values dispatch their native
// operation (with Interp.cur set so `call` can find a captured sequence);
// a SYM bound to a FUNC dispatches that FUNC the same way; everything
// else — including a SYM bound to any other kind — pushes a clone onto
// the operand stack. Mirrors runValue/runSequence exactly.
func (it *Interp) Run(seq *vstack.Stack) {
	if seq == nil {
		return
	}
	seq.Walk(func(item *value.Value) {
		it.runValue(item)
	})
}

func (it *Interp) runValue(item *value.Value) {
	switch {
	case item.Kind == value.FUNC:
		it.dispatch(item, item.AsFunc())
	case item.Kind == value.SYM && item.AsEntry() != nil && item.AsEntry().Value().Kind == value.FUNC:
		bound := item.AsEntry().Value()
		it.dispatch(bound, bound.AsFunc())
	default:
		it.Push(it.Arena.Clone(item))
	}
	if it.Step && it.StepFn != nil {
		it.StepFn(item)
	}
}

func (it *Interp) dispatch(funcVal *value.Value, fn value.Func) {
	prev := it.cur
	it.cur = funcVal
	fn(it)
	it.cur = prev
}

// DefineNative binds word directly to a native Go function, skipping the
// dictionary-SEQ cloning path (used only by Bootstrap).
func (it *Interp) DefineNative(word string, fn func(*Interp)) {
	it.Dict.Define(word, it.Arena.Fn(func(ev interface{}) {
		fn(ev.(*Interp))
	}, nil))
}

// cloneForDict deep-clones val's sequence body (if it is a SEQ) so the
// dictionary owns its own copy, independent of whatever top-level
// sequence produced val; any other kind is returned as-is.
func (it *Interp) cloneForDict(val *value.Value) *value.Value {
	if val.Kind == value.SEQ {
		if s, ok := val.AsSeq().(*vstack.Stack); ok {
			return it.Arena.Seq(s.Clone(it.Arena))
		}
	}
	return val
}

// Define implements the `def` word: forgets any existing binding of word,
// then binds it to val, so exactly one live entry survives.
func (it *Interp) Define(word string, val *value.Value) {
	it.Dict.Redefine(word, it.cloneForDict(val))
}

// DefineShadow implements the `redef` word: prepends a binding for word
// without forgetting any existing one, so the old binding remains visible
// after a `forget` of the new one.
func (it *Interp) DefineShadow(word string, val *value.Value) {
	it.Dict.Define(word, it.cloneForDict(val))
}
