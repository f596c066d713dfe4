// Package scheduler implements the language's loop tasks: named
// sequences run periodically by the host tick loop. Grounded on
// original_source/forthduino.cpp's looptasks FDict, op_loopdef/
// op_loopforget (`loop-def`/`loop-forget` there; `loop:def`/
// `loop:forget` in this port), and loop_check.
package scheduler

import (
	"github.com/wmalkin/rgbforth/internal/dict"
	"github.com/wmalkin/rgbforth/internal/value"
	"github.com/wmalkin/rgbforth/internal/vstack"
)

// Scheduler holds loop tasks in a dictionary of the same shape as the
// word dictionary: each entry's value is a 3-element SEQ holding the
// task's body, its period in milliseconds, and its next deadline in
// milliseconds. Reusing dict.Dict (rather than a bespoke map) keeps
// task order significant: tasks are walked in dictionary order, most
// recently defined first, matching loop_check's walk over looptasks.
type Scheduler struct {
	tasks *dict.Dict
	arena *value.Arena
}

// New returns an empty Scheduler backed by arena.
func New(arena *value.Arena) *Scheduler {
	return &Scheduler{tasks: dict.New(), arena: arena}
}

// Bind implements `loop:def`: binds name to task, a SEQ Value holding
// exactly [body, period-ms, next-deadline-ms] (source code assembles
// this literally, e.g. `[ [ ...body... ] 1000.0 0.0 ] 'blink loop:def`).
// The period and deadline are read with AsFloat, but Tick advances the
// deadline in place with SetFloat, which leaves a non-FLOAT deadline
// unchanged: a task written with INT fields (`1000 0`) runs on every
// Tick once due. Any existing task of the same name is replaced
// (forget-then-define, per op_loopdef).
func (s *Scheduler) Bind(name string, task *value.Value) {
	s.tasks.Redefine(name, task)
}

// Forget implements `loop:forget`: removes name's task, if any. The
// dictionary entry (and the Stack/Value graph it owned) is simply
// dropped; internal/value's Arena does not reclaim those cells into its
// free list, but nothing leaks since they remain ordinary
// garbage-collected Go values once unreferenced — unlike the pointer
// the original never freed.
func (s *Scheduler) Forget(name string) bool {
	return s.tasks.Forget(name)
}

// Defined reports whether name has a task.
func (s *Scheduler) Defined(name string) bool {
	return s.tasks.Defined(name)
}

// Tick walks every task in dictionary order (most recently defined
// first) and runs the ones whose deadline has passed, via run, then
// reschedules them at now+period. Matches loop_check's now>=threshold
// test and threshold = now + rate update.
func (s *Scheduler) Tick(nowMS float64, run func(*vstack.Stack)) {
	s.tasks.Walk(func(e *dict.Entry) {
		fields := taskFields(e.Value())
		if fields == nil {
			return
		}
		body, rate, threshold := fields[0], fields[1], fields[2]
		if nowMS < threshold.AsFloat() {
			return
		}
		if seq, ok := body.AsSeq().(*vstack.Stack); ok {
			run(seq)
		}
		threshold.SetFloat(nowMS + rate.AsFloat())
	})
}

// taskFields returns a task SEQ Value's three elements (body, rate,
// threshold), or nil if v is not a well-formed task.
func taskFields(v *value.Value) []*value.Value {
	seq, ok := v.AsSeq().(*vstack.Stack)
	if !ok || seq == nil {
		return nil
	}
	a := seq.At(0)
	if a == nil {
		return nil
	}
	b := seq.At(1)
	if b == nil {
		return nil
	}
	c := seq.At(2)
	if c == nil {
		return nil
	}
	return []*value.Value{a, b, c}
}
