package scheduler_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wmalkin/rgbforth/internal/scheduler"
	"github.com/wmalkin/rgbforth/internal/value"
	"github.com/wmalkin/rgbforth/internal/vstack"
)

func newTask(a *value.Arena, body *vstack.Stack, rateMS, nextMS float64) *value.Value {
	task := vstack.New(nil)
	task.PushTail(a.Seq(body))
	task.PushTail(a.Float(rateMS))
	task.PushTail(a.Float(nextMS))
	return a.Seq(task)
}

func TestBindAndDefined(t *testing.T) {
	a := &value.Arena{}
	s := scheduler.New(a)
	require.False(t, s.Defined("blink"))

	body := vstack.New(nil)
	s.Bind("blink", newTask(a, body, 1000, 0))
	require.True(t, s.Defined("blink"))
}

func TestBindReplacesExistingTask(t *testing.T) {
	a := &value.Arena{}
	s := scheduler.New(a)

	var ran int
	run := func(seq *vstack.Stack) { ran++ }

	body1 := vstack.New(nil)
	s.Bind("t", newTask(a, body1, 1000, 0))
	body2 := vstack.New(nil)
	s.Bind("t", newTask(a, body2, 1000, 0))

	s.Tick(0, run)
	require.Equal(t, 1, ran, "rebinding a task name must replace, not duplicate, it")
}

func TestForgetRemovesTask(t *testing.T) {
	a := &value.Arena{}
	s := scheduler.New(a)
	body := vstack.New(nil)
	s.Bind("t", newTask(a, body, 1000, 0))

	require.True(t, s.Forget("t"))
	require.False(t, s.Defined("t"))
	require.False(t, s.Forget("t"), "forgetting an already-gone task reports false")
}

func TestTickRunsDueTasksAndReschedules(t *testing.T) {
	a := &value.Arena{}
	s := scheduler.New(a)
	body := vstack.New(nil)
	s.Bind("t", newTask(a, body, 1000, 0))

	var seen []*vstack.Stack
	run := func(seq *vstack.Stack) { seen = append(seen, seq) }

	s.Tick(0, run)
	require.Len(t, seen, 1)
	require.Same(t, body, seen[0])

	// not due yet: threshold was rescheduled to 1000
	s.Tick(500, run)
	require.Len(t, seen, 1)

	s.Tick(1000, run)
	require.Len(t, seen, 2)
}

func TestTickSkipsTasksNotYetDue(t *testing.T) {
	a := &value.Arena{}
	s := scheduler.New(a)
	body := vstack.New(nil)
	s.Bind("t", newTask(a, body, 1000, 5000))

	var ran bool
	s.Tick(0, func(*vstack.Stack) { ran = true })
	require.False(t, ran)
}

func TestTickIgnoresMalformedTask(t *testing.T) {
	a := &value.Arena{}
	s := scheduler.New(a)
	s.Bind("bad", a.Int(42))

	require.NotPanics(t, func() {
		s.Tick(0, func(*vstack.Stack) {})
	})
}

func TestTickWalksMostRecentlyDefinedFirst(t *testing.T) {
	a := &value.Arena{}
	s := scheduler.New(a)

	bodyA := vstack.New(nil)
	bodyB := vstack.New(nil)
	bodyC := vstack.New(nil)
	s.Bind("a", newTask(a, bodyA, 1000, 0))
	s.Bind("b", newTask(a, bodyB, 1000, 0))
	s.Bind("c", newTask(a, bodyC, 1000, 0))

	var order []*vstack.Stack
	s.Tick(0, func(seq *vstack.Stack) { order = append(order, seq) })

	require.Equal(t, []*vstack.Stack{bodyC, bodyB, bodyA}, order, "Walk visits most-recently-defined first")
}
