package host_test

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wmalkin/rgbforth/internal/eval"
	"github.com/wmalkin/rgbforth/internal/flushio"
	"github.com/wmalkin/rgbforth/internal/host"
	"github.com/wmalkin/rgbforth/internal/lexer"
	"github.com/wmalkin/rgbforth/internal/logio"
)

func TestLoopRunEvaluatesSerialLinesUntilContextDone(t *testing.T) {
	it := eval.New()
	it.Echo = false

	var out bytes.Buffer
	it.Out = flushio.NewWriteFlusher(&out)
	it.Clock = func() float64 { return 0 }

	// Route the interpreter's own trace log through logio.Writer into
	// t.Logf, so any step-trace chatter surfaces in the test's own
	// output instead of being silently dropped.
	logger := log.New(&logio.Writer{Logf: t.Logf}, "", 0)
	it.Logf = logger.Printf

	compiler := lexer.New(it)
	serialIn := strings.NewReader("1 2 + . cr\n")

	loop := host.New(it, compiler, serialIn, nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	err := loop.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Equal(t, "3 \n", out.String())
}

func TestLoopRunWithNoSerialOrUDPJustTicksUntilCancelled(t *testing.T) {
	it := eval.New()
	it.Clock = func() float64 { return 0 }
	compiler := lexer.New(it)

	loop := host.New(it, compiler, nil, nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := loop.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLoopRunDrivesScheduledLoopTasks(t *testing.T) {
	it := eval.New()
	it.Echo = false

	var out bytes.Buffer
	it.Out = flushio.NewWriteFlusher(&out)

	var now float64
	it.Clock = func() float64 { return now }

	compiler := lexer.New(it)
	loop := host.New(it, compiler, nil, nil, nil)

	it.Run(compiler.Feed(`[ [ 1 . ] 0 0 ] 'tick loop:def`))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	_ = loop.Run(ctx)

	require.Contains(t, out.String(), "1 ", "a zero-period loop task bound with loop:def must have run at least once")
}
