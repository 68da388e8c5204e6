package presenter

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iVamsi/snapnotify/internal/duration"
	"github.com/iVamsi/snapnotify/internal/queue"
	"github.com/iVamsi/snapnotify/internal/toast"
)

const (
	waitTimeout = 2 * time.Second
	pollEvery   = 5 * time.Millisecond
)

// mockRenderer records requests and resolves each display after an
// optional delay. With no delay it blocks until cancelled, like an
// indefinite native display.
type mockRenderer struct {
	mu       sync.Mutex
	requests []Request

	outcome Outcome
	err     error
	delay   time.Duration
}

func (r *mockRenderer) Display(ctx context.Context, req Request) (Outcome, error) {
	r.mu.Lock()
	r.requests = append(r.requests, req)
	r.mu.Unlock()

	if r.err != nil {
		return OutcomeDismissed, r.err
	}
	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
			return r.outcome, nil
		case <-ctx.Done():
			return OutcomeDismissed, nil
		}
	}
	<-ctx.Done()
	return OutcomeDismissed, nil
}

func (r *mockRenderer) seen() []Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Request, len(r.requests))
	copy(out, r.requests)
	return out
}

func short(text string) toast.Message {
	return toast.New(text, duration.FromStandard(duration.Short))
}

func custom(text string, ms int64) toast.Message {
	d, err := duration.FromMillis(ms)
	if err != nil {
		panic(err)
	}
	return toast.New(text, d)
}

func TestLoopDisplaysInArrivalOrder(t *testing.T) {
	c := queue.New()
	r := &mockRenderer{delay: 5 * time.Millisecond, outcome: OutcomeDismissed}
	l := NewLoop(c, r)

	c.Enqueue(short("A"))
	c.Enqueue(short("B"))
	c.Enqueue(short("C"))

	l.Start()
	defer l.Stop()

	require.Eventually(t, func() bool {
		return c.Active() == nil && len(r.seen()) == 3
	}, waitTimeout, pollEvery)

	var texts []string
	for _, req := range r.seen() {
		texts = append(texts, req.Text)
	}
	assert.Equal(t, []string{"A", "B", "C"}, texts)
}

func TestLoopPassesNativeTags(t *testing.T) {
	c := queue.New()
	r := &mockRenderer{delay: time.Millisecond, outcome: OutcomeDismissed}
	l := NewLoop(c, r)

	c.Enqueue(short("short"))
	c.Enqueue(toast.New("long", duration.FromStandard(duration.Long)))

	indef, err := duration.FromMillis(duration.IndefiniteMillis)
	require.NoError(t, err)
	c.Enqueue(toast.New("custom-indefinite", indef))

	l.Start()
	defer l.Stop()

	require.Eventually(t, func() bool {
		return len(r.seen()) == 3
	}, waitTimeout, pollEvery)

	reqs := r.seen()
	assert.Equal(t, NativeShort, reqs[0].Duration)
	assert.Equal(t, NativeLong, reqs[1].Duration)
	assert.Equal(t, NativeIndefinite, reqs[2].Duration)
}

func TestLoopCustomDurationTimesOut(t *testing.T) {
	c := queue.New()
	// No delay: the renderer holds the display until cancelled, so
	// only the loop's own timer can end it.
	r := &mockRenderer{}
	l := NewLoop(c, r)

	var actionFired bool
	c.Enqueue(custom("transient", 50).WithAction("Undo", func() {
		actionFired = true
	}))

	l.Start()
	defer l.Stop()

	require.Eventually(t, func() bool {
		return c.Active() == nil
	}, waitTimeout, pollEvery)

	reqs := r.seen()
	require.Len(t, reqs, 1)
	// Custom durations are displayed natively unbounded and raced
	// against the loop's timer.
	assert.Equal(t, NativeIndefinite, reqs[0].Duration)
	assert.False(t, actionFired, "timeout must not trigger the action")
}

func TestLoopActionWinsRace(t *testing.T) {
	c := queue.New()
	r := &mockRenderer{delay: 5 * time.Millisecond, outcome: OutcomeActionPerformed}
	l := NewLoop(c, r)

	fired := make(chan struct{}, 1)
	// Long custom duration: the user acts long before the timer.
	c.Enqueue(custom("undoable", 60_000).WithAction("Undo", func() {
		fired <- struct{}{}
	}))

	l.Start()
	defer l.Stop()

	select {
	case <-fired:
	case <-time.After(waitTimeout):
		t.Fatal("action callback never fired")
	}

	require.Eventually(t, func() bool {
		return c.Active() == nil
	}, waitTimeout, pollEvery)
}

func TestLoopAdvancesOnRendererFailure(t *testing.T) {
	c := queue.New()
	r := &mockRenderer{err: errors.New("surface torn down")}
	l := NewLoop(c, r)

	var hookErr error
	var mu sync.Mutex
	l.onError = func(err error) {
		mu.Lock()
		hookErr = err
		mu.Unlock()
	}

	c.Enqueue(short("doomed"))

	l.Start()
	defer l.Stop()

	require.Eventually(t, func() bool {
		return c.Active() == nil
	}, waitTimeout, pollEvery)

	mu.Lock()
	defer mu.Unlock()
	require.Error(t, hookErr)
	assert.Contains(t, hookErr.Error(), "surface torn down")
}

func TestLoopClearAbandonsActiveDisplay(t *testing.T) {
	c := queue.New()
	r := &mockRenderer{} // blocks until cancelled
	l := NewLoop(c, r)

	c.Enqueue(toast.New("sticky", duration.FromStandard(duration.Indefinite)))

	l.Start()
	defer l.Stop()

	require.Eventually(t, func() bool {
		return len(r.seen()) == 1
	}, waitTimeout, pollEvery)

	c.Clear()

	require.Eventually(t, func() bool {
		return c.Active() == nil && len(c.Pending()) == 0
	}, waitTimeout, pollEvery)

	// A new toast after Clear displays normally.
	c.Enqueue(short("next"))
	require.Eventually(t, func() bool {
		return len(r.seen()) == 2 && r.seen()[1].Text == "next"
	}, waitTimeout, pollEvery)
}

func TestLoopStopCancelsInFlightDisplay(t *testing.T) {
	c := queue.New()
	r := &mockRenderer{}
	l := NewLoop(c, r)

	c.Enqueue(toast.New("sticky", duration.FromStandard(duration.Indefinite)))

	l.Start()
	require.Eventually(t, func() bool {
		return len(r.seen()) == 1
	}, waitTimeout, pollEvery)

	done := make(chan struct{})
	go func() {
		l.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(waitTimeout):
		t.Fatal("Stop did not return with a display in flight")
	}

	// The abandoned message is still active; Stop must not advance.
	require.NotNil(t, c.Active())
}

func TestRequestCarriesActionLabelAndStyle(t *testing.T) {
	c := queue.New()
	r := &mockRenderer{delay: time.Millisecond, outcome: OutcomeDismissed}
	l := NewLoop(c, r)

	style := toast.Style{Bold: true}
	c.Enqueue(short("styled").WithAction("Retry", func() {}).WithStyle(style))

	l.Start()
	defer l.Stop()

	require.Eventually(t, func() bool {
		return len(r.seen()) == 1
	}, waitTimeout, pollEvery)

	req := r.seen()[0]
	assert.Equal(t, "Retry", req.ActionLabel)
	require.True(t, req.HasStyle)
	assert.Equal(t, style, req.Style)
}
