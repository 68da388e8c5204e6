package presenter

import (
	"context"
	"time"

	"github.com/iVamsi/snapnotify/internal/duration"
	"github.com/iVamsi/snapnotify/internal/queue"
	"github.com/iVamsi/snapnotify/internal/toast"
)

// Loop drives one renderer from the coordinator's active-message
// stream: display, wait for an outcome, fire the action callback when
// triggered, then advance the queue.
type Loop struct {
	coord    *queue.Coordinator
	renderer Renderer
	onError  func(error)

	sub    *queue.Subscription
	cancel context.CancelFunc
	done   chan struct{}
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithErrorHook installs a callback for renderer failures. Failures
// never reach the code that enqueued the toast; the queue advances
// and the hook is the only trace.
func WithErrorHook(fn func(error)) LoopOption {
	return func(l *Loop) { l.onError = fn }
}

// NewLoop creates a presentation loop. Call Start to begin consuming.
func NewLoop(coord *queue.Coordinator, r Renderer, opts ...LoopOption) *Loop {
	l := &Loop{
		coord:    coord,
		renderer: r,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start subscribes to the coordinator and begins displaying active
// messages on a background goroutine.
func (l *Loop) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.done = make(chan struct{})
	l.sub = l.coord.Subscribe()
	go l.run(ctx)
}

// Stop cancels any in-flight display, unsubscribes, and waits for the
// loop goroutine to exit.
func (l *Loop) Stop() {
	if l.cancel == nil {
		return
	}
	l.cancel()
	<-l.done
	l.coord.Unsubscribe(l.sub)
	l.cancel = nil
}

func (l *Loop) run(ctx context.Context) {
	defer close(l.done)

	var (
		showCancel context.CancelFunc
		showDone   chan struct{}
	)
	// interrupt tears down the in-flight display, if any, and waits
	// for the renderer to release its surface.
	interrupt := func() {
		if showCancel == nil {
			return
		}
		showCancel()
		<-showDone
		showCancel, showDone = nil, nil
	}

	for {
		select {
		case <-ctx.Done():
			interrupt()
			return
		case m := <-l.sub.Active:
			// Each published value supersedes whatever is showing.
			// Clear publishes nil here; the abandoned display is
			// cancelled without re-advancing the queue.
			interrupt()
			if m == nil {
				continue
			}
			showCtx, cancel := context.WithCancel(ctx)
			showCancel = cancel
			showDone = make(chan struct{})
			go func(m toast.Message, done chan struct{}) {
				defer close(done)
				l.show(showCtx, m)
			}(*m, showDone)
		}
	}
}

// show displays one message to completion and advances the queue,
// unless the display was superseded (ctx cancelled), in which case
// the queue has already moved on.
func (l *Loop) show(ctx context.Context, m toast.Message) {
	outcome, err := l.display(ctx, m)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		// Rendering surface failed mid-display. Best effort: drop the
		// toast as if dismissed so the queue never sticks.
		if l.onError != nil {
			l.onError(err)
		}
		l.coord.Advance()
		return
	}
	if outcome == OutcomeActionPerformed {
		if a, ok := m.Action(); ok {
			a.Fn()
		}
	}
	l.coord.Advance()
}

// display resolves the duration strategy. Standard and indefinite
// durations are delegated to the renderer's native handling; finite
// custom durations race the renderer (shown with native indefinite)
// against our own timer, since renderers only speak standard tags.
func (l *Loop) display(ctx context.Context, m toast.Message) (Outcome, error) {
	if tag, ok := m.Duration.StandardTag(); ok {
		return l.renderer.Display(ctx, requestFor(m, nativeTag(tag)))
	}
	if m.Duration.IsIndefinite() {
		return l.renderer.Display(ctx, requestFor(m, NativeIndefinite))
	}

	dispCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		outcome Outcome
		err     error
	}
	resCh := make(chan result, 1)
	go func() {
		o, err := l.renderer.Display(dispCtx, requestFor(m, NativeIndefinite))
		resCh <- result{o, err}
	}()

	timer := time.NewTimer(time.Duration(m.Duration.Millis()) * time.Millisecond)
	defer timer.Stop()

	select {
	case r := <-resCh:
		// User acted or dismissed first; the deferred cancel stops
		// the timer path from firing a stale dismiss later.
		return r.outcome, r.err
	case <-timer.C:
		// Timer won: actively dismiss the in-flight display and wait
		// for the surface to be released before reporting timeout.
		cancel()
		<-resCh
		return OutcomeDismissed, nil
	}
}

func requestFor(m toast.Message, d NativeDuration) Request {
	req := Request{
		Text:     m.Text,
		Duration: d,
	}
	if a, ok := m.Action(); ok {
		req.ActionLabel = a.Label
	}
	if s, ok := m.Style(); ok {
		req.Style = s
		req.HasStyle = true
	}
	return req
}

func nativeTag(std duration.Standard) NativeDuration {
	switch std {
	case duration.Long:
		return NativeLong
	case duration.Indefinite:
		return NativeIndefinite
	}
	return NativeShort
}
