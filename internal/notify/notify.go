// Package notify is the public entry point for showing toasts.
//
// Any goroutine may call these functions; they enqueue and return
// immediately. The process-wide queue initializes lazily on first
// use, so calling before a presenter mounts is always safe — toasts
// simply wait until one subscribes.
package notify

import (
	"sync"

	"github.com/iVamsi/snapnotify/internal/duration"
	"github.com/iVamsi/snapnotify/internal/presenter"
	"github.com/iVamsi/snapnotify/internal/queue"
	"github.com/iVamsi/snapnotify/internal/toast"
	"github.com/iVamsi/snapnotify/internal/ui/styles"
)

var (
	mu    sync.Mutex
	coord *queue.Coordinator
	gate  presenter.Gate
	theme = styles.T()
)

// Queue returns the process-wide coordinator, creating it on first
// use. Presenters subscribe through it.
func Queue() *queue.Coordinator {
	mu.Lock()
	defer mu.Unlock()

	if coord == nil {
		coord = queue.New()
	}
	return coord
}

// RegisterPresenter claims display responsibility for a mounted
// surface. Only the first registrant should subscribe and render;
// callers receiving false must delegate.
func RegisterPresenter() bool {
	return gate.Register()
}

// UnregisterPresenter releases a previously registered surface.
func UnregisterPresenter() {
	gate.Unregister()
}

// SetTheme changes the theme backing the Success/Error/Warning/Info
// presets. Pass nil to restore the default.
func SetTheme(t *styles.Theme) {
	mu.Lock()
	defer mu.Unlock()

	if t == nil {
		t = styles.T()
	}
	theme = t
}

// Reset drops the queue, gate state, and theme. Test isolation only.
func Reset() {
	mu.Lock()
	coord = nil
	theme = styles.T()
	mu.Unlock()
	gate.Reset()
}

type options struct {
	dur         duration.Duration
	durErr      error
	actionLabel string
	actionFn    func()
	style       *toast.Style
}

// Option customizes a toast.
type Option func(*options)

// WithDuration sets how long the toast stays visible.
func WithDuration(d duration.Duration) Option {
	return func(o *options) { o.dur = d }
}

// WithDurationMillis sets a custom display duration in milliseconds.
func WithDurationMillis(ms int64) Option {
	return func(o *options) { o.dur, o.durErr = duration.FromMillis(ms) }
}

// WithAction attaches a labeled action button. The callback runs on
// the presentation loop's goroutine when the user triggers it.
func WithAction(label string, fn func()) Option {
	return func(o *options) {
		o.actionLabel = label
		o.actionFn = fn
	}
}

// WithStyle overrides the presentation hints for this toast.
func WithStyle(s toast.Style) Option {
	return func(o *options) { o.style = &s }
}

// Show enqueues a toast. It returns an error only for invalid input
// (a non-positive custom duration); well-formed toasts never fail.
func Show(text string, opts ...Option) error {
	o := options{dur: duration.FromStandard(duration.Short)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.durErr != nil {
		return o.durErr
	}

	m := toast.New(text, o.dur).
		WithAction(o.actionLabel, o.actionFn)
	if o.style != nil {
		m = m.WithStyle(*o.style)
	}
	Queue().Enqueue(m)
	return nil
}

func currentTheme() *styles.Theme {
	mu.Lock()
	defer mu.Unlock()
	return theme
}

func themed(text string, style toast.Style, opts []Option) error {
	return Show(text, append([]Option{WithStyle(style)}, opts...)...)
}

// Success shows a success-themed toast.
func Success(text string, opts ...Option) error {
	return themed(text, toast.SuccessStyle(currentTheme()), opts)
}

// Error shows an error-themed toast.
func Error(text string, opts ...Option) error {
	return themed(text, toast.ErrorStyle(currentTheme()), opts)
}

// Warning shows a warning-themed toast.
func Warning(text string, opts ...Option) error {
	return themed(text, toast.WarningStyle(currentTheme()), opts)
}

// Info shows an info-themed toast.
func Info(text string, opts ...Option) error {
	return themed(text, toast.InfoStyle(currentTheme()), opts)
}

// ClearAll unconditionally drops the active toast and everything
// pending.
func ClearAll() {
	Queue().Clear()
}
