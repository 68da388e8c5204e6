package toastbar

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iVamsi/snapnotify/internal/presenter"
)

// hideGrace bounds the wait for the model to acknowledge a hide. A
// program that quit mid-display never acknowledges; the surface is
// gone either way.
const hideGrace = time.Second

// Compile-time check that Renderer implements presenter.Renderer.
var _ presenter.Renderer = (*Renderer)(nil)

// Renderer feeds Display requests into a running bubbletea program.
// It is safe to construct before the program starts as long as no
// toast is enqueued until send (tea.Program.Send) is usable.
type Renderer struct {
	send func(tea.Msg)
}

// NewRenderer creates a renderer that delivers toasts via send.
func NewRenderer(send func(tea.Msg)) *Renderer {
	return &Renderer{send: send}
}

// Display shows the request in the toast bar and blocks until the
// model resolves an outcome. Cancelling ctx hides the toast; the
// model then resolves the pending display as dismissed, so Display
// always returns after the surface is released.
func (r *Renderer) Display(ctx context.Context, req presenter.Request) (presenter.Outcome, error) {
	outcome := make(chan presenter.Outcome, 1)
	r.send(showMsg{req: req, outcome: outcome})

	select {
	case o := <-outcome:
		return o, nil
	case <-ctx.Done():
		r.send(hideMsg{})
		select {
		case o := <-outcome:
			return o, nil
		case <-time.After(hideGrace):
			return presenter.OutcomeDismissed, nil
		}
	}
}
