// Package presenter connects the toast queue to a host rendering
// surface: it gates which surface displays, and runs the loop that
// shows each active message and races custom durations against user
// interaction.
package presenter

import (
	"context"

	"github.com/iVamsi/snapnotify/internal/toast"
)

// NativeDuration is one of the fixed display lengths a host renderer
// supports without help. Arbitrary millisecond durations are enforced
// by the loop's own timer instead.
type NativeDuration int

const (
	NativeShort NativeDuration = iota
	NativeLong
	NativeIndefinite
)

// Outcome is how a display ended.
type Outcome int

const (
	// OutcomeDismissed covers user dismissal, native timeout, and
	// programmatic early dismissal alike.
	OutcomeDismissed Outcome = iota
	// OutcomeActionPerformed means the user triggered the action.
	OutcomeActionPerformed
)

// Request is everything a renderer needs to display one toast.
// Style carries optional hints; renderers fall back to their own
// theme for unset fields.
type Request struct {
	Text        string
	ActionLabel string // empty when the toast has no action
	Duration    NativeDuration
	Style       toast.Style
	HasStyle    bool
}

// Renderer is the host rendering capability. Display blocks until the
// user acts, the native duration elapses, or ctx is cancelled; the
// renderer must free its surface promptly on cancellation.
type Renderer interface {
	Display(ctx context.Context, req Request) (Outcome, error)
}
