// Package desktop renders toasts as freedesktop notifications over
// D-Bus. Standard durations map to expire timeouts; the action label
// becomes the notification's default action. On platforms or sessions
// without a notification server the stub renderer honors durations
// locally and reports every toast as dismissed.
package desktop

import (
	"context"
	"time"

	"github.com/iVamsi/snapnotify/internal/presenter"
)

const (
	shortExpire = 4 * time.Second
	longExpire  = 10 * time.Second
)

// stubRenderer is used when no notification server is reachable.
type stubRenderer struct{}

// Display waits out the native duration without showing anything.
// Nothing can interact, so the outcome is always a dismissal.
func (stubRenderer) Display(ctx context.Context, req presenter.Request) (presenter.Outcome, error) {
	if req.Duration == presenter.NativeIndefinite {
		<-ctx.Done()
		return presenter.OutcomeDismissed, nil
	}
	timer := time.NewTimer(nativeExpire(req.Duration))
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
	return presenter.OutcomeDismissed, nil
}

func nativeExpire(d presenter.NativeDuration) time.Duration {
	if d == presenter.NativeLong {
		return longExpire
	}
	return shortExpire
}
