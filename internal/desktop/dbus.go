//go:build linux

package desktop

import (
	"context"

	"github.com/godbus/dbus/v5"

	"github.com/iVamsi/snapnotify/internal/presenter"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"

	// Key for the default action per the freedesktop notification spec.
	defaultActionKey = "default"
)

// dbusRenderer displays toasts via the session notification server.
type dbusRenderer struct {
	conn *dbus.Conn
	obj  dbus.BusObject
}

// New creates a desktop renderer. Returns the stub renderer if the
// session bus is unavailable (intentional graceful degradation).
func New() (presenter.Renderer, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return stubRenderer{}, nil //nolint:nilerr // graceful fallback when D-Bus unavailable
	}
	obj := conn.Object(dbusNotifyDest, dbusNotifyPath)
	return &dbusRenderer{conn: conn, obj: obj}, nil
}

// Display posts the notification and waits for ActionInvoked or
// NotificationClosed. Standard durations become expire timeouts, so
// native expiry arrives as a NotificationClosed signal. Cancelling
// ctx closes the notification programmatically.
func (r *dbusRenderer) Display(ctx context.Context, req presenter.Request) (presenter.Outcome, error) {
	match := []dbus.MatchOption{
		dbus.WithMatchObjectPath(dbusNotifyPath),
		dbus.WithMatchInterface(dbusNotifyInterface),
	}
	if err := r.conn.AddMatchSignal(match...); err != nil {
		return presenter.OutcomeDismissed, err
	}
	defer func() { _ = r.conn.RemoveMatchSignal(match...) }()

	signals := make(chan *dbus.Signal, 8)
	r.conn.Signal(signals)
	defer r.conn.RemoveSignal(signals)

	id, err := r.notify(req)
	if err != nil {
		return presenter.OutcomeDismissed, err
	}

	for {
		select {
		case <-ctx.Done():
			_ = r.closeNotification(id)
			return presenter.OutcomeDismissed, nil
		case sig, ok := <-signals:
			if !ok {
				return presenter.OutcomeDismissed, nil
			}
			switch sig.Name {
			case dbusNotifyInterface + ".ActionInvoked":
				if sigID, key, ok := actionSignal(sig); ok && sigID == id && key == defaultActionKey {
					return presenter.OutcomeActionPerformed, nil
				}
			case dbusNotifyInterface + ".NotificationClosed":
				if sigID, ok := closedSignal(sig); ok && sigID == id {
					return presenter.OutcomeDismissed, nil
				}
			}
		}
	}
}

// notify posts the notification and returns the server-assigned id.
func (r *dbusRenderer) notify(req presenter.Request) (uint32, error) {
	actions := []string{}
	if req.ActionLabel != "" {
		actions = []string{defaultActionKey, req.ActionLabel}
	}

	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(1)), // normal
		"desktop-entry": dbus.MakeVariant("snapnotify"),
	}

	// D-Bus Notify method signature:
	// Notify(app_name, replaces_id, icon, summary, body, actions, hints, timeout) -> id
	call := r.obj.Call(
		dbusNotifyInterface+".Notify",
		0,            // flags
		"snapnotify", // app_name
		uint32(0),    // replaces_id
		"",           // app_icon
		req.Text,     // summary
		"",           // body
		actions,      // actions
		hints,        // hints
		expireMillis(req.Duration),
	)
	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *dbusRenderer) closeNotification(id uint32) error {
	call := r.obj.Call(dbusNotifyInterface+".CloseNotification", 0, id)
	return call.Err
}

// expireMillis maps a native duration to a freedesktop expire_timeout
// (0 = never expire).
func expireMillis(d presenter.NativeDuration) int32 {
	switch d {
	case presenter.NativeShort:
		return int32(shortExpire.Milliseconds())
	case presenter.NativeLong:
		return int32(longExpire.Milliseconds())
	}
	return 0
}

func actionSignal(sig *dbus.Signal) (uint32, string, bool) {
	if len(sig.Body) != 2 {
		return 0, "", false
	}
	id, ok := sig.Body[0].(uint32)
	if !ok {
		return 0, "", false
	}
	key, ok := sig.Body[1].(string)
	if !ok {
		return 0, "", false
	}
	return id, key, true
}

func closedSignal(sig *dbus.Signal) (uint32, bool) {
	if len(sig.Body) < 1 {
		return 0, false
	}
	id, ok := sig.Body[0].(uint32)
	return id, ok
}
