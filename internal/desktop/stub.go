//go:build !linux

package desktop

import "github.com/iVamsi/snapnotify/internal/presenter"

// New returns the stub renderer on platforms without a freedesktop
// notification server.
func New() (presenter.Renderer, error) {
	return stubRenderer{}, nil
}
