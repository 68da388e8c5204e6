package presenter

import "sync"

// Gate ensures a single mounted surface renders toasts even when the
// host UI nests several candidate surfaces (whole app, per screen,
// per region). Only the first registrant displays; the rest render
// their content and delegate.
type Gate struct {
	mu    sync.Mutex
	count int
}

// Register records a mounted surface. It returns true iff the caller
// is the first, i.e. becomes the active presenter.
func (g *Gate) Register() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.count++
	return g.count == 1
}

// Unregister records an unmounted surface. The count floors at zero,
// so unbalanced calls are harmless.
func (g *Gate) Unregister() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.count > 0 {
		g.count--
	}
}

// Reset forces the count to zero. Test isolation only.
func (g *Gate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.count = 0
}
