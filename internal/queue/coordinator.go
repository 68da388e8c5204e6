// Package queue owns toast ordering: a FIFO of pending messages plus
// the single active slot, safe under arbitrary concurrent callers.
package queue

import (
	"sync"

	"github.com/iVamsi/snapnotify/internal/toast"
)

// Coordinator serializes every queue transition under one mutex so
// that interleaved Enqueue/Advance/Clear calls never yield two active
// messages or lose a pending one. Operations are non-blocking bounded
// critical sections; display waiting happens elsewhere.
type Coordinator struct {
	mu      sync.Mutex
	active  *toast.Message
	pending []toast.Message
	subs    map[*Subscription]struct{}
}

// New creates an empty coordinator.
func New() *Coordinator {
	return &Coordinator{
		subs: make(map[*Subscription]struct{}),
	}
}

// Enqueue adds a message. When idle the message becomes active
// immediately and is published; otherwise it joins the pending FIFO
// without disturbing the current display.
func (c *Coordinator) Enqueue(m toast.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		c.setActive(&m)
		return
	}
	c.pending = append(c.pending, m)
}

// Advance discards the active message and promotes the pending head,
// publishing the new active value (nil when the queue empties).
// Calling Advance while idle is a no-op.
func (c *Coordinator) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return
	}
	if len(c.pending) == 0 {
		c.setActive(nil)
		return
	}
	next := c.pending[0]
	c.pending = c.pending[1:]
	c.setActive(&next)
}

// Clear atomically abandons the active message and empties the
// pending FIFO. The abandoned message gets no dismiss signal; the
// published nil value is what tears down any in-flight display.
func (c *Coordinator) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending = nil
	if c.active != nil {
		c.setActive(nil)
	}
}

// setActive swaps the active slot and publishes. Callers hold c.mu.
// Pure pending appends never reach here, so subscribers only see
// transitions that change which message is displayed.
func (c *Coordinator) setActive(m *toast.Message) {
	c.active = m
	for s := range c.subs {
		s.send(m)
	}
}

// Subscribe registers an observer of the active message. The current
// value is replayed immediately so late subscribers converge without
// waiting for the next transition.
func (c *Coordinator) Subscribe() *Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := newSubscription()
	c.subs[s] = struct{}{}
	s.send(c.active)
	return s
}

// Unsubscribe removes a subscription. Safe to call twice.
func (c *Coordinator) Unsubscribe(s *Subscription) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.subs, s)
}

// Active returns a snapshot of the currently active message, or nil.
func (c *Coordinator) Active() *toast.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return nil
	}
	m := *c.active
	return &m
}

// Pending returns a copy of the pending FIFO in arrival order.
func (c *Coordinator) Pending() []toast.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]toast.Message, len(c.pending))
	copy(out, c.pending)
	return out
}

// Len returns the number of queued messages including the active one.
func (c *Coordinator) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.pending)
	if c.active != nil {
		n++
	}
	return n
}
