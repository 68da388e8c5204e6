package queue

import "github.com/iVamsi/snapnotify/internal/toast"

const activeBufferSize = 16

// Subscription delivers active-message changes to one subscriber.
// A nil message means no toast is active.
type Subscription struct {
	Active <-chan *toast.Message

	activeCh chan *toast.Message
}

// newSubscription creates a subscription with a buffered channel.
func newSubscription() *Subscription {
	s := &Subscription{
		activeCh: make(chan *toast.Message, activeBufferSize),
	}
	s.Active = s.activeCh
	return s
}

// send publishes a new active value without blocking the coordinator.
// A lagging subscriber loses stale intermediate values, never the
// newest: on a full buffer the oldest entry is dropped so the last
// delivered value is always the current state.
func (s *Subscription) send(m *toast.Message) {
	for {
		select {
		case s.activeCh <- m:
			return
		default:
		}
		select {
		case <-s.activeCh:
		default:
		}
	}
}
