// Package toast defines the notification record carried through the
// queue and the presentation hints attached to it.
package toast

import (
	"github.com/google/uuid"

	"github.com/iVamsi/snapnotify/internal/duration"
)

// Action is a user-triggerable button on a toast. Label and Fn are one
// unit: a message never carries one without the other.
type Action struct {
	Label string
	Fn    func()
}

// Message is one queued notification. It is immutable once enqueued;
// the With* builders return copies.
type Message struct {
	id       string
	Text     string
	Duration duration.Duration

	action *Action
	style  *Style
}

// New creates a message with the given text and duration.
// The id exists for equality and debugging only; nothing looks
// messages up by it.
func New(text string, d duration.Duration) Message {
	return Message{
		id:       uuid.NewString(),
		Text:     text,
		Duration: d,
	}
}

// ID returns the generated unique token for this message.
func (m Message) ID() string {
	return m.id
}

// WithAction returns a copy carrying an action. An empty label or nil
// callback leaves the message without an action, preserving the
// label-and-callback-together invariant.
func (m Message) WithAction(label string, fn func()) Message {
	if label == "" || fn == nil {
		return m
	}
	m.action = &Action{Label: label, Fn: fn}
	return m
}

// Action returns the action and true when one is attached.
func (m Message) Action() (Action, bool) {
	if m.action == nil {
		return Action{}, false
	}
	return *m.action, true
}

// WithStyle returns a copy carrying presentation hints.
func (m Message) WithStyle(s Style) Message {
	m.style = &s
	return m
}

// Style returns the presentation hints and true when the message
// carries any. Messages without a style defer entirely to the
// presenter's theme.
func (m Message) Style() (Style, bool) {
	if m.style == nil {
		return Style{}, false
	}
	return *m.style, true
}
