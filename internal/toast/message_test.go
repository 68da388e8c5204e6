package toast

import (
	"testing"

	"github.com/iVamsi/snapnotify/internal/duration"
)

func TestNewGeneratesUniqueIDs(t *testing.T) {
	a := New("a", duration.FromStandard(duration.Short))
	b := New("a", duration.FromStandard(duration.Short))
	if a.ID() == "" {
		t.Fatal("ID() is empty")
	}
	if a.ID() == b.ID() {
		t.Error("two messages share an ID")
	}
}

func TestWithActionRequiresBothParts(t *testing.T) {
	m := New("saved", duration.FromStandard(duration.Short))

	if _, ok := m.Action(); ok {
		t.Error("fresh message has an action")
	}

	// Label without callback and callback without label both leave
	// the message action-free.
	if _, ok := m.WithAction("Undo", nil).Action(); ok {
		t.Error("label without callback produced an action")
	}
	if _, ok := m.WithAction("", func() {}).Action(); ok {
		t.Error("callback without label produced an action")
	}

	withBoth := m.WithAction("Undo", func() {})
	a, ok := withBoth.Action()
	if !ok {
		t.Fatal("label+callback did not produce an action")
	}
	if a.Label != "Undo" || a.Fn == nil {
		t.Errorf("Action() = {%q, %p}", a.Label, a.Fn)
	}
}

func TestWithActionDoesNotMutateOriginal(t *testing.T) {
	m := New("saved", duration.FromStandard(duration.Short))
	_ = m.WithAction("Undo", func() {})
	if _, ok := m.Action(); ok {
		t.Error("WithAction mutated the original message")
	}
}

func TestWithStyle(t *testing.T) {
	m := New("saved", duration.FromStandard(duration.Short))
	if _, ok := m.Style(); ok {
		t.Error("fresh message has a style")
	}

	styled := m.WithStyle(Style{Bold: true})
	s, ok := styled.Style()
	if !ok || !s.Bold {
		t.Errorf("Style() = (%+v, %v), want bold style", s, ok)
	}
}
