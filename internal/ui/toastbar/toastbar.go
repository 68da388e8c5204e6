// Package toastbar renders the active toast inside a bubbletea
// program. The Model draws the toast and handles its keys; Renderer
// bridges the presentation loop into the program's message stream.
package toastbar

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iVamsi/snapnotify/internal/presenter"
	"github.com/iVamsi/snapnotify/internal/ui/render"
	"github.com/iVamsi/snapnotify/internal/ui/styles"
)

const tickInterval = 500 * time.Millisecond

type keyMap struct {
	Action  key.Binding
	Dismiss key.Binding
}

var keys = keyMap{
	Action: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "action"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "dismiss"),
	),
}

// showMsg asks the model to display a toast. The model resolves
// outcome exactly once per show.
type showMsg struct {
	req     presenter.Request
	outcome chan presenter.Outcome
}

// hideMsg tears down the current display (programmatic dismissal).
type hideMsg struct{}

// tickMsg advances the native expiry countdown. Version ignores
// ticks from a display that is no longer current.
type tickMsg struct {
	Version int
}

// display is the currently shown toast.
type display struct {
	req       presenter.Request
	outcome   chan presenter.Outcome
	shownAt   time.Time
	expiresIn time.Duration // 0 = indefinite
}

// Model is the toast bar component.
type Model struct {
	theme   *styles.Theme
	width   int
	current *display
	version int
}

// New creates a toast bar using the given theme.
func New(theme *styles.Theme) Model {
	if theme == nil {
		theme = styles.T()
	}
	return Model{theme: theme}
}

// Visible reports whether a toast is currently shown.
func (m Model) Visible() bool {
	return m.current != nil
}

// SetWidth sets the available width for rendering.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// Update handles toast bar messages and keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case showMsg:
		return m.show(msg)

	case hideMsg:
		m.resolve(presenter.OutcomeDismissed)
		return m, nil

	case tickMsg:
		if msg.Version != m.version || m.current == nil {
			return m, nil
		}
		if m.current.expiresIn > 0 && time.Since(m.current.shownAt) >= m.current.expiresIn {
			m.resolve(presenter.OutcomeDismissed)
			return m, nil
		}
		return m, m.tick()

	case tea.KeyMsg:
		if m.current == nil {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Action):
			if m.current.req.ActionLabel != "" {
				m.resolve(presenter.OutcomeActionPerformed)
			}
		case key.Matches(msg, keys.Dismiss):
			m.resolve(presenter.OutcomeDismissed)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) show(msg showMsg) (Model, tea.Cmd) {
	// Superseding an unresolved display should not happen (the loop
	// waits for each outcome), but resolve defensively to never leak
	// a blocked Display call.
	m.resolve(presenter.OutcomeDismissed)

	m.version++
	d := &display{
		req:     msg.req,
		outcome: msg.outcome,
		shownAt: time.Now(),
	}
	switch msg.req.Duration {
	case presenter.NativeShort:
		d.expiresIn = 4 * time.Second
	case presenter.NativeLong:
		d.expiresIn = 10 * time.Second
	}
	m.current = d

	if d.expiresIn == 0 {
		return m, nil
	}
	return m, m.tick()
}

func (m Model) tick() tea.Cmd {
	version := m.version
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{Version: version}
	})
}

// resolve reports the outcome for the current display, if any, and
// clears it.
func (m *Model) resolve(o presenter.Outcome) {
	if m.current == nil {
		return
	}
	m.current.outcome <- o
	m.current = nil
}

// View renders the active toast, or nothing.
func (m Model) View() string {
	if m.current == nil {
		return ""
	}
	req := m.current.req

	content := m.theme.S().Base
	action := m.theme.S().Action
	container := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)

	if req.HasStyle {
		s := req.Style
		if s.Content != "" {
			content = content.Foreground(s.Content)
		}
		if s.Bold {
			content = content.Bold(true)
		}
		if s.Action != "" {
			action = action.Foreground(s.Action)
		}
		if s.HasBorder {
			container = container.BorderStyle(s.Border)
			if s.Content != "" {
				container = container.BorderForeground(s.Content)
			}
		}
		if s.Container != "" {
			container = container.Background(s.Container)
		}
	}

	maxText := m.width - 10
	if maxText < 8 {
		maxText = 8
	}
	line := m.indicator() + " " + content.Render(render.Truncate(req.Text, maxText))
	if req.ActionLabel != "" {
		line += "  " + action.Render(req.ActionLabel) +
			" " + m.theme.S().Muted.Render("(enter)")
	}
	return container.Render(line)
}

// indicator is a dot that drifts from the success color toward the
// error color as the native expiry approaches. Indefinite toasts get
// the muted color.
func (m Model) indicator() string {
	d := m.current
	if d.expiresIn == 0 {
		return m.theme.S().Muted.Render("●")
	}
	frac := float64(time.Since(d.shownAt)) / float64(d.expiresIn)
	c := styles.Lerp(m.theme.Success, m.theme.Error, frac)
	return lipgloss.NewStyle().Foreground(c).Render("●")
}
