package toast

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iVamsi/snapnotify/internal/ui/styles"
)

// Style is an optional bundle of presentation hints. Every field is
// optional; zero-valued fields defer to the active presenter's theme.
// Styles compare by value.
type Style struct {
	Container lipgloss.Color // toast background
	Content   lipgloss.Color // message text color
	Action    lipgloss.Color // action label color

	// Border is the container shape. HasBorder distinguishes "no
	// preference" from an explicitly borderless toast.
	Border    lipgloss.Border
	HasBorder bool

	Bold bool // render message text bold
}

// IsZero reports whether no hint is set.
func (s Style) IsZero() bool {
	return s == Style{}
}

func preset(t *styles.Theme, accent lipgloss.Color) Style {
	return Style{
		Container: t.BgBase,
		Content:   t.FgBase,
		Action:    accent,
		Border:    lipgloss.RoundedBorder(),
		HasBorder: true,
	}
}

// DefaultStyle returns the neutral preset for a theme.
func DefaultStyle(t *styles.Theme) Style {
	return preset(t, t.Accent)
}

// SuccessStyle returns the success preset for a theme.
func SuccessStyle(t *styles.Theme) Style {
	s := preset(t, t.Success)
	s.Content = t.Success
	return s
}

// ErrorStyle returns the error preset for a theme.
func ErrorStyle(t *styles.Theme) Style {
	s := preset(t, t.Error)
	s.Content = t.Error
	s.Bold = true
	return s
}

// WarningStyle returns the warning preset for a theme.
func WarningStyle(t *styles.Theme) Style {
	s := preset(t, t.Warning)
	s.Content = t.Warning
	return s
}

// InfoStyle returns the info preset for a theme.
func InfoStyle(t *styles.Theme) Style {
	s := preset(t, t.Info)
	s.Content = t.Info
	return s
}
