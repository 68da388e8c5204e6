package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette used when a toast does not carry its
// own style. Presenters resolve unset style fields against it.
type Theme struct {
	// Text
	FgBase  lipgloss.Color // toast message text
	FgMuted lipgloss.Color // hints (key help, countdown)

	// Surfaces
	BgBase lipgloss.Color // toast container background
	Border lipgloss.Color // container border

	// Accent for action labels
	Accent lipgloss.Color

	// Semantic colors backing the four toast presets
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Info    lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles derived from a Theme.
type Styles struct {
	Base    lipgloss.Style // default toast text
	Muted   lipgloss.Style // hint text
	Action  lipgloss.Style // action label
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

var defaultTheme = Theme{
	FgBase:  lipgloss.Color("#c0c0c0"),
	FgMuted: lipgloss.Color("#808080"),

	BgBase: lipgloss.Color("#1a1a1a"),
	Border: lipgloss.Color("#585858"),

	Accent: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
	Info:    lipgloss.Color("#7aa2f7"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// Clone returns a copy with its style cache reset, so callers can
// override colors before the styles are built.
func (t *Theme) Clone() *Theme {
	c := *t
	c.styles = nil
	return &c
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	return &Styles{
		Base:    lipgloss.NewStyle().Foreground(t.FgBase),
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Action:  lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
		Info:    lipgloss.NewStyle().Foreground(t.Info),
	}
}
