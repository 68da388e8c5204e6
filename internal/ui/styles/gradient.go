package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Lerp blends between two colors at position t in [0,1].
// Blending is done in HCL color space for perceptually uniform
// transitions; the toast bar uses this for its countdown indicator.
func Lerp(from, to lipgloss.Color, t float64) lipgloss.Color {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	c1, _ := colorful.MakeColor(lipglossToColor(from))
	c2, _ := colorful.MakeColor(lipglossToColor(to))
	return lipgloss.Color(c1.BlendHcl(c2, t).Hex())
}

// ApplyGradient renders text with a horizontal color gradient.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	// Split into grapheme clusters for proper unicode handling
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	if len(clusters) == 0 {
		return ""
	}
	if len(clusters) == 1 {
		return lipgloss.NewStyle().Foreground(from).Render(text)
	}

	var b strings.Builder
	for i, cluster := range clusters {
		t := float64(i) / float64(len(clusters)-1)
		style := lipgloss.NewStyle().Foreground(Lerp(from, to, t))
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

// lipglossToColor converts a lipgloss.Color to a color.Color.
func lipglossToColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		col, err := colorful.Hex(hex)
		if err == nil {
			return col
		}
	}
	// Fallback for ANSI colors - return a neutral gray
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}
