// Package render provides text hygiene helpers for toast rendering.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize removes control characters (except tab/space) and replaces
// invalid UTF-8 bytes with nothing. Toast text comes from arbitrary
// application code; a stray escape sequence must not break the
// terminal.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			// Invalid byte — skip it
			i++
			continue
		}
		if r != '\t' && unicode.IsControl(r) {
			// Control character — skip
			i += size
			continue
		}
		// Replace non-breaking space with regular space
		if r == '\u00a0' {
			b.WriteByte(' ')
			i += size
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

func needsSanitize(s string) bool {
	if !utf8.ValidString(s) {
		return true
	}
	for _, r := range s {
		if r != '\t' && unicode.IsControl(r) {
			return true
		}
		if r == '\u00a0' {
			return true
		}
	}
	return false
}

// Truncate shortens a string to fit within maxWidth, adding an
// ellipsis if truncated. Uses runewidth for proper handling of wide
// characters (CJK, emoji), and sanitizes the input first.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// Row creates a row with left and right aligned content separated by
// spaces. The output is at least width characters wide.
func Row(left, right string, width int) string {
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gap := max(width-leftWidth-rightWidth, 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal separator line of the given width.
func Separator(width int) string {
	return strings.Repeat("─", width)
}
