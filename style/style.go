// Package style provides a functional API for composing and applying lipgloss-based CLI styles.
//
// Styles decorate CLI chrome only; session output lines are never styled.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/vidcat/vidcat/color"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a rendering function that applies the foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Title renders a padded banner.
var Title = func(s string) string {
	return Colored(color.TitleFg, color.TitleBg).Padding(0, 1).Render(s)
}

// ErrorBox renders a bordered error panel with a heading, a body and an optional hint.
func ErrorBox(heading, body, hint string) string {
	box := New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ErrorColor).
		Padding(1, 2).
		Margin(1, 0)

	parts := []string{
		New().Bold(true).Foreground(ErrorColor).Render(heading),
		"",
		New().Foreground(Text).Render(body),
	}
	if hint != "" {
		parts = append(parts, "", New().Foreground(AccentColor).Render(hint))
	}

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
