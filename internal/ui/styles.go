// Package ui renders the client's views in the terminal. Every view reads
// from one session.State and emits events back through the controller.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spacesedan/sentiview/internal/sentiment"
)

// Palette lifted from the product's brand: purple chrome, one accent per
// sentiment label.
var (
	ColorPrimary = lipgloss.Color("#8b5cf6")
	ColorAccent  = lipgloss.Color("#ec4899")
	ColorMuted   = lipgloss.Color("#a78bfa")
	ColorText    = lipgloss.Color("#f2f2f2")
	ColorError   = lipgloss.Color("#ef4444")
	ColorWarn    = lipgloss.Color("#f59e0b")
	ColorOK      = lipgloss.Color("#10b981")
)

type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style

	Navbar     lipgloss.Style
	NavItem    lipgloss.Style
	NavActive  lipgloss.Style
	Footer     lipgloss.Style
	Card       lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style

	ErrorBanner  lipgloss.Style
	NoticeBanner lipgloss.Style
	Success      lipgloss.Style

	Badge lipgloss.Style
}

func NewStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(ColorText),

		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted),

		Navbar: lipgloss.NewStyle().
			Foreground(ColorText).
			Background(lipgloss.Color("#2d1b4e")).
			Padding(0, 2).
			Bold(true),

		NavItem: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1),

		NavActive: lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 2),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2),

		Selected: lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, 1),

		Unselected: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1),

		ErrorBanner: lipgloss.NewStyle().
			Foreground(ColorError).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorError).
			Padding(0, 1),

		NoticeBanner: lipgloss.NewStyle().
			Foreground(ColorWarn).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorWarn).
			Padding(0, 1),

		Success: lipgloss.NewStyle().
			Foreground(ColorOK).
			Bold(true),

		Badge: lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorAccent).
			Padding(0, 1).
			Bold(true),
	}
}

// SentimentStyle colors a label with its designated color; unrecognized
// labels get the fallback color rather than failing.
func SentimentStyle(label string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(sentiment.LabelColor(label))).
		Bold(true)
}

func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		width = 40
	}
	return s.Muted.Render(strings.Repeat("─", width))
}
