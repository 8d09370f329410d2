package ui

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

var (
	ColorPrimary   = lipgloss.Color("#f0a43a") // amber
	ColorSecondary = lipgloss.Color("#436b77") // teal
	ColorText      = lipgloss.Color("#d7d9da")
	ColorMuted     = lipgloss.Color("#9ba0bf")
	ColorWarning   = lipgloss.Color("#c78854")
	ColorBorder    = lipgloss.Color("#273540")
)

// --- Reusable Styles ---

var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true).
			PaddingBottom(1)
)
