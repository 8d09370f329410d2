package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `
 ┌┬┐┬┌┐┌┬  ┌─┐┌─┐─┐ ┬
 │││││││  │  ├┤ ┌┴┬┘
 ┴ ┴┴┘└┘┴  └─┘└─┘┴ └─`

const bannerSubtitle = "Minimal CEX • Command-Line Client"

// RenderBanner returns the styled banner with its subtitle centered below.
func RenderBanner() string {
	lines := splitLines(bannerArt)

	width := lipgloss.Width(bannerSubtitle)
	var b strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		width = max(width, lipgloss.Width(line))
		b.WriteString(BannerStyle.Render(line))
		b.WriteString("\n")
	}

	subtitle := MutedStyle.Width(width).Align(lipgloss.Center).Render(bannerSubtitle)
	return "\n" + b.String() + "\n" + subtitle + "\n"
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}
