package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	hintDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf"))
	keyCapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16161d")).
			Background(lipgloss.Color("#888ba4")).
			Bold(true).
			Padding(0, 1)
	statusBarStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingTop(1)
)

// StatusBar joins key hints into the bottom line of a screen.
func StatusBar(hints []string, width int) string {
	line := strings.Join(hints, "  ")
	if width > 0 {
		return statusBarStyle.Width(width).Render(line)
	}
	return statusBarStyle.Render(line)
}

// Hint formats a single keybind hint like "Refresh r".
func Hint(key, desc string) string {
	return hintDescStyle.Render(desc+" ") + keyCapStyle.Render(key)
}
