package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	panelBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#273540")).
			Padding(1, 2)

	panelHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7f57b4")).
				Bold(true)

	panelLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#436b77")).
			Bold(true)

	panelValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d7d9da"))
)

// panelWidth uses ~70% of the terminal, between 40 and 80 columns, never
// wider than the terminal itself.
func panelWidth(width int) int {
	if width <= 0 {
		return 0
	}
	w := width * 70 / 100
	w = max(w, 40)
	w = min(w, 80)
	return min(w, width)
}

// TitledBox renders content in a bordered box under a bold title.
func TitledBox(title, content string, width int) string {
	body := content
	if title != "" {
		body = panelHeaderStyle.Render(SanitizeOneLine(title)) + "\n\n" + content
	}
	style := panelBorder
	if w := panelWidth(width); w > 0 {
		style = style.Width(w - style.GetHorizontalBorderSize())
	}
	return style.Render(body)
}

// TableRow is a single label/value row.
type TableRow struct {
	Label string
	Value string
	// ValueColor overrides the value color when set.
	ValueColor lipgloss.Color
}

// Table renders aligned label/value rows inside a titled box.
func Table(title string, rows []TableRow, width int) string {
	if len(rows) == 0 {
		return ""
	}

	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(SanitizeOneLine(r.Label)))
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		label := SanitizeOneLine(r.Label)
		label += strings.Repeat(" ", labelWidth-lipgloss.Width(label))
		valueStyle := panelValueStyle
		if r.ValueColor != "" {
			valueStyle = valueStyle.Foreground(r.ValueColor)
		}
		lines = append(lines, panelLabelStyle.Render(label)+"  "+valueStyle.Render(SanitizeOneLine(r.Value)))
	}
	return TitledBox(title, strings.Join(lines, "\n"), width)
}

// Indent adds left padding to every line of s.
func Indent(s string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
