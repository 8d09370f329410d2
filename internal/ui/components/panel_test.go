package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestPanelWidthBounds(t *testing.T) {
	assert.Equal(t, 0, panelWidth(0))
	assert.Equal(t, 30, panelWidth(30))
	assert.Equal(t, 40, panelWidth(50))
	assert.Equal(t, 70, panelWidth(100))
	assert.Equal(t, 80, panelWidth(200))
}

func TestTitledBoxIncludesTitle(t *testing.T) {
	out := TitledBox("Session", "Content", 80)
	assert.True(t, strings.Contains(out, "Session"))
	assert.True(t, strings.Contains(out, "Content"))
}

func TestTitledBoxNarrowTerminalClampsWidth(t *testing.T) {
	out := TitledBox("Session", "line", 30)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 30)
	}
}

func TestTableAlignsLabels(t *testing.T) {
	out := Table("Session", []TableRow{
		{Label: "API", Value: "http://localhost:8000"},
		{Label: "KYC status", Value: "pending"},
	}, 0)

	assert.Contains(t, out, "http://localhost:8000")
	assert.Contains(t, out, "pending")
	assert.Contains(t, out, "KYC status")
}

func TestTableEmpty(t *testing.T) {
	assert.Equal(t, "", Table("x", nil, 80))
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n  b", Indent("a\nb", 2))
}
