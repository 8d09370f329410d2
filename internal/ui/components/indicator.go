package components

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ErrIndicatorNotFound is returned by Board.Lookup for unknown ids.
var ErrIndicatorNotFound = errors.New("indicator not found")

// Indicator colors.
var (
	ColorHealthy = lipgloss.Color("#3f866b") // green
	ColorFailing = lipgloss.Color("#c0392b") // red
	ColorIdle    = lipgloss.Color("#9ba0bf")
)

// Indicator is a one-line status label with a text color.
type Indicator struct {
	mu    sync.RWMutex
	id    string
	text  string
	color lipgloss.Color
}

// NewIndicator creates an indicator with idle coloring and no text.
func NewIndicator(id string) *Indicator {
	return &Indicator{id: id, color: ColorIdle}
}

func (i *Indicator) ID() string { return i.id }

func (i *Indicator) Text() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.text
}

func (i *Indicator) Color() lipgloss.Color {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.color
}

func (i *Indicator) SetText(text string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.text = SanitizeOneLine(text)
}

func (i *Indicator) SetColor(c lipgloss.Color) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.color = c
}

// Render draws the indicator text in its color.
func (i *Indicator) Render() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return lipgloss.NewStyle().Foreground(i.color).Bold(true).Render(i.text)
}

// Board holds the indicators a screen can address by id.
type Board struct {
	mu    sync.RWMutex
	items map[string]*Indicator
}

// NewBoard creates a board with one indicator per id.
func NewBoard(ids ...string) *Board {
	b := &Board{items: make(map[string]*Indicator, len(ids))}
	for _, id := range ids {
		b.Add(NewIndicator(id))
	}
	return b
}

// Add registers ind, replacing any indicator with the same id.
func (b *Board) Add(ind *Indicator) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items[ind.id] = ind
}

// Lookup returns the indicator registered under id.
func (b *Board) Lookup(id string) (*Indicator, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	ind, ok := b.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrIndicatorNotFound, id)
	}
	return ind, nil
}
