package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/yuchen/hana/internal/ui/theme"
)

// dragScale converts pixel-space drag offsets into terminal columns.
const dragScale = 0.2

// Card renders a flashcard that can be flipped and dragged sideways.
type Card struct {
	Front   []string
	Back    []string
	Flipped bool

	// Offset is the horizontal drag distance in pixel space.
	// Positive drags right (known), negative left (unknown).
	Offset float64

	// Verdict tints the card border once a swipe commits.
	// +1 known, -1 unknown, 0 undecided.
	Verdict int

	Width int
}

// NewCard creates a flashcard with the given faces.
func NewCard(front, back []string, width int) Card {
	return Card{Front: front, Back: back, Width: width}
}

// View renders the card displaced by its drag offset.
func (c Card) View() string {
	lines := c.Front
	if c.Flipped {
		lines = c.Back
	}

	border := theme.Border
	switch {
	case c.Verdict > 0:
		border = theme.Success
	case c.Verdict < 0:
		border = theme.Error
	}

	inner := strings.Join(lines, "\n")
	card := lipgloss.NewStyle().
		Width(c.Width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Render(inner)

	shift := int(c.Offset * dragScale)
	if shift == 0 {
		return card
	}

	// Reflow the card with a horizontal margin so dragging reads as
	// motion. Negative offsets clamp at the left edge.
	if shift > 0 {
		return lipgloss.NewStyle().MarginLeft(shift).Render(card)
	}
	return card
}
