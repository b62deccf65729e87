package components

import (
	"strings"
	"time"

	"github.com/yuchen/hana/internal/ink"
	"github.com/yuchen/hana/internal/ui/theme"
)

// InkPad is a mouse-driven drawing canvas. Coordinates are pad-local
// terminal cells; the owning screen translates from absolute mouse
// positions before forwarding events.
type InkPad struct {
	Pad    *ink.Pad
	Width  int
	Height int

	drawing bool
}

// NewInkPad creates a drawing canvas of the given cell size.
func NewInkPad(width, height int) *InkPad {
	return &InkPad{
		Pad:    &ink.Pad{},
		Width:  width,
		Height: height,
	}
}

// Contains reports whether a pad-local coordinate is on the canvas.
func (p *InkPad) Contains(x, y int) bool {
	return x >= 0 && x < p.Width && y >= 0 && y < p.Height
}

// PointerDown starts a stroke at a pad-local cell.
func (p *InkPad) PointerDown(x, y int) {
	if !p.Contains(x, y) {
		return
	}
	p.drawing = true
	p.Pad.Begin(padPoint(x, y))
}

// PointerMove extends the current stroke. Points outside the canvas
// are clamped to its edge so strokes stay recognizable.
func (p *InkPad) PointerMove(x, y int) {
	if !p.drawing {
		return
	}
	p.Pad.Extend(padPoint(clamp(x, 0, p.Width-1), clamp(y, 0, p.Height-1)))
}

func padPoint(x, y int) ink.Point {
	return ink.Point{X: float64(x), Y: float64(y), T: time.Now().UnixMilli()}
}

// PointerUp finishes the current stroke.
func (p *InkPad) PointerUp() {
	if !p.drawing {
		return
	}
	p.drawing = false
	p.Pad.End()
}

// Strokes returns all captured strokes including one in progress.
func (p *InkPad) Strokes() []ink.Stroke {
	return p.Pad.Strokes()
}

// Empty reports whether nothing has been drawn.
func (p *InkPad) Empty() bool {
	return p.Pad.Empty()
}

// Clear erases the canvas.
func (p *InkPad) Clear() {
	p.drawing = false
	p.Pad.Clear()
}

// View renders the canvas with captured strokes plotted as cells.
func (p *InkPad) View() string {
	grid := make([][]bool, p.Height)
	for i := range grid {
		grid[i] = make([]bool, p.Width)
	}

	for _, stroke := range p.Strokes() {
		for i, pt := range stroke {
			p.plot(grid, int(pt.X), int(pt.Y))
			if i > 0 {
				p.plotLine(grid, stroke[i-1], pt)
			}
		}
	}

	var b strings.Builder
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			if grid[y][x] {
				b.WriteString(theme.PadStroke.Render("█"))
			} else {
				b.WriteByte(' ')
			}
		}
		if y < p.Height-1 {
			b.WriteByte('\n')
		}
	}

	return theme.PadBorder.Render(b.String())
}

func (p *InkPad) plot(grid [][]bool, x, y int) {
	if x >= 0 && x < p.Width && y >= 0 && y < p.Height {
		grid[y][x] = true
	}
}

// plotLine fills cells between consecutive sample points so strokes
// render as connected marks rather than scattered dots.
func (p *InkPad) plotLine(grid [][]bool, a, b ink.Point) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := int(max(abs(dx), abs(dy)))
	for s := 1; s < steps; s++ {
		t := float64(s) / float64(steps)
		p.plot(grid, int(a.X+dx*t), int(a.Y+dy*t))
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
