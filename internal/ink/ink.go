// Package ink captures handwriting strokes and prepares them for
// recognition: raster export for the network recognizer and geometric
// normalization for offline similarity scoring.
package ink

// Point is a timestamped position in pad-local coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	T int64   `json:"t"` // unix ms
}

// Stroke is one continuous pointer drag.
type Stroke []Point

// Pad accumulates strokes for a single question attempt. Strokes are
// discarded when the answer is submitted or the pad is cleared.
type Pad struct {
	strokes []Stroke
	current Stroke
	drawing bool
}

// Begin starts a new stroke at the given point.
func (p *Pad) Begin(pt Point) {
	p.drawing = true
	p.current = Stroke{pt}
}

// Extend appends a point to the in-progress stroke. Ignored when no
// stroke is in progress.
func (p *Pad) Extend(pt Point) {
	if !p.drawing {
		return
	}
	p.current = append(p.current, pt)
}

// End finishes the in-progress stroke and commits it to the pad.
func (p *Pad) End() {
	if !p.drawing {
		return
	}
	p.drawing = false
	if len(p.current) > 0 {
		p.strokes = append(p.strokes, p.current)
	}
	p.current = nil
}

// Strokes returns the committed strokes plus any stroke in progress.
func (p *Pad) Strokes() []Stroke {
	if p.drawing && len(p.current) > 0 {
		out := make([]Stroke, 0, len(p.strokes)+1)
		out = append(out, p.strokes...)
		return append(out, p.current)
	}
	return p.strokes
}

// Empty reports whether the pad holds no ink at all.
func (p *Pad) Empty() bool {
	return len(p.strokes) == 0 && len(p.current) == 0
}

// Clear discards every stroke, including one in progress.
func (p *Pad) Clear() {
	p.strokes = nil
	p.current = nil
	p.drawing = false
}
