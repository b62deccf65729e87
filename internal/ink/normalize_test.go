package ink

import (
	"math"
	"testing"
)

func lineStroke(n int, x0, y0, x1, y1 float64) Stroke {
	s := make(Stroke, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		s[i] = Point{X: x0 + (x1-x0)*t, Y: y0 + (y1-y0)*t, T: int64(i)}
	}
	return s
}

func TestNormalizeResample_UnitBox(t *testing.T) {
	strokes := []Stroke{
		lineStroke(10, 50, 120, 200, 340),
		lineStroke(10, 80, 100, 150, 400),
	}

	got := NormalizeResample(strokes, DefaultResamplePoints)

	if len(got) != 20 {
		t.Fatalf("len = %d, want 20 (input below cap passes through)", len(got))
	}
	for i, p := range got {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			t.Errorf("point %d = (%v, %v) outside unit box", i, p.X, p.Y)
		}
	}
}

func TestNormalizeResample_CapsLength(t *testing.T) {
	strokes := []Stroke{lineStroke(200, 0, 0, 100, 100)}

	got := NormalizeResample(strokes, 32)

	if len(got) != 32 {
		t.Fatalf("len = %d, want 32", len(got))
	}
	// Index-uniform resampling always keeps the endpoints.
	if got[0].X != 0 || got[0].Y != 0 {
		t.Errorf("first point = %+v, want origin", got[0])
	}
	last := got[len(got)-1]
	if last.X != 1 || last.Y != 1 {
		t.Errorf("last point = %+v, want (1,1)", last)
	}
}

func TestNormalizeResample_DegenerateExtent(t *testing.T) {
	// A perfectly horizontal stroke has zero height.
	strokes := []Stroke{lineStroke(5, 10, 40, 90, 40)}

	got := NormalizeResample(strokes, 32)

	for _, p := range got {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			t.Fatalf("degenerate box produced %+v", p)
		}
		if p.Y != 0 {
			t.Errorf("flat stroke y = %v, want 0", p.Y)
		}
	}

	// A single dot degenerates in both axes.
	got = NormalizeResample([]Stroke{{Point{X: 5, Y: 5, T: 0}}}, 32)
	if len(got) != 1 || got[0].X != 0 || got[0].Y != 0 {
		t.Errorf("dot normalized to %+v", got)
	}
}

func TestNormalizeResample_Empty(t *testing.T) {
	if got := NormalizeResample(nil, 32); got != nil {
		t.Errorf("nil strokes = %v, want nil", got)
	}
	if got := NormalizeResample([]Stroke{{}}, 32); got != nil {
		t.Errorf("empty stroke = %v, want nil", got)
	}
}

func TestSimilarity_Identical(t *testing.T) {
	a := NormalizeResample([]Stroke{lineStroke(40, 0, 0, 100, 60)}, 32)
	if got := Similarity(a, a); got != 1 {
		t.Errorf("Similarity(a, a) = %v, want 1", got)
	}
}

func TestSimilarity_Range(t *testing.T) {
	a := NormalizeResample([]Stroke{lineStroke(40, 0, 0, 100, 60)}, 32)
	b := NormalizeResample([]Stroke{lineStroke(40, 0, 60, 100, 0)}, 32)

	got := Similarity(a, b)
	if got < 0 || got > 1 {
		t.Errorf("Similarity = %v, outside [0,1]", got)
	}
}

func TestSimilarity_OppositeCornersFloorsAtZero(t *testing.T) {
	a := []Point{{X: 0, Y: 0}, {X: 0, Y: 0}}
	b := []Point{{X: 1, Y: 1}, {X: 1, Y: 1}}

	if got := Similarity(a, b); got != 0 {
		t.Errorf("Similarity = %v, want 0 (clamped)", got)
	}
}

func TestSimilarity_Empty(t *testing.T) {
	a := []Point{{X: 0.5, Y: 0.5}}
	if got := Similarity(nil, a); got != 0 {
		t.Errorf("Similarity(nil, a) = %v, want 0", got)
	}
	if got := Similarity(a, nil); got != 0 {
		t.Errorf("Similarity(a, nil) = %v, want 0", got)
	}
}

func TestSimilarity_UnequalLengths(t *testing.T) {
	a := []Point{{X: 0.1, Y: 0.1}, {X: 0.2, Y: 0.2}, {X: 0.3, Y: 0.3}}
	b := []Point{{X: 0.1, Y: 0.1}, {X: 0.2, Y: 0.2}}

	// Comparison runs over the shorter length; the common prefix matches.
	if got := Similarity(a, b); got != 1 {
		t.Errorf("Similarity over common prefix = %v, want 1", got)
	}
}

func TestPad_StrokeLifecycle(t *testing.T) {
	var p Pad

	if !p.Empty() {
		t.Fatal("new pad should be empty")
	}

	p.Begin(Point{X: 1, Y: 1, T: 0})
	p.Extend(Point{X: 2, Y: 2, T: 1})
	p.End()

	p.Begin(Point{X: 5, Y: 5, T: 2})
	p.Extend(Point{X: 6, Y: 6, T: 3})

	strokes := p.Strokes()
	if len(strokes) != 2 {
		t.Fatalf("strokes = %d, want 2 (in-progress stroke included)", len(strokes))
	}
	p.End()

	if p.Empty() {
		t.Error("pad with ink should not be empty")
	}

	p.Clear()
	if !p.Empty() || len(p.Strokes()) != 0 {
		t.Error("clear should discard all strokes")
	}
}

func TestPad_ExtendWithoutBegin(t *testing.T) {
	var p Pad
	p.Extend(Point{X: 1, Y: 1, T: 0})
	if !p.Empty() {
		t.Error("Extend without Begin should be a no-op")
	}
}
