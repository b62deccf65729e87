package ink

import "math"

// DefaultResamplePoints is the fixed output length for normalized
// point sequences.
const DefaultResamplePoints = 32

// NormalizeResample flattens strokes into one sequence, remaps every
// point into the unit box using the strokes' bounding box, and caps
// the sequence at n points by index-uniform selection (not arc-length
// uniform). A sequence of at most n points passes through unchanged
// after normalization. Returns nil for empty input.
func NormalizeResample(strokes []Stroke, n int) []Point {
	var all []Point
	for _, s := range strokes {
		all = append(all, s...)
	}
	if len(all) == 0 {
		return nil
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range all {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	// Degenerate extents divide by 1 so a dot or straight line still
	// lands inside the unit box.
	width := maxX - minX
	if width == 0 {
		width = 1
	}
	height := maxY - minY
	if height == 0 {
		height = 1
	}

	normalized := make([]Point, len(all))
	for i, p := range all {
		normalized[i] = Point{
			X: (p.X - minX) / width,
			Y: (p.Y - minY) / height,
			T: p.T,
		}
	}

	if len(normalized) <= n {
		return normalized
	}

	resampled := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		idx := int(math.Floor(float64(i) / float64(n-1) * float64(len(normalized)-1)))
		resampled = append(resampled, normalized[idx])
	}
	return resampled
}

// Similarity scores two normalized point sequences in [0,1]: 1 for an
// exact match, 0 when either is empty. The comparison runs over the
// shorter common length and maps average pointwise distance through a
// linear heuristic, not a calibrated probability.
func Similarity(a, b []Point) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var total float64
	for i := 0; i < n; i++ {
		dx := a[i].X - b[i].X
		dy := a[i].Y - b[i].Y
		total += math.Sqrt(dx*dx + dy*dy)
	}

	avg := total / float64(n)
	return math.Max(0, 1-2*avg)
}
