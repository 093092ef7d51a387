package viewer

import "math"

// Index maps a continuous carousel offset to the discrete slide index: the
// nearest slide boundary, clamped into [0, last]. A zero or negative width
// means the layout hasn't been measured yet and maps to index 0.
func Index(offset float64, width, last int) int {
	if width <= 0 || last <= 0 {
		return 0
	}
	i := int(math.Round(offset / float64(width)))
	return clamp(i, 0, last)
}

// Span maps a continuous carousel offset to the pair of adjacent slide
// indices it straddles and the progress fraction between them. Both indices
// are clamped into [0, last]; at an exact slide boundary the factor is 0 and
// both indices are equal.
func Span(offset float64, width, last int) (int, int, float64) {
	if width <= 0 || last <= 0 {
		return 0, 0, 0
	}
	pos := offset / float64(width)
	if pos < 0 {
		pos = 0
	} else if pos > float64(last) {
		pos = float64(last)
	}
	i := int(math.Floor(pos))
	j := min(i+1, last)
	return i, j, pos - math.Floor(pos)
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
