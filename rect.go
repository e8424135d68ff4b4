package fastdraw

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect[C Coord] struct {
	Min, Max Point[C]
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect[C Coord](p1, p2 Point[C]) Rect[C] {
	return Rect[C]{
		Min: Point[C]{X: min(p1.X, p2.X), Y: min(p1.Y, p2.Y)},
		Max: Point[C]{X: max(p1.X, p2.X), Y: max(p1.Y, p2.Y)},
	}
}

// Width returns the width of the rectangle.
func (r Rect[C]) Width() C {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect[C]) Height() C {
	return r.Max.Y - r.Min.Y
}

// IsEmpty returns true if the rectangle has no area.
// The bounds of a horizontal, vertical or degenerate line are empty.
func (r Rect[C]) IsEmpty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect[C]) Union(other Rect[C]) Rect[C] {
	return Rect[C]{
		Min: Point[C]{X: min(r.Min.X, other.Min.X), Y: min(r.Min.Y, other.Min.Y)},
		Max: Point[C]{X: max(r.Max.X, other.Max.X), Y: max(r.Max.Y, other.Max.Y)},
	}
}

// Contains returns true if the point is inside the rectangle.
// Points on the edges are inside.
func (r Rect[C]) Contains(p Point[C]) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
