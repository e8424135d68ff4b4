package fastdraw

import "math"

// Segment is implemented by primitives that expose two endpoints.
type Segment[C Coord] interface {
	Endpoints() (Point[C], Point[C])
}

// Painted is implemented by primitives that carry a paint attribute.
type Painted[Col any] interface {
	Paint() Col
}

// Primitive is a drawable segment with a paint attribute.
// Line[C, Col] satisfies Primitive[C, Col].
type Primitive[C Coord, Col any] interface {
	Segment[C]
	Painted[Col]
}

var _ Primitive[float64, uint32] = Line[float64, uint32]{}

// Bounds returns the axis-aligned bounding box of a segment.
func Bounds[C Coord](s Segment[C]) Rect[C] {
	p1, p2 := s.Endpoints()
	return NewRect(p1, p2)
}

// BoundsAll returns the union of the bounds of all segments.
// ok is false when segs is empty.
func BoundsAll[C Coord, S Segment[C]](segs []S) (r Rect[C], ok bool) {
	for i, s := range segs {
		b := Bounds[C](s)
		if i == 0 {
			r = b
			continue
		}
		r = r.Union(b)
	}
	return r, len(segs) > 0
}

// Length returns the Euclidean length of the line segment.
func Length[C Coord, Col any](l Line[C, Col]) float64 {
	x1, y1 := toFloat(l.P1)
	x2, y2 := toFloat(l.P2)
	return math.Hypot(x2-x1, y2-y1)
}

// Translate returns a copy of l moved by d.
func Translate[C Coord, Col any](l Line[C, Col], d Point[C]) Line[C, Col] {
	l.P1 = l.P1.Add(d)
	l.P2 = l.P2.Add(d)
	return l
}

// Reversed returns a copy of the line with endpoints swapped.
func Reversed[C Coord, Col any](l Line[C, Col]) Line[C, Col] {
	l.P1, l.P2 = l.P2, l.P1
	return l
}

// MapPoints returns a copy of l with f applied to both endpoints.
func MapPoints[C Coord, Col any](l Line[C, Col], f func(Point[C]) Point[C]) Line[C, Col] {
	l.P1 = f(l.P1)
	l.P2 = f(l.P2)
	return l
}

// Convert changes the coordinate type of a line.
// The numeric value is preserved without unit scaling, so a 26.6
// fixed-point coordinate of 64 converts to 64.0, not 1.0.
//
// Between two integer types the coordinates are converted directly, so
// int64 values beyond 2^53 survive. Any other conversion goes through
// float64 and rounds to nearest when D is an integer type. Values outside
// the range of D follow Go's implementation-defined conversion rules.
func Convert[D, S Coord, Col any](l Line[S, Col]) Line[D, Col] {
	if isInteger[D]() && isInteger[S]() {
		return Line[D, Col]{
			P1:    Point[D]{X: D(l.P1.X), Y: D(l.P1.Y)},
			P2:    Point[D]{X: D(l.P2.X), Y: D(l.P2.Y)},
			Color: l.Color,
		}
	}
	return Line[D, Col]{
		P1:    fromFloat[D](toFloat(l.P1)),
		P2:    fromFloat[D](toFloat(l.P2)),
		Color: l.Color,
	}
}

// Recolor returns a line with the same endpoints and a new color,
// which may be of a different type.
func Recolor[C Coord, A, B any](l Line[C, A], color B) Line[C, B] {
	return Line[C, B]{P1: l.P1, P2: l.P2, Color: color}
}

// Equal reports whether two lines have equal endpoints and color.
func Equal[C Coord, Col comparable](a, b Line[C, Col]) bool {
	return a == b
}
