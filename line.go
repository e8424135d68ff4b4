package fastdraw

import "fmt"

// Line is a straight segment from P1 to P2 painted with Color.
//
// Line is plain data: it holds no invariants, so every field may be read
// and assigned directly. A Line with P1 == P2 is a valid, zero-length
// segment. Geometry such as bounds or length lives in free functions
// that operate on any Segment.
//
// Line values are copied by assignment and compare with == whenever Col
// is comparable.
type Line[C Coord, Col any] struct {
	P1, P2 Point[C]
	Color  Col
}

// NewLine creates a line segment from p1 to p2 with the given color.
func NewLine[C Coord, Col any](p1, p2 Point[C], color Col) Line[C, Col] {
	return Line[C, Col]{P1: p1, P2: p2, Color: color}
}

// Endpoints returns the two endpoints of the line.
func (l Line[C, Col]) Endpoints() (Point[C], Point[C]) {
	return l.P1, l.P2
}

// Paint returns the line's color.
func (l Line[C, Col]) Paint() Col {
	return l.Color
}

// String formats the line as Line(p1-p2, color).
func (l Line[C, Col]) String() string {
	return fmt.Sprintf("Line(%v-%v, %v)", l.P1, l.P2, l.Color)
}
