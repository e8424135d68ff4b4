package fastdraw

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/image/math/fixed"
)

// Coord is the set of numeric types usable as point coordinates.
// Named types such as fixed.Int26_6 are included.
type Coord interface {
	constraints.Integer | constraints.Float
}

// Point represents a 2D point or vector with coordinates of type C.
type Point[C Coord] struct {
	X, Y C
}

// Pt is a convenience function to create a Point.
func Pt[C Coord](x, y C) Point[C] {
	return Point[C]{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point[C]) Add(q Point[C]) Point[C] {
	return Point[C]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point[C]) Sub(q Point[C]) Point[C] {
	return Point[C]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Eq reports whether p and q have identical coordinates.
func (p Point[C]) Eq(q Point[C]) bool {
	return p == q
}

// String formats the point as (x,y).
func (p Point[C]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// PointFromImage converts an image.Point to an integer Point.
func PointFromImage(p image.Point) Point[int] {
	return Point[int]{X: p.X, Y: p.Y}
}

// ImagePoint converts an integer Point to an image.Point.
func ImagePoint(p Point[int]) image.Point {
	return image.Point{X: p.X, Y: p.Y}
}

// PointFromFixed converts a 26.6 fixed-point point, as produced by
// font rasterizers, to a Point.
func PointFromFixed(p fixed.Point26_6) Point[fixed.Int26_6] {
	return Point[fixed.Int26_6]{X: p.X, Y: p.Y}
}

// FixedPoint converts a 26.6 fixed-point Point back to fixed.Point26_6.
func FixedPoint(p Point[fixed.Int26_6]) fixed.Point26_6 {
	return fixed.Point26_6{X: p.X, Y: p.Y}
}

// toFloat returns the coordinates of p as float64.
func toFloat[C Coord](p Point[C]) (x, y float64) {
	return float64(p.X), float64(p.Y)
}

// fromFloat converts float64 coordinates to C, rounding to nearest
// when C is an integer type.
func fromFloat[C Coord](x, y float64) Point[C] {
	if isInteger[C]() {
		x, y = math.Round(x), math.Round(y)
	}
	return Point[C]{X: C(x), Y: C(y)}
}

func isInteger[C Coord]() bool {
	half := 0.5
	return C(half) == 0
}
