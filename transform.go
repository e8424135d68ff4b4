package fastdraw

import (
	"log/slog"
	"math"
)

// PointFunc maps a point in float64 space to another point.
// Matrices, projections and other coordinate-system math are supplied
// by the caller through this type.
type PointFunc func(x, y float64) (float64, float64)

// TransformPoint applies f to p.
//
// The coordinates are widened to float64, passed to f, and converted
// back to C. For integer C the result is rounded to nearest. A result
// outside the range of C (for example a negative value for an unsigned
// C) follows Go's implementation-defined float-to-integer conversion, as
// does a non-finite result; the latter is also reported at debug level
// through [Logger].
func TransformPoint[C Coord](p Point[C], f PointFunc) Point[C] {
	tx, ty := f(toFloat(p))
	if !isFinite(tx) || !isFinite(ty) {
		Logger().Debug("fastdraw: non-finite transformed point",
			slog.Float64("x", tx), slog.Float64("y", ty))
	}
	return fromFloat[C](tx, ty)
}

// Transform returns a copy of l with both endpoints mapped by f.
// The color is carried over unchanged. See [TransformPoint] for the
// conversion rules.
func Transform[C Coord, Col any](l Line[C, Col], f PointFunc) Line[C, Col] {
	l.P1 = TransformPoint(l.P1, f)
	l.P2 = TransformPoint(l.P2, f)
	return l
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
