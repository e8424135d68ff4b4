package fastdraw

import (
	"math"
	"testing"
)

func shift(dx, dy float64) PointFunc {
	return func(x, y float64) (float64, float64) { return x + dx, y + dy }
}

func scale(s float64) PointFunc {
	return func(x, y float64) (float64, float64) { return x * s, y * s }
}

func rotate(angle float64) PointFunc {
	sin, cos := math.Sincos(angle)
	return func(x, y float64) (float64, float64) {
		return x*cos - y*sin, x*sin + y*cos
	}
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		f    PointFunc
		p    Point[float64]
		want Point[float64]
	}{
		{"shift", shift(10, -5), Pt(1.0, 1.0), Pt(11.0, -4.0)},
		{"scale", scale(2), Pt(1.5, -3.0), Pt(3.0, -6.0)},
		{"rotate 90", rotate(math.Pi / 2), Pt(1.0, 0.0), Pt(0.0, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TransformPoint(tt.p, tt.f)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestTransformPoint_IntegerRounds(t *testing.T) {
	if got := TransformPoint(Pt(10, 0), rotate(math.Pi/2)); got != Pt(0, 10) {
		t.Errorf("TransformPoint(int, rotate) = %v, want (0,10)", got)
	}
	if got := TransformPoint(Pt(3, 5), scale(0.5)); got != Pt(2, 3) {
		t.Errorf("TransformPoint(int, scale 0.5) = %v, want (2,3)", got)
	}
}

func TestTransformPoint_UnsignedInRange(t *testing.T) {
	got := TransformPoint(Pt[uint8](10, 20), shift(5, -20))
	if got != Pt[uint8](15, 0) {
		t.Errorf("TransformPoint(uint8) = %v, want (15,0)", got)
	}
}

func TestTransform_Line(t *testing.T) {
	l := NewLine(Pt(0.0, 0.0), Pt(10.0, 5.0), uint32(0xFF0000FF))
	got := Transform(l, shift(1, 2))
	want := NewLine(Pt(1.0, 2.0), Pt(11.0, 7.0), uint32(0xFF0000FF))
	if got != want {
		t.Errorf("Transform = %v, want %v", got, want)
	}
	if l.P1 != Pt(0.0, 0.0) {
		t.Errorf("Transform modified its input: %v", l)
	}

	d := NewLine(Pt(2.0, 2.0), Pt(2.0, 2.0), "x")
	if got := Transform(d, scale(3)); got.P1 != got.P2 {
		t.Errorf("Transform(degenerate) = %v, want degenerate", got)
	}
}
