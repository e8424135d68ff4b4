// Package fastdraw defines plain-data drawable primitives for 2D
// rendering pipelines.
//
// # Overview
//
// Primitives are generic over the coordinate type and the color type so
// that a scene can pick, for example, float64 coordinates with packed
// uint32 colors, or 26.6 fixed-point coordinates with color.RGBA:
//
//	l := fastdraw.NewLine(fastdraw.Pt(0.0, 0.0), fastdraw.Pt(10.0, 5.0), uint32(0xFF0000FF))
//	l.Color = 0x00FF00FF
//
// Primitives carry no behavior and validate nothing. A zero-length line
// is as valid as any other. Rasterizers and other consumers decide what
// to do with such values.
//
// # Primitive family
//
// Consumers work across shape kinds through small capability interfaces:
// [Segment] exposes endpoints and [Painted] exposes the paint attribute.
// Algorithms such as [Bounds], [Translate] and [Transform] are free
// functions over these capabilities rather than methods on each shape.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package fastdraw
