// Package geometry provides the planar primitives used to represent glyph
// outlines: points, line segments, bounding boxes, closed rings and
// collections of rings.
//
// Coordinates are font design units while an outline is being parsed and
// pixel units once it has been scaled for rendering.
package geometry

// Point is a 2D point. It is a plain value type; transforming methods on
// containers (Ring, Rings) mutate their points in place.
type Point struct {
	X, Y float64
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// SquaredDistanceTo returns the squared euclidean distance between p and q.
// It avoids the square root, making it cheap for distance comparisons.
func (p Point) SquaredDistanceTo(q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return dx*dx + dy*dy
}

// Translated returns p shifted by offset.
func (p Point) Translated(offset Point) Point {
	return Point{p.X + offset.X, p.Y + offset.Y}
}

// Scaled returns p with both coordinates multiplied by s.
func (p Point) Scaled(s float64) Point {
	return Point{p.X * s, p.Y * s}
}
