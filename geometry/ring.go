package geometry

import "math"

// epsilon below which two coordinates are treated as equal when closing.
const closeEpsilon = 2.220446049250313e-16

// Ring is an ordered sequence of points forming one contour of a glyph
// outline. A finalized ring is closed: its first and last points coincide.
type Ring struct {
	Points []Point
}

// Len returns the number of points in the ring.
func (r *Ring) Len() int {
	return len(r.Points)
}

// IsEmpty reports whether the ring has no points.
func (r *Ring) IsEmpty() bool {
	return len(r.Points) == 0
}

// Clear removes all points.
func (r *Ring) Clear() {
	r.Points = r.Points[:0]
}

// AddPoint appends p to the ring.
func (r *Ring) AddPoint(p Point) {
	r.Points = append(r.Points, p)
}

// Last returns the last point of the ring, and false if the ring is empty.
func (r *Ring) Last() (Point, bool) {
	if len(r.Points) == 0 {
		return Point{}, false
	}
	return r.Points[len(r.Points)-1], true
}

// Close appends the first point again unless the ring already ends on it.
// Closing an empty ring is a no-op.
func (r *Ring) Close() {
	if len(r.Points) == 0 {
		return
	}
	first := r.Points[0]
	last := r.Points[len(r.Points)-1]
	if math.Abs(first.X-last.X) > closeEpsilon || math.Abs(first.Y-last.Y) > closeEpsilon {
		r.Points = append(r.Points, first)
	}
}

// BBox returns the bounding box of all ring points.
func (r *Ring) BBox() BBox {
	bbox := NewBBox()
	for _, p := range r.Points {
		bbox.IncludePoint(p)
	}
	return bbox
}

// Translate shifts every point by offset.
func (r *Ring) Translate(offset Point) {
	for i := range r.Points {
		r.Points[i] = r.Points[i].Translated(offset)
	}
}

// Scale multiplies every point by s.
func (r *Ring) Scale(s float64) {
	for i := range r.Points {
		r.Points[i] = r.Points[i].Scaled(s)
	}
}

// Segments returns the segments between consecutive points.
func (r *Ring) Segments() []Segment {
	if len(r.Points) < 2 {
		return nil
	}
	segments := make([]Segment, 0, len(r.Points)-1)
	for i := 1; i < len(r.Points); i++ {
		segments = append(segments, Segment{r.Points[i-1], r.Points[i]})
	}
	return segments
}

// AddQuadraticBezier approximates the quadratic Bézier (start, ctrl, end)
// with line segments by adaptive midpoint subdivision and appends them to
// the ring. toleranceSq controls flatness: subdivision stops once the
// squared control-point deviation drops below it.
func (r *Ring) AddQuadraticBezier(start, ctrl, end Point, toleranceSq float64) {
	mid1 := start.Midpoint(ctrl)
	mid2 := ctrl.Midpoint(end)
	mid := mid1.Midpoint(mid2)

	dx := start.X + end.X - ctrl.X*2
	dy := start.Y + end.Y - ctrl.Y*2

	if dx*dx+dy*dy <= toleranceSq {
		r.AddPoint(end)
		return
	}
	r.AddQuadraticBezier(start, mid1, mid, toleranceSq)
	r.AddQuadraticBezier(mid, mid2, end, toleranceSq)
}

// AddCubicBezier approximates the cubic Bézier (start, c1, c2, end) with
// line segments by De Casteljau subdivision and appends them to the ring.
func (r *Ring) AddCubicBezier(start, c1, c2, end Point, toleranceSq float64) {
	p01 := start.Midpoint(c1)
	p12 := c1.Midpoint(c2)
	p23 := c2.Midpoint(end)
	p012 := p01.Midpoint(p12)
	p123 := p12.Midpoint(p23)
	mid := p012.Midpoint(p123)

	dx := (c2.X + c1.X) - (start.X + end.X)
	dy := (c2.Y + c1.Y) - (start.Y + end.Y)

	if dx*dx+dy*dy <= toleranceSq {
		r.AddPoint(end)
		return
	}
	r.AddCubicBezier(start, p01, p012, mid, toleranceSq)
	r.AddCubicBezier(mid, p123, p23, end, toleranceSq)
}

// WindingNumber returns the signed number of times the ring winds around pt.
func (r *Ring) WindingNumber(pt Point) int {
	if len(r.Points) < 2 {
		return 0
	}
	winding := 0
	p1 := r.Points[0]
	for _, p2 := range r.Points[1:] {
		if p1.Y <= pt.Y {
			if p2.Y > pt.Y && isLeft(p1, p2, pt) > 0 {
				winding++
			}
		} else if p2.Y <= pt.Y && isLeft(p1, p2, pt) < 0 {
			winding--
		}
		p1 = p2
	}
	return winding
}

// isLeft reports the side of the directed line p0->p1 on which p2 lies:
// +1 left, -1 right, 0 collinear.
func isLeft(p0, p1, p2 Point) int {
	val := (p1.X-p0.X)*(p2.Y-p0.Y) - (p2.X-p0.X)*(p1.Y-p0.Y)
	switch {
	case val > 0:
		return 1
	case val < 0:
		return -1
	default:
		return 0
	}
}
