package geometry

// Rings is an ordered collection of rings representing one glyph outline,
// including holes. The winding numbers of the individual rings decide what
// counts as inside.
type Rings struct {
	Rings []Ring
}

// Len returns the number of rings.
func (rs *Rings) Len() int {
	return len(rs.Rings)
}

// IsEmpty reports whether the collection contains no rings.
func (rs *Rings) IsEmpty() bool {
	return len(rs.Rings) == 0
}

// AddRing appends ring to the collection.
func (rs *Rings) AddRing(ring Ring) {
	rs.Rings = append(rs.Rings, ring)
}

// BBox returns the bounding box enclosing every ring.
func (rs *Rings) BBox() BBox {
	bbox := NewBBox()
	for i := range rs.Rings {
		bbox.IncludeBBox(rs.Rings[i].BBox())
	}
	return bbox
}

// Translate shifts every ring by offset.
func (rs *Rings) Translate(offset Point) {
	for i := range rs.Rings {
		rs.Rings[i].Translate(offset)
	}
}

// Scale multiplies every ring by s.
func (rs *Rings) Scale(s float64) {
	for i := range rs.Rings {
		rs.Rings[i].Scale(s)
	}
}

// Segments returns the segments of all rings, in ring order.
func (rs *Rings) Segments() []Segment {
	var segments []Segment
	for i := range rs.Rings {
		segments = append(segments, rs.Rings[i].Segments()...)
	}
	return segments
}

// ContainsPoint reports whether pt lies inside the outline: the sum of the
// per-ring winding numbers is non-zero.
func (rs *Rings) ContainsPoint(pt Point) bool {
	winding := 0
	for i := range rs.Rings {
		winding += rs.Rings[i].WindingNumber(pt)
	}
	return winding != 0
}
