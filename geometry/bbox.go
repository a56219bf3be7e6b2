package geometry

import "math"

// BBox is an axis-aligned bounding box. A freshly created BBox is empty;
// including points grows it.
type BBox struct {
	Min, Max Point
}

// NewBBox returns an empty bounding box.
func NewBBox() BBox {
	return BBox{
		Min: Point{math.Inf(1), math.Inf(1)},
		Max: Point{math.Inf(-1), math.Inf(-1)},
	}
}

// IsEmpty reports whether the box covers no area.
func (b BBox) IsEmpty() bool {
	return b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y
}

// IncludePoint grows the box to contain p.
func (b *BBox) IncludePoint(p Point) {
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
}

// IncludeBBox grows the box to contain other. Boxes that never included a
// point are ignored.
func (b *BBox) IncludeBBox(other BBox) {
	if other.Min.X > other.Max.X || other.Min.Y > other.Max.Y {
		return
	}
	b.IncludePoint(other.Min)
	b.IncludePoint(other.Max)
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 {
	return b.Max.Y - b.Min.Y
}
