package render

import (
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/versatiles-org/versatiles-glyphs-go/geometry"
)

// curveToleranceSq is the squared flatness tolerance used when
// approximating Bézier curves with line segments.
const curveToleranceSq = 0.01

// RingBuilder accumulates glyph outline callbacks into a collection of
// closed rings. Rings with fewer than three distinct points are dropped;
// malformed outline data never fails, it is pruned.
type RingBuilder struct {
	rings geometry.Rings
	ring  geometry.Ring
}

// MoveTo finalizes the current ring and starts a new one at (x, y).
func (b *RingBuilder) MoveTo(x, y float64) {
	b.saveRing()
	b.ring.AddPoint(geometry.Point{X: x, Y: y})
}

// LineTo appends a straight line to (x, y).
func (b *RingBuilder) LineTo(x, y float64) {
	b.ring.AddPoint(geometry.Point{X: x, Y: y})
}

// QuadTo appends a flattened quadratic Bézier with control point (x1, y1)
// ending at (x, y). Without a current point the command is ignored.
func (b *RingBuilder) QuadTo(x1, y1, x, y float64) {
	start, ok := b.ring.Last()
	if !ok {
		return
	}
	b.ring.AddQuadraticBezier(start, geometry.Point{X: x1, Y: y1}, geometry.Point{X: x, Y: y}, curveToleranceSq)
}

// CubeTo appends a flattened cubic Bézier with control points (x1, y1) and
// (x2, y2) ending at (x, y). Without a current point the command is ignored.
func (b *RingBuilder) CubeTo(x1, y1, x2, y2, x, y float64) {
	start, ok := b.ring.Last()
	if !ok {
		return
	}
	b.ring.AddCubicBezier(start, geometry.Point{X: x1, Y: y1}, geometry.Point{X: x2, Y: y2}, geometry.Point{X: x, Y: y}, curveToleranceSq)
}

// Close finalizes the current ring.
func (b *RingBuilder) Close() {
	b.saveRing()
}

// Rings finalizes any active ring and returns everything built so far. The
// builder must not be reused afterwards.
func (b *RingBuilder) Rings() geometry.Rings {
	b.saveRing()
	return b.rings
}

// saveRing closes and validates the active ring, keeps it if it still has
// enough points, and starts a fresh one.
func (b *RingBuilder) saveRing() {
	if b.ring.Len() < 3 {
		b.ring = geometry.Ring{}
		return
	}
	b.ring.Close()
	if b.ring.Len() < 4 {
		b.ring = geometry.Ring{}
		return
	}
	b.rings.AddRing(b.ring)
	b.ring = geometry.Ring{}
}

// OutlineRings walks the outline of the given glyph and returns its rings
// in font design units. Glyphs without vector data yield an empty
// collection.
func OutlineRings(face *font.Face, gid font.GID) geometry.Rings {
	outline, ok := face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return geometry.Rings{}
	}

	var builder RingBuilder
	for _, seg := range outline.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			builder.MoveTo(float64(seg.Args[0].X), float64(seg.Args[0].Y))
		case ot.SegmentOpLineTo:
			builder.LineTo(float64(seg.Args[0].X), float64(seg.Args[0].Y))
		case ot.SegmentOpQuadTo:
			builder.QuadTo(
				float64(seg.Args[0].X), float64(seg.Args[0].Y),
				float64(seg.Args[1].X), float64(seg.Args[1].Y),
			)
		case ot.SegmentOpCubeTo:
			builder.CubeTo(
				float64(seg.Args[0].X), float64(seg.Args[0].Y),
				float64(seg.Args[1].X), float64(seg.Args[1].Y),
				float64(seg.Args[2].X), float64(seg.Args[2].Y),
			)
		}
	}
	return builder.Rings()
}
