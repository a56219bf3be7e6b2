// Package render turns glyph outlines into signed distance fields.
//
// The pipeline per glyph: the outline callbacks of a font face are collected
// into closed rings (RingBuilder), the rings are scaled to the output em
// size, and a renderer samples the distance from every pixel of the bordered
// bounding box to the nearest outline segment, negated inside the outline.
// The algorithm follows mapbox/sdf-glyph-foundry.
package render

import (
	"math"

	"github.com/versatiles-org/versatiles-glyphs-go/geometry"
	"github.com/versatiles-org/versatiles-glyphs-go/pbf"
)

const (
	// Buffer is the border in pixels added on all four sides of a glyph.
	Buffer = 3

	// cutoff shifts the distance ramp so that the outline itself maps to
	// roughly 255 - 64 = 191.
	cutoff = 0.25 * 256

	// maxRadius bounds the distance search around each sample point, in
	// pixels.
	maxRadius = 8.0
)

// Renderer renders a glyph outline into a bitmap. Implementations must be
// safe for concurrent use; rendering is pure.
type Renderer interface {
	// Render returns the rendered result, or nil if the outline has an
	// empty bounding box (spaces, control characters).
	Render(rings geometry.Rings) *Result
}

// Result holds the output of rendering one glyph: the bordered bitmap and
// the integer bounds it was computed for. X0/Y0/X1/Y1 include the buffer.
type Result struct {
	X0, Y0, X1, Y1 int
	Width, Height  uint32
	Bitmap         []byte
}

// prepare computes the buffered integer bounds of the outline and
// translates the rings so that the bounds start at the origin. It returns
// false if the outline has no area.
func prepare(rings *geometry.Rings) (Result, bool) {
	bbox := rings.BBox()
	if bbox.IsEmpty() {
		return Result{}, false
	}

	x0 := int(math.Floor(bbox.Min.X)) - Buffer
	y0 := int(math.Floor(bbox.Min.Y)) - Buffer
	x1 := int(math.Ceil(bbox.Max.X)) + Buffer
	y1 := int(math.Ceil(bbox.Max.Y)) + Buffer

	rings.Translate(geometry.Point{X: -float64(x0), Y: -float64(y0)})

	return Result{
		X0:     x0,
		Y0:     y0,
		X1:     x1,
		Y1:     y1,
		Width:  uint32(x1 - x0),
		Height: uint32(y1 - y0),
	}, true
}

// ToGlyph converts the result into a wire glyph. The reported width and
// height exclude the buffer; Left and Top locate the unbuffered glyph in
// the renderer's frame.
func (r *Result) ToGlyph(id, advance uint32) pbf.Glyph {
	return pbf.Glyph{
		ID:      id,
		Bitmap:  r.Bitmap,
		Width:   r.Width - 2*Buffer,
		Height:  r.Height - 2*Buffer,
		Left:    int32(r.X0 + Buffer),
		Top:     int32(r.Y1 - Buffer),
		Advance: advance,
	}
}
