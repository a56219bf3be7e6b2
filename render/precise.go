package render

import (
	"math"

	"github.com/versatiles-org/versatiles-glyphs-go/geometry"
)

// PreciseRenderer computes a real signed distance field: for every pixel of
// the buffered bounding box it samples the distance to the nearest outline
// segment, negated when the sample lies inside the outline.
type PreciseRenderer struct{}

// Render implements Renderer.
func (PreciseRenderer) Render(rings geometry.Rings) *Result {
	result, ok := prepare(&rings)
	if !ok {
		return nil
	}
	width := int(result.Width)
	height := int(result.Height)

	index := newSegmentIndex(rings.Segments())

	bitmap := make([]byte, width*height)
	radiusBy256 := 256.0 / maxRadius

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Row 0 of the bitmap is the top of the glyph.
			i := (height-1-y)*width + x

			sample := geometry.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}

			d := index.minDistance(sample, maxRadius)
			if rings.ContainsPoint(sample) {
				d = -d
			}

			d = d*radiusBy256 + cutoff
			n := math.Round(255 - d)
			if n < 0 {
				n = 0
			} else if n > 255 {
				n = 255
			}
			bitmap[i] = byte(n)
		}
	}

	result.Bitmap = bitmap
	return &result
}
