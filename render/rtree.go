package render

import (
	"math"

	"github.com/tidwall/rtree"

	"github.com/versatiles-org/versatiles-glyphs-go/geometry"
)

// segmentIndex is a spatial index over the outline segments of a single
// glyph. It is built once per glyph and dropped after rendering.
type segmentIndex struct {
	tree rtree.RTreeG[geometry.Segment]
}

// newSegmentIndex fills the index with all segments, inserting them one at
// a time; no bulk loading is done.
func newSegmentIndex(segments []geometry.Segment) *segmentIndex {
	idx := &segmentIndex{}
	for _, seg := range segments {
		minX := math.Min(seg.Start.X, seg.End.X)
		maxX := math.Max(seg.Start.X, seg.End.X)
		minY := math.Min(seg.Start.Y, seg.End.Y)
		maxY := math.Max(seg.Start.Y, seg.End.Y)
		idx.tree.Insert([2]float64{minX, minY}, [2]float64{maxX, maxY}, seg)
	}
	return idx
}

// minDistance returns the distance from p to the nearest segment whose
// envelope intersects the box p ± maxRadius, or +Inf if no segment
// qualifies.
func (idx *segmentIndex) minDistance(p geometry.Point, maxRadius float64) float64 {
	bestSq := math.Inf(1)
	idx.tree.Search(
		[2]float64{p.X - maxRadius, p.Y - maxRadius},
		[2]float64{p.X + maxRadius, p.Y + maxRadius},
		func(_, _ [2]float64, seg geometry.Segment) bool {
			if d := seg.SquaredDistanceToPoint(p); d < bestSq {
				bestSq = d
			}
			return true
		},
	)
	return math.Sqrt(bestSq)
}
