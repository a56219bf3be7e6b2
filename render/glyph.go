package render

import (
	"math"

	"github.com/go-text/typesetting/font"

	"github.com/versatiles-org/versatiles-glyphs-go/pbf"
)

// em is the nominal output design size in pixels.
const em = 24

// Glyph renders a single codepoint of the given face. It returns nil when
// the face has no glyph for the codepoint; codepoints whose outline covers
// no area (spaces) yield an empty glyph that carries only id and advance.
func Glyph(face *font.Face, codepoint uint32, renderer Renderer) *pbf.Glyph {
	gid, ok := face.NominalGlyph(rune(codepoint))
	if !ok {
		return nil
	}

	scale := em / float64(face.Font.Upem())

	rings := OutlineRings(face, gid)
	rings.Scale(scale)

	advance := uint32(math.Round(float64(face.HorizontalAdvance(gid)) * scale))

	result := renderer.Render(rings)
	if result == nil {
		glyph := pbf.EmptyGlyph(codepoint, advance)
		return &glyph
	}

	// Rebase the vertical origin from the baseline-up design frame into
	// the renderer's top-down frame.
	result.Y1 -= em

	glyph := result.ToGlyph(codepoint, advance)
	return &glyph
}
