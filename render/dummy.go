package render

import "github.com/versatiles-org/versatiles-glyphs-go/geometry"

// DummyRenderer produces a zero-filled bitmap with the same dimensions the
// precise renderer would use. Its output is byte-deterministic, which makes
// it suitable for end-to-end tests that compare file sizes or wire bytes.
type DummyRenderer struct{}

// Render implements Renderer.
func (DummyRenderer) Render(rings geometry.Rings) *Result {
	result, ok := prepare(&rings)
	if !ok {
		return nil
	}
	result.Bitmap = make([]byte, result.Width*result.Height)
	return &result
}

// NewRenderer returns the dummy renderer when dummy is set, the precise
// renderer otherwise.
func NewRenderer(dummy bool) Renderer {
	if dummy {
		return DummyRenderer{}
	}
	return PreciseRenderer{}
}
