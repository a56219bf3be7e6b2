package render

import (
	"reflect"
	"testing"

	"github.com/versatiles-org/versatiles-glyphs-go/geometry"
)

func makeSquareRings() geometry.Rings {
	var ring geometry.Ring
	ring.AddPoint(geometry.Point{X: 1, Y: 2})
	ring.AddPoint(geometry.Point{X: 5, Y: 2})
	ring.AddPoint(geometry.Point{X: 5, Y: 6})
	ring.AddPoint(geometry.Point{X: 1, Y: 6})
	ring.Close()

	var rings geometry.Rings
	rings.AddRing(ring)
	return rings
}

func TestPreciseRenderEmptyBBox(t *testing.T) {
	if got := (PreciseRenderer{}).Render(geometry.Rings{}); got != nil {
		t.Errorf("expected nil result for empty geometry, got %+v", got)
	}
}

func TestPreciseRenderSimpleSquare(t *testing.T) {
	result := PreciseRenderer{}.Render(makeSquareRings())
	if result == nil {
		t.Fatal("expected a result")
	}

	if result.Width != 10 || result.Height != 10 {
		t.Errorf("size = %dx%d, want 10x10", result.Width, result.Height)
	}
	if result.X0 != -2 || result.X1 != 8 || result.Y0 != -1 || result.Y1 != 9 {
		t.Errorf("bounds = (%d %d %d %d), want (-2 8 -1 9)", result.X0, result.X1, result.Y0, result.Y1)
	}
	if len(result.Bitmap) != 100 {
		t.Fatalf("bitmap length = %d, want 100", len(result.Bitmap))
	}

	want := []string{
		"30 38 42 43 43 43 43 42 38 30",
		"38 48 54 55 55 55 55 54 48 38",
		"42 54 65 68 68 68 68 65 54 42",
		"43 55 68 80 80 80 80 68 55 43",
		"43 55 68 80 93 93 80 68 55 43",
		"43 55 68 80 93 93 80 68 55 43",
		"43 55 68 80 80 80 80 68 55 43",
		"42 54 65 68 68 68 68 65 54 42",
		"38 48 54 55 55 55 55 54 48 38",
		"30 38 42 43 43 43 43 42 38 30",
	}
	got := bitmapAsDigitArt(result.Bitmap, int(result.Width))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("bitmap:\n%v\nwant:\n%v", got, want)
	}
}

// Inside a large convex outline the centre sample must reach at least 192,
// and a border sample must be darker than the centre.
func TestPreciseRenderDistanceExtremes(t *testing.T) {
	var ring geometry.Ring
	ring.AddPoint(geometry.Point{X: 0, Y: 0})
	ring.AddPoint(geometry.Point{X: 40, Y: 0})
	ring.AddPoint(geometry.Point{X: 40, Y: 40})
	ring.AddPoint(geometry.Point{X: 0, Y: 40})
	ring.Close()
	var rings geometry.Rings
	rings.AddRing(ring)

	result := PreciseRenderer{}.Render(rings)
	if result == nil {
		t.Fatal("expected a result")
	}
	width := int(result.Width)
	height := int(result.Height)

	// Centroid of the square: translated sample coordinates (23, 23),
	// bitmap row is flipped.
	cx, cy := 23, 23
	center := result.Bitmap[(height-1-cy)*width+cx]
	if center < 192 {
		t.Errorf("center sample = %d, want >= 192", center)
	}

	// Every border sample is within maxRadius of the outline, so the
	// ramp stays above 0 there; the ordering must still hold.
	corner := result.Bitmap[0]
	if corner >= center {
		t.Errorf("corner sample %d should be darker than center %d", corner, center)
	}
}

func TestDummyRenderMatchesDimensions(t *testing.T) {
	result := DummyRenderer{}.Render(makeSquareRings())
	if result == nil {
		t.Fatal("expected a result")
	}
	if result.Width != 10 || result.Height != 10 {
		t.Errorf("size = %dx%d, want 10x10", result.Width, result.Height)
	}
	if len(result.Bitmap) != 100 {
		t.Fatalf("bitmap length = %d, want 100", len(result.Bitmap))
	}
	for i, b := range result.Bitmap {
		if b != 0 {
			t.Fatalf("bitmap[%d] = %d, want 0", i, b)
		}
	}
}

func TestDummyRenderEmptyBBox(t *testing.T) {
	if got := (DummyRenderer{}).Render(geometry.Rings{}); got != nil {
		t.Errorf("expected nil result for empty geometry, got %+v", got)
	}
}

func TestNewRenderer(t *testing.T) {
	if _, ok := NewRenderer(true).(DummyRenderer); !ok {
		t.Error("NewRenderer(true) should return the dummy renderer")
	}
	if _, ok := NewRenderer(false).(PreciseRenderer); !ok {
		t.Error("NewRenderer(false) should return the precise renderer")
	}
}

func TestResultToGlyph(t *testing.T) {
	result := Result{
		X0: 0, X1: 14, Y0: -7, Y1: 10,
		Width: 20, Height: 24,
		Bitmap: make([]byte, 20*24),
	}
	glyph := result.ToGlyph(65, 14)
	if glyph.ID != 65 || glyph.Advance != 14 {
		t.Errorf("id/advance = %d/%d", glyph.ID, glyph.Advance)
	}
	if glyph.Width != 14 || glyph.Height != 18 {
		t.Errorf("width/height = %d/%d, want 14/18", glyph.Width, glyph.Height)
	}
	if glyph.Left != 3 || glyph.Top != 7 {
		t.Errorf("left/top = %d/%d, want 3/7", glyph.Left, glyph.Top)
	}
	if len(glyph.Bitmap) != 480 {
		t.Errorf("bitmap length = %d, want 480", len(glyph.Bitmap))
	}
}
