package font

import (
	"strings"
	"testing"

	"github.com/versatiles-org/versatiles-glyphs-go/render"
	"github.com/versatiles-org/versatiles-glyphs-go/writer"
)

func TestManagerMergesSameID(t *testing.T) {
	m := NewManager(false)
	m.SetQuiet(true)

	a := &Wrapper{}
	a.AddFile(fakeEntry("Noto Sans"))
	m.mergeWrapper("noto_sans_regular", a)

	b := &Wrapper{}
	b.AddFile(fakeEntry("Noto Sans Arabic"))
	m.mergeWrapper("noto_sans_regular", b)

	if len(m.fonts) != 1 {
		t.Fatalf("groups = %d, want 1", len(m.fonts))
	}
	if got := len(m.fonts["noto_sans_regular"].files); got != 2 {
		t.Errorf("files in merged group = %d, want 2", got)
	}
	// The first file of a group stays authoritative.
	if got := m.fonts["noto_sans_regular"].Metadata().Name; got != "Noto Sans" {
		t.Errorf("group metadata = %q, want %q", got, "Noto Sans")
	}
}

func TestManagerWriteIndexJSON(t *testing.T) {
	m := NewManager(false)
	m.SetQuiet(true)

	w := &Wrapper{}
	w.AddFile(fakeEntry("Noto Sans"))
	m.mergeWrapper("noto_sans_regular", w)

	w2 := &Wrapper{}
	w2.AddFile(fakeEntry("Fira Sans"))
	m.mergeWrapper("fira_sans_regular", w2)

	var out writer.DummyWriter
	if err := m.WriteIndexJSON(&out); err != nil {
		t.Fatalf("WriteIndexJSON: %v", err)
	}

	want := `index.json: ["fira_sans_regular","noto_sans_regular"]`
	entries := out.Entries()
	if len(entries) != 1 || entries[0] != want {
		t.Errorf("entries = %v, want [%q]", entries, want)
	}
}

func TestManagerRenderGlyphsWritesDirectoriesFirst(t *testing.T) {
	m := NewManager(true)
	m.SetQuiet(true)

	// Entries without codepoints produce no blocks, so only the serial
	// directory pre-pass writes anything.
	w := &Wrapper{}
	w.AddFile(fakeEntry("Noto Sans"))
	m.mergeWrapper("noto_sans_regular", w)

	w2 := &Wrapper{}
	w2.AddFile(fakeEntry("Fira Sans"))
	m.mergeWrapper("fira_sans_regular", w2)

	var out writer.DummyWriter
	if err := m.RenderGlyphs(&out, render.DummyRenderer{}); err != nil {
		t.Fatalf("RenderGlyphs: %v", err)
	}

	got := strings.Join(out.Entries(), ";")
	if got != "fira_sans_regular/;noto_sans_regular/" {
		t.Errorf("entries = %q", got)
	}
}

func TestManagerWriteFamiliesJSON(t *testing.T) {
	m := NewManager(false)
	m.SetQuiet(true)

	w := &Wrapper{}
	w.AddFile(fakeEntry("Fira Sans", 0x41))
	m.mergeWrapper("fira_sans_regular", w)

	var out writer.DummyWriter
	if err := m.WriteFamiliesJSON(&out); err != nil {
		t.Fatalf("WriteFamiliesJSON: %v", err)
	}
	want := `font_families.json: [{"name": "Fira Sans","faces": [{"id": "fira_sans_regular","style": "normal","weight": 400,"width": "normal","codeblocks": "4"}]}]`
	entries := out.Entries()
	if len(entries) != 1 || entries[0] != want {
		t.Errorf("entries = %v\nwant [%q]", entries, want)
	}
}

func TestAddFontWithNameDerivesCanonicalID(t *testing.T) {
	// AddFontWithName keys its group by canonicalID(name) rather than by file
	// metadata; this checks that derivation without loading font files.
	if got := canonicalID("Noto Sans  Regular"); got != "noto_sans_regular" {
		t.Errorf("canonicalID = %q, want %q", got, "noto_sans_regular")
	}
}
