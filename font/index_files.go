package font

import (
	"encoding/json"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// fontFace describes one face of a family in font_families.json.
type fontFace struct {
	ID         string `json:"id"`
	Style      string `json:"style"`
	Weight     uint16 `json:"weight"`
	Width      string `json:"width"`
	Codeblocks string `json:"codeblocks"`
}

// fontFamily groups the faces sharing one family name.
type fontFamily struct {
	Name  string     `json:"name"`
	Faces []fontFace `json:"faces"`
}

// buildIndexJSON renders the sorted list of font ids as pretty-printed
// JSON.
func buildIndexJSON(ids []string) ([]byte, error) {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	data, err := json.MarshalIndent(sorted, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding index: %w", err)
	}
	return data, nil
}

// buildFontFamiliesJSON groups the given fonts by family name and renders
// them as pretty-printed JSON, families ordered by collated name.
func buildFontFamiliesJSON(fonts map[string]*Wrapper) ([]byte, error) {
	ids := make([]string, 0, len(fonts))
	for id := range fonts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	familyIndex := make(map[string]int)
	families := []fontFamily{}
	for _, id := range ids {
		meta := fonts[id].Metadata()
		i, ok := familyIndex[meta.Family]
		if !ok {
			i = len(families)
			familyIndex[meta.Family] = i
			families = append(families, fontFamily{Name: meta.Family})
		}
		families[i].Faces = append(families[i].Faces, fontFace{
			ID:         id,
			Style:      meta.Style,
			Weight:     meta.Weight,
			Width:      meta.Width,
			Codeblocks: encodeCodeblocks(meta.Codepoints),
		})
	}

	collator := collate.New(language.Und)
	sort.SliceStable(families, func(i, j int) bool {
		return collator.CompareString(families[i].Name, families[j].Name) < 0
	})

	data, err := json.MarshalIndent(families, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding font families: %w", err)
	}
	return data, nil
}

// encodeCodeblocks maps every codepoint to its 16-codepoint block
// (cp >> 4) and run-length-encodes the deduplicated block indices into
// comma-separated uppercase hex ranges, e.g. "0-1,A". Single blocks are
// printed without a dash.
func encodeCodeblocks(codepoints []uint32) string {
	if len(codepoints) == 0 {
		return ""
	}

	seen := make(map[uint32]struct{})
	for _, cp := range codepoints {
		seen[cp>>4] = struct{}{}
	}
	blocks := make([]uint32, 0, len(seen))
	for b := range seen {
		blocks = append(blocks, b)
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i] < blocks[j] })

	var out []byte
	start, prev := blocks[0], blocks[0]
	flush := func() {
		if len(out) > 0 {
			out = append(out, ',')
		}
		if start == prev {
			out = fmt.Appendf(out, "%X", start)
		} else {
			out = fmt.Appendf(out, "%X-%X", start, prev)
		}
	}
	for _, block := range blocks[1:] {
		if block != prev+1 {
			flush()
			start = block
		}
		prev = block
	}
	flush()

	return string(out)
}
