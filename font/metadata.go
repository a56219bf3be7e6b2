package font

import (
	"errors"
	"regexp"
	"strings"

	ot "github.com/go-text/typesetting/font/opentype"
)

// ErrNoCmap marks a font without a usable Unicode character map.
var ErrNoCmap = errors.New("font has no unicode cmap table")

// Metadata is the normalized identity of one font file, derived once at
// load time.
type Metadata struct {
	// Name is the raw family name from the name table, before width,
	// weight and script tokens are stripped.
	Name string

	// Family is the cleaned family name, e.g. "Noto Sans" for
	// "Noto Sans Arabic".
	Family string

	// Style is "normal" or "italic".
	Style string

	// Weight is the CSS weight, 100..900.
	Weight uint16

	// Width is the CSS width keyword, "normal" if unspecified.
	Width string

	// Codepoints are all mapped Unicode codepoints, sorted and unique.
	Codepoints []uint32
}

var (
	nameTag = ot.MustNewTag("name")
	cmapTag = ot.MustNewTag("cmap")
)

// newMetadata derives metadata from the raw font tables.
func newMetadata(ld *ot.Loader) (*Metadata, error) {
	var names map[uint16]string
	if data, err := ld.RawTable(nameTag); err == nil {
		names = parseNameTable(data)
	} else {
		names = map[uint16]string{}
	}

	family := names[nameIDFamily]
	if family == "" {
		family = names[nameIDFullName]
	}
	if family == "" {
		family = "UnknownFamily"
	}
	psName := names[nameIDPostscriptName]

	cleanFamily, style, weight, width := ParseFontName(family, psName)

	cmapData, err := ld.RawTable(cmapTag)
	if err != nil {
		return nil, ErrNoCmap
	}
	codepoints, ok := parseCmapCodepoints(cmapData)
	if !ok {
		return nil, ErrNoCmap
	}

	return &Metadata{
		Name:       family,
		Family:     cleanFamily,
		Style:      style,
		Weight:     weight,
		Width:      width,
		Codepoints: codepoints,
	}, nil
}

// weightName returns the canonical spelling for a weight class.
func weightName(weight uint16) string {
	switch {
	case weight <= 100:
		return "Thin"
	case weight <= 200:
		return "ExtraLight"
	case weight <= 300:
		return "Light"
	case weight <= 400:
		return "Regular"
	case weight <= 500:
		return "Medium"
	case weight <= 600:
		return "SemiBold"
	case weight <= 700:
		return "Bold"
	case weight <= 800:
		return "ExtraBold"
	default:
		return "Black"
	}
}

// GenerateName builds the canonical human-readable face name: family, width
// (unless normal), weight class, style (unless normal).
func (m *Metadata) GenerateName() string {
	parts := []string{m.Family}
	if m.Width != "normal" {
		parts = append(parts, m.Width)
	}
	parts = append(parts, weightName(m.Weight))
	if m.Style != "normal" {
		parts = append(parts, m.Style)
	}
	return strings.Join(parts, " ")
}

var idSeparators = regexp.MustCompile(`[-_\s]+`)

// GenerateID returns the canonical id of the face, used as directory and
// index key.
func (m *Metadata) GenerateID() string {
	return canonicalID(m.GenerateName())
}

// canonicalID lowercases a name and collapses runs of spaces, dashes and
// underscores into single underscores.
func canonicalID(name string) string {
	return idSeparators.ReplaceAllString(strings.ToLower(name), "_")
}
