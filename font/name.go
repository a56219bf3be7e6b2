package font

import "strings"

// scriptTokens are family-name tokens that identify language coverage
// rather than the family itself ("Noto Sans Arabic", "Noto Sans JP"). They
// are dropped during parsing.
var scriptTokens = map[string]bool{
	"arabic":     true,
	"armenian":   true,
	"balinese":   true,
	"bengali":    true,
	"devanagari": true,
	"ethiopic":   true,
	"georgian":   true,
	"gujarati":   true,
	"gurmukhi":   true,
	"hebrew":     true,
	"jp":         true,
	"javanese":   true,
	"kr":         true,
	"kannada":    true,
	"khmer":      true,
	"lao":        true,
	"myanmar":    true,
	"oriya":      true,
	"sc":         true,
	"sinhala":    true,
	"tamil":      true,
	"thai":       true,
}

// ParseFontName disambiguates family, style, weight and width from the
// human-readable family name and the PostScript name of a face.
//
// The style and a first weight guess come from the PostScript name suffix
// (the part after the last '-'). The family tokens are then scanned for
// width keywords, script coverage tokens and weight keywords; whatever
// remains is the cleaned family name.
func ParseFontName(family, psName string) (cleanFamily, style string, weight uint16, width string) {
	style = "normal"
	weight = 400
	width = "normal"

	suffix := psName
	if pos := strings.LastIndexByte(psName, '-'); pos >= 0 {
		suffix = psName[pos+1:]
	}
	suffix = strings.ToLower(suffix)

	if strings.Contains(suffix, "italic") {
		style = "italic"
	}

	psWeight := findWeight(suffix)
	if psWeight != 400 {
		weight = psWeight
	}

	tokens := strings.Fields(family)
	var kept []string
	for i := 0; i < len(tokens); i++ {
		t := strings.ToLower(tokens[i])

		// Two-token width.
		if t == "extra" && i+1 < len(tokens) && strings.ToLower(tokens[i+1]) == "condensed" {
			width = "extra-condensed"
			i++
			continue
		}

		// One-token widths.
		switch t {
		case "semicondensed", "semi-condensed":
			width = "semi-condensed"
			continue
		case "condensed":
			width = "condensed"
			continue
		case "caption":
			width = "caption"
			continue
		case "narrow":
			width = "narrow"
			continue
		}

		if scriptTokens[t] {
			continue
		}

		if w := findWeight(t); w != 400 {
			// A weight spelled out in the family only counts when the
			// PostScript suffix did not already pin one down.
			if psWeight == 400 {
				weight = w
			}
			continue
		}

		kept = append(kept, tokens[i])
	}

	cleanFamily = strings.Join(kept, " ")
	return cleanFamily, style, weight, width
}

// findWeight maps a lowercase token to a CSS weight. Checks run from most
// to least specific; unknown tokens fall back to 400.
func findWeight(s string) uint16 {
	switch {
	case strings.Contains(s, "hairline") || strings.Contains(s, "thin"):
		return 100
	case strings.Contains(s, "extralight") || strings.Contains(s, "ultralight"):
		return 200
	case strings.Contains(s, "light"):
		return 300
	case strings.Contains(s, "regular") || strings.Contains(s, "normal") || strings.Contains(s, "book"):
		return 400
	case strings.Contains(s, "medium"):
		return 500
	case strings.Contains(s, "demibold") || strings.Contains(s, "semibold"):
		return 600
	case strings.Contains(s, "bold"):
		if strings.Contains(s, "extra") || strings.Contains(s, "ultra") {
			return 800
		}
		return 700
	case strings.Contains(s, "black") || strings.Contains(s, "heavy"):
		return 900
	default:
		return 400
	}
}
