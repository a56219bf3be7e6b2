package render

import (
	"fmt"
	"strings"
)

// bitmapAsDigitArt renders a bitmap as rows of two-digit percentages, which
// keeps expected SDF values readable in tests.
func bitmapAsDigitArt(bitmap []byte, width int) []string {
	var rows []string
	for offset := 0; offset < len(bitmap); offset += width {
		cells := make([]string, 0, width)
		for _, v := range bitmap[offset : offset+width] {
			cells = append(cells, fmt.Sprintf("%02d", int(float64(v)/2.56)))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return rows
}
