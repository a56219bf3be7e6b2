package font

import (
	"encoding/binary"
	"sort"
	"unicode/utf16"
)

// Numeric identifiers of the name-table records we read.
const (
	nameIDFamily         = 1
	nameIDFullName       = 4
	nameIDPostscriptName = 6
)

// parseNameTable reads all records of a raw 'name' table into a map from
// name id to string, preferring the first non-empty string per id.
// Malformed records are skipped.
func parseNameTable(data []byte) map[uint16]string {
	names := make(map[uint16]string)
	if len(data) < 6 {
		return names
	}
	count := int(binary.BigEndian.Uint16(data[2:]))
	stringOffset := int(binary.BigEndian.Uint16(data[4:]))

	for i := 0; i < count; i++ {
		record := 6 + i*12
		if record+12 > len(data) {
			break
		}
		platformID := binary.BigEndian.Uint16(data[record:])
		nameID := binary.BigEndian.Uint16(data[record+6:])
		length := int(binary.BigEndian.Uint16(data[record+8:]))
		offset := int(binary.BigEndian.Uint16(data[record+10:]))

		start := stringOffset + offset
		if start+length > len(data) {
			continue
		}
		if _, ok := names[nameID]; ok {
			continue
		}
		value := decodeNameString(platformID, data[start:start+length])
		if value != "" {
			names[nameID] = value
		}
	}
	return names
}

// decodeNameString decodes a name record payload. Unicode and Windows
// platforms store UTF-16BE; the Macintosh platform is treated as Latin-1,
// which covers the Roman encoding of every font we care about.
func decodeNameString(platformID uint16, data []byte) string {
	if platformID == 0 || platformID == 3 {
		units := make([]uint16, 0, len(data)/2)
		for i := 0; i+1 < len(data); i += 2 {
			units = append(units, binary.BigEndian.Uint16(data[i:]))
		}
		return string(utf16.Decode(units))
	}
	runes := make([]rune, 0, len(data))
	for _, b := range data {
		runes = append(runes, rune(b))
	}
	return string(runes)
}

// maxCodepoint caps cmap iteration at the top of the Unicode range, so a
// corrupt group table cannot explode the codepoint set.
const maxCodepoint = 0x10FFFF

// parseCmapCodepoints collects, from every Unicode-platform subtable of a
// raw 'cmap' table, all codepoints that map to a non-zero glyph index. The
// result is sorted and duplicate-free. It returns false if the table has no
// Unicode subtable.
func parseCmapCodepoints(data []byte) ([]uint32, bool) {
	if len(data) < 4 {
		return nil, false
	}
	numTables := int(binary.BigEndian.Uint16(data[2:]))

	seen := make(map[uint32]struct{})
	found := false
	for i := 0; i < numTables; i++ {
		record := 4 + i*8
		if record+8 > len(data) {
			break
		}
		platformID := binary.BigEndian.Uint16(data[record:])
		offset := int(binary.BigEndian.Uint32(data[record+4:]))
		if platformID != 0 {
			// Only Unicode-platform subtables identify coverage.
			continue
		}
		if offset+2 > len(data) {
			continue
		}
		if parseCmapSubtable(data[offset:], seen) {
			found = true
		}
	}
	if !found {
		return nil, false
	}

	codepoints := make([]uint32, 0, len(seen))
	for cp := range seen {
		codepoints = append(codepoints, cp)
	}
	sort.Slice(codepoints, func(i, j int) bool { return codepoints[i] < codepoints[j] })
	return codepoints, true
}

func parseCmapSubtable(data []byte, seen map[uint32]struct{}) bool {
	format := binary.BigEndian.Uint16(data)
	switch format {
	case 0:
		return parseCmapFormat0(data, seen)
	case 4:
		return parseCmapFormat4(data, seen)
	case 6:
		return parseCmapFormat6(data, seen)
	case 12:
		return parseCmapFormat12(data, seen)
	}
	return false
}

// parseCmapFormat0 reads the byte-encoding table: 256 direct glyph bytes.
func parseCmapFormat0(data []byte, seen map[uint32]struct{}) bool {
	if len(data) < 6+256 {
		return false
	}
	for cp := 0; cp < 256; cp++ {
		if data[6+cp] != 0 {
			seen[uint32(cp)] = struct{}{}
		}
	}
	return true
}

// parseCmapFormat4 reads the segment-mapping table used for the BMP.
func parseCmapFormat4(data []byte, seen map[uint32]struct{}) bool {
	if len(data) < 14 {
		return false
	}
	segCountX2 := int(binary.BigEndian.Uint16(data[6:]))
	segCount := segCountX2 / 2
	if segCount == 0 {
		return false
	}
	endCodes := 14
	startCodes := endCodes + segCountX2 + 2
	idDeltas := startCodes + segCountX2
	idRangeOffsets := idDeltas + segCountX2
	if idRangeOffsets+segCountX2 > len(data) {
		return false
	}

	for seg := 0; seg < segCount; seg++ {
		end := uint32(binary.BigEndian.Uint16(data[endCodes+seg*2:]))
		start := uint32(binary.BigEndian.Uint16(data[startCodes+seg*2:]))
		delta := binary.BigEndian.Uint16(data[idDeltas+seg*2:])
		rangeOffset := int(binary.BigEndian.Uint16(data[idRangeOffsets+seg*2:]))

		if start > end {
			continue
		}
		for cp := start; cp <= end && cp != 0xFFFF; cp++ {
			var gid uint16
			if rangeOffset == 0 {
				gid = uint16(cp) + delta
			} else {
				// The range offset is relative to its own position in
				// the idRangeOffset array.
				pos := idRangeOffsets + seg*2 + rangeOffset + int(cp-start)*2
				if pos+2 > len(data) {
					continue
				}
				gid = binary.BigEndian.Uint16(data[pos:])
				if gid == 0 {
					continue
				}
				gid += delta
			}
			if gid != 0 {
				seen[cp] = struct{}{}
			}
		}
	}
	return true
}

// parseCmapFormat6 reads the trimmed table: a dense glyph range.
func parseCmapFormat6(data []byte, seen map[uint32]struct{}) bool {
	if len(data) < 10 {
		return false
	}
	firstCode := uint32(binary.BigEndian.Uint16(data[6:]))
	entryCount := int(binary.BigEndian.Uint16(data[8:]))
	if 10+entryCount*2 > len(data) {
		return false
	}
	for i := 0; i < entryCount; i++ {
		if binary.BigEndian.Uint16(data[10+i*2:]) != 0 {
			seen[firstCode+uint32(i)] = struct{}{}
		}
	}
	return true
}

// parseCmapFormat12 reads the segmented-coverage table for the full
// Unicode range.
func parseCmapFormat12(data []byte, seen map[uint32]struct{}) bool {
	if len(data) < 16 {
		return false
	}
	numGroups := int(binary.BigEndian.Uint32(data[12:]))
	if 16+numGroups*12 > len(data) {
		return false
	}
	for i := 0; i < numGroups; i++ {
		group := 16 + i*12
		start := binary.BigEndian.Uint32(data[group:])
		end := binary.BigEndian.Uint32(data[group+4:])
		startGlyph := binary.BigEndian.Uint32(data[group+8:])
		if end > maxCodepoint {
			end = maxCodepoint
		}
		for cp := start; cp <= end; cp++ {
			if startGlyph+(cp-start) != 0 {
				seen[cp] = struct{}{}
			}
		}
	}
	return true
}
