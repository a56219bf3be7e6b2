package font

import (
	"encoding/binary"
	"reflect"
	"testing"
	"unicode/utf16"
)

// buildNameTable assembles a minimal format-0 name table from
// (platformID, nameID, value) triples.
func buildNameTable(records []struct {
	platformID uint16
	nameID     uint16
	value      string
}) []byte {
	var strData []byte
	header := make([]byte, 6+len(records)*12)
	binary.BigEndian.PutUint16(header[2:], uint16(len(records)))
	binary.BigEndian.PutUint16(header[4:], uint16(len(header)))

	for i, rec := range records {
		var encoded []byte
		if rec.platformID == 0 || rec.platformID == 3 {
			for _, u := range utf16.Encode([]rune(rec.value)) {
				encoded = binary.BigEndian.AppendUint16(encoded, u)
			}
		} else {
			encoded = []byte(rec.value)
		}
		offset := len(strData)
		strData = append(strData, encoded...)

		r := header[6+i*12:]
		binary.BigEndian.PutUint16(r[0:], rec.platformID)
		binary.BigEndian.PutUint16(r[6:], rec.nameID)
		binary.BigEndian.PutUint16(r[8:], uint16(len(encoded)))
		binary.BigEndian.PutUint16(r[10:], uint16(offset))
	}
	return append(header, strData...)
}

func TestParseNameTable(t *testing.T) {
	table := buildNameTable([]struct {
		platformID uint16
		nameID     uint16
		value      string
	}{
		{0, nameIDFamily, "Fira Sans"},
		{3, nameIDFamily, "Fira Sans Windows"},
		{0, nameIDPostscriptName, "FiraSans-Regular"},
		{1, nameIDFullName, "Fira Sans Regular"},
	})

	names := parseNameTable(table)
	if names[nameIDFamily] != "Fira Sans" {
		t.Errorf("family = %q, want %q (first record wins)", names[nameIDFamily], "Fira Sans")
	}
	if names[nameIDPostscriptName] != "FiraSans-Regular" {
		t.Errorf("postscript name = %q", names[nameIDPostscriptName])
	}
	if names[nameIDFullName] != "Fira Sans Regular" {
		t.Errorf("full name = %q", names[nameIDFullName])
	}
}

func TestParseNameTableTruncated(t *testing.T) {
	if names := parseNameTable([]byte{0, 0}); len(names) != 0 {
		t.Errorf("truncated table should yield no names, got %v", names)
	}
}

// buildCmapFormat4 assembles a cmap with one format-4 subtable containing
// the given inclusive segments (identity glyph mapping via delta).
func buildCmapFormat4(segments [][2]uint16) []byte {
	segCount := len(segments) + 1 // plus the 0xFFFF sentinel

	sub := make([]byte, 14)
	binary.BigEndian.PutUint16(sub[0:], 4)
	binary.BigEndian.PutUint16(sub[6:], uint16(segCount*2))

	appendU16 := func(vals []uint16) {
		for _, v := range vals {
			sub = binary.BigEndian.AppendUint16(sub, v)
		}
	}

	var ends, starts, deltas, rangeOffsets []uint16
	for _, seg := range segments {
		starts = append(starts, seg[0])
		ends = append(ends, seg[1])
		deltas = append(deltas, 0)
		rangeOffsets = append(rangeOffsets, 0)
	}
	ends = append(ends, 0xFFFF)
	starts = append(starts, 0xFFFF)
	deltas = append(deltas, 1)
	rangeOffsets = append(rangeOffsets, 0)

	appendU16(ends)
	appendU16([]uint16{0}) // reservedPad
	appendU16(starts)
	appendU16(deltas)
	appendU16(rangeOffsets)

	header := make([]byte, 12)
	binary.BigEndian.PutUint16(header[2:], 1)
	// platform 0, encoding 3, offset 12
	binary.BigEndian.PutUint16(header[6:], 3)
	binary.BigEndian.PutUint32(header[8:], 12)
	return append(header, sub...)
}

func TestParseCmapFormat4(t *testing.T) {
	table := buildCmapFormat4([][2]uint16{{0x41, 0x44}, {0x61, 0x62}})
	codepoints, ok := parseCmapCodepoints(table)
	if !ok {
		t.Fatal("expected a unicode cmap")
	}
	want := []uint32{0x41, 0x42, 0x43, 0x44, 0x61, 0x62}
	if !reflect.DeepEqual(codepoints, want) {
		t.Errorf("codepoints = %v, want %v", codepoints, want)
	}
}

func TestParseCmapFormat12(t *testing.T) {
	sub := make([]byte, 16+12)
	binary.BigEndian.PutUint16(sub[0:], 12)
	binary.BigEndian.PutUint32(sub[12:], 1)
	binary.BigEndian.PutUint32(sub[16:], 0x1F600)
	binary.BigEndian.PutUint32(sub[20:], 0x1F603)
	binary.BigEndian.PutUint32(sub[24:], 5)

	header := make([]byte, 12)
	binary.BigEndian.PutUint16(header[2:], 1)
	binary.BigEndian.PutUint32(header[8:], 12)
	table := append(header, sub...)

	codepoints, ok := parseCmapCodepoints(table)
	if !ok {
		t.Fatal("expected a unicode cmap")
	}
	want := []uint32{0x1F600, 0x1F601, 0x1F602, 0x1F603}
	if !reflect.DeepEqual(codepoints, want) {
		t.Errorf("codepoints = %v, want %v", codepoints, want)
	}
}

func TestParseCmapIgnoresNonUnicodePlatforms(t *testing.T) {
	table := buildCmapFormat4([][2]uint16{{0x41, 0x41}})
	// Rewrite the platform id of the single subtable record to Windows.
	binary.BigEndian.PutUint16(table[4:], 3)

	if _, ok := parseCmapCodepoints(table); ok {
		t.Error("table without unicode-platform subtables should not qualify")
	}
}

func TestParseCmapEmptyTable(t *testing.T) {
	if _, ok := parseCmapCodepoints(nil); ok {
		t.Error("nil table should not qualify")
	}
}
