// Package pbf implements the glyph wire format consumed by MapLibre and
// Mapbox-GL style renderers.
//
// The schema is a small proto2 definition:
//
//	message glyphs { repeated fontstack stacks = 1; }
//	message fontstack {
//	  required string name   = 1;
//	  required string range  = 2;
//	  repeated glyph  glyphs = 3;
//	}
//	message glyph {
//	  required uint32 id      = 1;
//	  optional bytes  bitmap  = 2;
//	  required uint32 width   = 3;
//	  required uint32 height  = 4;
//	  required sint32 left    = 5;
//	  required sint32 top     = 6;
//	  required uint32 advance = 7;
//	}
//
// The messages are driven directly through protowire instead of generated
// code: the schema is tiny, stable, and uses proto2 required fields.
package pbf

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Glyph is a single rendered glyph. Bitmap holds the signed distance field
// with a 3 pixel border on all sides, so its length is
// (Width+6) * (Height+6); a nil Bitmap marks an empty glyph.
type Glyph struct {
	ID      uint32
	Bitmap  []byte
	Width   uint32
	Height  uint32
	Left    int32
	Top     int32
	Advance uint32
}

// EmptyGlyph returns a glyph carrying only its id and advance, used for
// codepoints without a drawable outline (spaces, control characters).
func EmptyGlyph(id, advance uint32) Glyph {
	return Glyph{ID: id, Advance: advance}
}

// Fontstack groups the glyphs of one 256-codepoint block of one font.
// Name is the canonical font id, Range the "start-end" codepoint range.
type Fontstack struct {
	Name   string
	Range  string
	Glyphs []Glyph
}

// Glyphs is the top-level message of a .pbf file.
type Glyphs struct {
	Stacks []Fontstack
}

func (g *Glyph) append(buf []byte) []byte {
	buf = protowire.AppendTag(buf, 1, protowire.VarintType)
	buf = protowire.AppendVarint(buf, uint64(g.ID))
	if g.Bitmap != nil {
		buf = protowire.AppendTag(buf, 2, protowire.BytesType)
		buf = protowire.AppendBytes(buf, g.Bitmap)
	}
	buf = protowire.AppendTag(buf, 3, protowire.VarintType)
	buf = protowire.AppendVarint(buf, uint64(g.Width))
	buf = protowire.AppendTag(buf, 4, protowire.VarintType)
	buf = protowire.AppendVarint(buf, uint64(g.Height))
	buf = protowire.AppendTag(buf, 5, protowire.VarintType)
	buf = protowire.AppendVarint(buf, protowire.EncodeZigZag(int64(g.Left)))
	buf = protowire.AppendTag(buf, 6, protowire.VarintType)
	buf = protowire.AppendVarint(buf, protowire.EncodeZigZag(int64(g.Top)))
	buf = protowire.AppendTag(buf, 7, protowire.VarintType)
	buf = protowire.AppendVarint(buf, uint64(g.Advance))
	return buf
}

func (f *Fontstack) append(buf []byte) []byte {
	buf = protowire.AppendTag(buf, 1, protowire.BytesType)
	buf = protowire.AppendString(buf, f.Name)
	buf = protowire.AppendTag(buf, 2, protowire.BytesType)
	buf = protowire.AppendString(buf, f.Range)
	for i := range f.Glyphs {
		buf = protowire.AppendTag(buf, 3, protowire.BytesType)
		buf = protowire.AppendBytes(buf, f.Glyphs[i].append(nil))
	}
	return buf
}

// Encode returns the wire representation of the message.
func (g *Glyphs) Encode() []byte {
	var buf []byte
	for i := range g.Stacks {
		buf = protowire.AppendTag(buf, 1, protowire.BytesType)
		buf = protowire.AppendBytes(buf, g.Stacks[i].append(nil))
	}
	return buf
}

// Decode parses the wire representation of a glyphs message.
func Decode(data []byte) (*Glyphs, error) {
	var glyphs Glyphs
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("decoding glyphs tag: %w", protowire.ParseError(n))
		}
		data = data[n:]
		if num == 1 && typ == protowire.BytesType {
			sub, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, fmt.Errorf("decoding fontstack: %w", protowire.ParseError(n))
			}
			data = data[n:]
			stack, err := decodeFontstack(sub)
			if err != nil {
				return nil, err
			}
			glyphs.Stacks = append(glyphs.Stacks, *stack)
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, data)
		if n < 0 {
			return nil, fmt.Errorf("skipping field %d: %w", num, protowire.ParseError(n))
		}
		data = data[n:]
	}
	return &glyphs, nil
}

func decodeFontstack(data []byte) (*Fontstack, error) {
	var stack Fontstack
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("decoding fontstack tag: %w", protowire.ParseError(n))
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			s, n := protowire.ConsumeString(data)
			if n < 0 {
				return nil, fmt.Errorf("decoding name: %w", protowire.ParseError(n))
			}
			data = data[n:]
			stack.Name = s
		case num == 2 && typ == protowire.BytesType:
			s, n := protowire.ConsumeString(data)
			if n < 0 {
				return nil, fmt.Errorf("decoding range: %w", protowire.ParseError(n))
			}
			data = data[n:]
			stack.Range = s
		case num == 3 && typ == protowire.BytesType:
			sub, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, fmt.Errorf("decoding glyph: %w", protowire.ParseError(n))
			}
			data = data[n:]
			glyph, err := decodeGlyph(sub)
			if err != nil {
				return nil, err
			}
			stack.Glyphs = append(stack.Glyphs, *glyph)
		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("skipping field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return &stack, nil
}

func decodeGlyph(data []byte) (*Glyph, error) {
	var glyph Glyph
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("decoding glyph tag: %w", protowire.ParseError(n))
		}
		data = data[n:]
		if typ == protowire.BytesType && num == 2 {
			b, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, fmt.Errorf("decoding bitmap: %w", protowire.ParseError(n))
			}
			data = data[n:]
			glyph.Bitmap = append([]byte{}, b...)
			continue
		}
		if typ != protowire.VarintType {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("skipping field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
			continue
		}
		v, n := protowire.ConsumeVarint(data)
		if n < 0 {
			return nil, fmt.Errorf("decoding field %d: %w", num, protowire.ParseError(n))
		}
		data = data[n:]
		switch num {
		case 1:
			glyph.ID = uint32(v)
		case 3:
			glyph.Width = uint32(v)
		case 4:
			glyph.Height = uint32(v)
		case 5:
			glyph.Left = int32(protowire.DecodeZigZag(v))
		case 6:
			glyph.Top = int32(protowire.DecodeZigZag(v))
		case 7:
			glyph.Advance = uint32(v)
		}
	}
	return &glyph, nil
}
