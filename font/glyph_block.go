package font

import (
	"fmt"

	"github.com/versatiles-org/versatiles-glyphs-go/pbf"
	"github.com/versatiles-org/versatiles-glyphs-go/render"
)

// BlockSize is the number of codepoints per output file.
const BlockSize = 256

// blockCount limits the covered range to block indices 0..255; higher
// codepoints are not emitted.
const blockCount = 256

// GlyphBlock is a window of 256 consecutive codepoints. Every slot holds at
// most one reference to the font file responsible for that codepoint.
type GlyphBlock struct {
	StartIndex uint32
	glyphs     map[uint8]*FileEntry
}

func newGlyphBlock(startIndex uint32) *GlyphBlock {
	return &GlyphBlock{
		StartIndex: startIndex,
		glyphs:     make(map[uint8]*FileEntry),
	}
}

// setGlyphFont assigns the font responsible for the slot. The first writer
// wins: later files in a group do not override earlier ones, preserving the
// hand-authored fallback priority.
func (b *GlyphBlock) setGlyphFont(charIndex uint8, entry *FileEntry) {
	if _, ok := b.glyphs[charIndex]; !ok {
		b.glyphs[charIndex] = entry
	}
}

// Len returns the number of filled slots.
func (b *GlyphBlock) Len() int {
	return len(b.glyphs)
}

// Range returns the codepoint range as "start-end".
func (b *GlyphBlock) Range() string {
	return fmt.Sprintf("%d-%d", b.StartIndex, b.StartIndex+BlockSize-1)
}

// Filename returns the output file name of the block.
func (b *GlyphBlock) Filename() string {
	return b.Range() + ".pbf"
}

// Render renders every filled slot in ascending codepoint order and
// returns the encoded fontstack message.
func (b *GlyphBlock) Render(fontName string, renderer render.Renderer) []byte {
	stack := pbf.Fontstack{
		Name:  fontName,
		Range: b.Range(),
	}

	for charIndex := 0; charIndex < BlockSize; charIndex++ {
		entry, ok := b.glyphs[uint8(charIndex)]
		if !ok {
			continue
		}
		codepoint := b.StartIndex + uint32(charIndex)
		if glyph := render.Glyph(entry.Face, codepoint, renderer); glyph != nil {
			stack.Glyphs = append(stack.Glyphs, *glyph)
		}
	}

	glyphs := pbf.Glyphs{Stacks: []pbf.Fontstack{stack}}
	return glyphs.Encode()
}
