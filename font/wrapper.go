package font

import (
	"fmt"
	"os"
)

// Wrapper groups one or more font files under a single logical font
// identity. The metadata of the first added file is authoritative for the
// whole group.
type Wrapper struct {
	files []*FileEntry
}

// AddFile appends a parsed file to the group.
func (w *Wrapper) AddFile(entry *FileEntry) {
	w.files = append(w.files, entry)
}

// AddPaths reads and parses the given font files in order.
func (w *Wrapper) AddPaths(paths []string) error {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading font file %q: %w", path, err)
		}
		entry, err := NewFileEntry(data)
		if err != nil {
			return fmt.Errorf("font file %q: %w", path, err)
		}
		w.files = append(w.files, entry)
	}
	return nil
}

// Metadata returns the metadata of the first file of the group.
func (w *Wrapper) Metadata() *Metadata {
	return w.files[0].Metadata
}

// Blocks buckets the codepoints of all files into 256-codepoint blocks.
// Files are processed in insertion order and the first file covering a
// codepoint keeps it. Only non-empty blocks are returned, in ascending
// order.
func (w *Wrapper) Blocks() []*GlyphBlock {
	blocks := make([]*GlyphBlock, blockCount)
	for i := range blocks {
		blocks[i] = newGlyphBlock(uint32(i) * BlockSize)
	}

	for _, entry := range w.files {
		for _, codepoint := range entry.Metadata.Codepoints {
			blockIndex := codepoint / BlockSize
			if blockIndex >= blockCount {
				continue
			}
			blocks[blockIndex].setGlyphFont(uint8(codepoint%BlockSize), entry)
		}
	}

	var filled []*GlyphBlock
	for _, block := range blocks {
		if block.Len() > 0 {
			filled = append(filled, block)
		}
	}
	return filled
}
