package font

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// FileEntry owns the raw bytes of one font file together with its parsed
// face and derived metadata. The byte slice is shared by the face and never
// written after parsing, so references into it stay valid for the entry's
// lifetime.
type FileEntry struct {
	data     []byte
	Face     *font.Face
	Metadata *Metadata
}

// NewFileEntry parses raw font bytes into a file entry.
func NewFileEntry(data []byte) (*FileEntry, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing font data: %w", err)
	}

	ld, err := ot.NewLoader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading font tables: %w", err)
	}

	metadata, err := newMetadata(ld)
	if err != nil {
		return nil, err
	}

	return &FileEntry{
		data:     data,
		Face:     face,
		Metadata: metadata,
	}, nil
}
