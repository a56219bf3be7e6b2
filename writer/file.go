package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileWriter writes files and directories below a root folder on disk.
type FileWriter struct {
	folder string
}

// NewFileWriter returns a writer rooted at folder. The folder itself must
// already exist.
func NewFileWriter(folder string) *FileWriter {
	return &FileWriter{folder: folder}
}

// WriteFile creates (or overwrites) the named file below the root folder.
func (w *FileWriter) WriteFile(name string, data []byte) error {
	path := filepath.Join(w.folder, filepath.FromSlash(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing file %q: %w", path, err)
	}
	return nil
}

// WriteDirectory creates the named directory below the root folder,
// including any missing parents.
func (w *FileWriter) WriteDirectory(name string) error {
	path := filepath.Join(w.folder, filepath.FromSlash(name))
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("creating directory %q: %w", path, err)
	}
	return nil
}

// Finish is a no-op for the file writer.
func (w *FileWriter) Finish() error {
	return nil
}
