package writer

import (
	"fmt"
	"regexp"
	"strings"
)

var jsonWhitespace = regexp.MustCompile(`\n\s*`)

// DummyWriter records every write as a human-readable line, so tests can
// compare the full output sequence of a render run. JSON payloads are
// inlined with their indentation collapsed; binary payloads are reduced to
// their length.
type DummyWriter struct {
	entries []string
}

// WriteFile records the file name plus either its inlined JSON content or
// its byte length.
func (w *DummyWriter) WriteFile(name string, data []byte) error {
	var entry string
	if strings.HasSuffix(name, ".json") {
		entry = name + ": " + jsonWhitespace.ReplaceAllString(string(data), "")
	} else {
		entry = fmt.Sprintf("%s (%d)", name, len(data))
	}
	w.entries = append(w.entries, entry)
	return nil
}

// WriteDirectory records the directory name.
func (w *DummyWriter) WriteDirectory(name string) error {
	w.entries = append(w.entries, name)
	return nil
}

// Finish is a no-op.
func (w *DummyWriter) Finish() error {
	return nil
}

// Entries returns the recorded lines in write order.
func (w *DummyWriter) Entries() []string {
	return w.entries
}
