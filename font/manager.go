package font

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"

	"github.com/versatiles-org/versatiles-glyphs-go/render"
	"github.com/versatiles-org/versatiles-glyphs-go/writer"
)

// Manager is a keyed collection of font groups. Fonts with the same
// canonical id are merged into one group; rendering fans out over all
// (group, block) pairs.
type Manager struct {
	fonts    map[string]*Wrapper
	parallel bool
	quiet    bool
}

// NewManager returns an empty manager. With parallel set, blocks are
// rendered on all CPUs; otherwise one at a time, which is useful for
// debugging and deterministic profiling.
func NewManager(parallel bool) *Manager {
	return &Manager{
		fonts:    make(map[string]*Wrapper),
		parallel: parallel,
	}
}

// SetQuiet disables progress output.
func (m *Manager) SetQuiet(quiet bool) {
	m.quiet = quiet
}

// AddPath loads one font file and files it under the canonical id derived
// from its own metadata.
func (m *Manager) AddPath(path string) error {
	w := &Wrapper{}
	if err := w.AddPaths([]string{path}); err != nil {
		return err
	}
	m.mergeWrapper(w.Metadata().GenerateID(), w)
	return nil
}

// AddPaths loads multiple font files, each under its own id.
func (m *Manager) AddPaths(paths []string) error {
	for _, path := range paths {
		if err := m.AddPath(path); err != nil {
			return err
		}
	}
	return nil
}

// AddFontWithName loads the given files into a single group keyed by the
// canonical id of name, regardless of the files' own metadata.
func (m *Manager) AddFontWithName(name string, paths []string) error {
	w := &Wrapper{}
	if err := w.AddPaths(paths); err != nil {
		return fmt.Errorf("font %q: %w", name, err)
	}
	m.mergeWrapper(canonicalID(name), w)
	return nil
}

// mergeWrapper appends the files of w to an existing group with the same
// id, or registers w as a new group.
func (m *Manager) mergeWrapper(id string, w *Wrapper) {
	if existing, ok := m.fonts[id]; ok {
		existing.files = append(existing.files, w.files...)
		return
	}
	m.fonts[id] = w
}

// ids returns all group ids in sorted order.
func (m *Manager) ids() []string {
	ids := make([]string, 0, len(m.fonts))
	for id := range m.fonts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// renderTask pairs a group id with one of its blocks.
type renderTask struct {
	id    string
	block *GlyphBlock
}

// RenderGlyphs writes one directory per group and one .pbf file per
// non-empty block. Directories are emitted first in a serial pre-pass;
// block rendering then fans out over a worker pool. The writer is the only
// shared mutable state and is serialized by a mutex.
func (m *Manager) RenderGlyphs(out writer.Writer, renderer render.Renderer) error {
	var tasks []renderTask
	total := 0
	for _, id := range m.ids() {
		if err := out.WriteDirectory(id + "/"); err != nil {
			return fmt.Errorf("font %q: %w", id, err)
		}
		for _, block := range m.fonts[id].Blocks() {
			tasks = append(tasks, renderTask{id: id, block: block})
			total += block.Len()
		}
	}

	var progress *pterm.ProgressbarPrinter
	if !m.quiet {
		// Progress goes to stderr; stdout may carry the tar stream.
		progress, _ = pterm.DefaultProgressbar.
			WithTotal(total).
			WithTitle("rendering glyphs").
			WithWriter(os.Stderr).
			Start()
	}

	var group errgroup.Group
	if m.parallel {
		group.SetLimit(runtime.NumCPU())
	} else {
		group.SetLimit(1)
	}

	var mu sync.Mutex
	for _, task := range tasks {
		task := task
		group.Go(func() error {
			data := task.block.Render(task.id, renderer)
			filename := task.id + "/" + task.block.Filename()

			mu.Lock()
			defer mu.Unlock()
			if err := out.WriteFile(filename, data); err != nil {
				return fmt.Errorf("block %s of %q: %w", task.block.Range(), task.id, err)
			}
			if progress != nil {
				progress.Add(task.block.Len())
			}
			return nil
		})
	}

	err := group.Wait()
	if progress != nil {
		progress.Stop()
	}
	return err
}

// WriteIndexJSON writes the sorted id list to index.json.
func (m *Manager) WriteIndexJSON(out writer.Writer) error {
	data, err := buildIndexJSON(m.ids())
	if err != nil {
		return err
	}
	return out.WriteFile("index.json", data)
}

// WriteFamiliesJSON writes the family grouping to font_families.json.
func (m *Manager) WriteFamiliesJSON(out writer.Writer) error {
	data, err := buildFontFamiliesJSON(m.fonts)
	if err != nil {
		return err
	}
	return out.WriteFile("font_families.json", data)
}
