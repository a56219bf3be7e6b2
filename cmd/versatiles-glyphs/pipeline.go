package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/versatiles-org/versatiles-glyphs-go/font"
	"github.com/versatiles-org/versatiles-glyphs-go/render"
	"github.com/versatiles-org/versatiles-glyphs-go/writer"
)

// outputFlags are the flags shared by the merge and recurse subcommands.
type outputFlags struct {
	outputDirectory string
	tar             bool
	noFamilies      bool
	noIndex         bool
	dummy           bool
	singleThread    bool
	quiet           bool
}

func addOutputFlags(fs *flag.FlagSet) *outputFlags {
	var flags outputFlags
	fs.StringVar(&flags.outputDirectory, "o", "", "Output directory for glyphs")
	fs.StringVar(&flags.outputDirectory, "output-directory", "", "Output directory for glyphs (long form)")
	fs.BoolVar(&flags.tar, "t", false, "Write glyphs as a tar stream to stdout")
	fs.BoolVar(&flags.tar, "tar", false, "Write glyphs as a tar stream to stdout (long form)")
	fs.BoolVar(&flags.noFamilies, "no-families", false, "Skip writing font_families.json")
	fs.BoolVar(&flags.noIndex, "no-index", false, "Skip writing index.json")
	fs.BoolVar(&flags.dummy, "dummy", false, "Use the dummy renderer (testing only)")
	fs.BoolVar(&flags.singleThread, "single-thread", false, "Render in a single thread (testing only)")
	fs.BoolVar(&flags.quiet, "quiet", false, "Suppress progress output")
	return &flags
}

func (f *outputFlags) validate() error {
	if f.tar && f.outputDirectory != "" {
		return fmt.Errorf("-o and -t are mutually exclusive")
	}
	return nil
}

// runPipeline renders all fonts of the manager plus the two index files to
// the destination selected by the flags, and finalizes the writer.
func runPipeline(manager *font.Manager, flags *outputFlags, stdout io.Writer) error {
	var out writer.Writer
	if flags.tar {
		fmt.Fprintln(os.Stderr, "Rendering glyphs as tar to stdout.")
		out = writer.NewTarWriter(stdout)
	} else {
		dir := flags.outputDirectory
		if dir == "" {
			dir = "output"
		}
		absDir, err := prepareOutputDirectory(dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Rendering glyphs to directory %q.\n", absDir)
		out = writer.NewFileWriter(absDir)
	}

	renderer := render.NewRenderer(flags.dummy)

	if err := manager.RenderGlyphs(out, renderer); err != nil {
		return err
	}
	if !flags.noIndex {
		if err := manager.WriteIndexJSON(out); err != nil {
			return err
		}
	}
	if !flags.noFamilies {
		if err := manager.WriteFamiliesJSON(out); err != nil {
			return err
		}
	}
	return out.Finish()
}

// prepareOutputDirectory removes any previous output and recreates the
// directory, returning its absolute path.
func prepareOutputDirectory(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving output directory %q: %w", dir, err)
	}
	if err := os.RemoveAll(absDir); err != nil {
		return "", fmt.Errorf("removing directory %q: %w", absDir, err)
	}
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %q: %w", absDir, err)
	}
	return absDir, nil
}
