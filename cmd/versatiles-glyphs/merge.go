package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/versatiles-org/versatiles-glyphs-go/font"
)

// runMerge adds each input file to a fresh manager and renders everything.
// Fonts that normalize to the same canonical id end up merged in one glyph
// directory, which is how split fonts (latin + arabic + cjk files) are
// combined.
func runMerge(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("merge", flag.ExitOnError)
	flags := addOutputFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := flags.validate(); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("missing input font files")
	}

	manager := font.NewManager(!flags.singleThread)
	manager.SetQuiet(flags.quiet)
	if err := manager.AddPaths(fs.Args()); err != nil {
		return err
	}

	return runPipeline(manager, flags, stdout)
}
