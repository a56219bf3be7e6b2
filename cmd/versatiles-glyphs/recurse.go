package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/versatiles-org/versatiles-glyphs-go/font"
)

// fontConfig is one entry of a fonts.json file: a named set of font files
// to merge, with paths relative to the containing directory.
type fontConfig struct {
	Name    string   `json:"name"`
	Sources []string `json:"sources"`
}

// runRecurse scans directories for fonts and renders everything found.
// Directories containing a fonts.json are converted as configured; all
// other directories are walked recursively and every .ttf/.otf file is
// added individually.
func runRecurse(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("recurse", flag.ExitOnError)
	flags := addOutputFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := flags.validate(); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("missing input directories")
	}

	manager := font.NewManager(!flags.singleThread)
	manager.SetQuiet(flags.quiet)

	for _, dir := range fs.Args() {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolving directory %q: %w", dir, err)
		}
		fmt.Fprintf(os.Stderr, "Scanning directory %q.\n", absDir)
		if err := scan(absDir, manager); err != nil {
			return err
		}
	}

	return runPipeline(manager, flags, stdout)
}

// scan walks a path and feeds every font it finds into the manager.
func scan(path string, manager *font.Manager) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("scanning %q: %w", path, err)
	}

	if !info.IsDir() {
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".ttf" || ext == ".otf" {
			return manager.AddPath(path)
		}
		return nil
	}

	configPath := filepath.Join(path, "fonts.json")
	if data, err := os.ReadFile(configPath); err == nil {
		var configs []fontConfig
		if err := json.Unmarshal(data, &configs); err != nil {
			return fmt.Errorf("parsing %q: %w", configPath, err)
		}
		for _, config := range configs {
			sources := make([]string, len(config.Sources))
			for i, src := range config.Sources {
				sources[i] = filepath.Join(path, src)
			}
			if err := manager.AddFontWithName(config.Name, sources); err != nil {
				return err
			}
		}
		return nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("reading directory %q: %w", path, err)
	}
	for _, entry := range entries {
		if err := scan(filepath.Join(path, entry.Name()), manager); err != nil {
			return err
		}
	}
	return nil
}
