package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/versatiles-org/versatiles-glyphs-go/pbf"
)

var pbfFilename = regexp.MustCompile(`^(\d+)-(\d+)\.pbf$`)

// runDebug scans a rendered glyph directory and prints one row per glyph
// with its metrics, as CSV or TSV.
func runDebug(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("debug", flag.ExitOnError)
	format := fs.String("format", "csv", "Output format: csv or tsv")
	if err := fs.Parse(args); err != nil {
		return err
	}
	// Flags may also follow the directory argument.
	var positional []string
	for fs.NArg() > 0 {
		positional = append(positional, fs.Arg(0))
		if err := fs.Parse(fs.Args()[1:]); err != nil {
			return err
		}
	}
	if len(positional) != 1 {
		return fmt.Errorf("expected exactly one glyph directory")
	}

	var separator string
	switch *format {
	case "csv":
		separator = ","
	case "tsv":
		separator = "\t"
	default:
		return fmt.Errorf("unknown format %q", *format)
	}

	dir := positional[0]
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading glyph directory %q: %w", dir, err)
	}

	type blockFile struct {
		start int
		name  string
	}
	var files []blockFile
	for _, entry := range entries {
		match := pbfFilename.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}
		start, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		files = append(files, blockFile{start: start, name: entry.Name()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].start < files[j].start })

	write := func(columns ...string) error {
		_, err := fmt.Fprintln(stdout, strings.Join(columns, separator))
		return err
	}
	if err := write("codepoint", "width", "height", "left", "top", "advance", "bitmap_size"); err != nil {
		return err
	}

	for _, file := range files {
		path := filepath.Join(dir, file.name)
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %q: %w", path, err)
		}
		glyphs, err := pbf.Decode(data)
		if err != nil {
			return fmt.Errorf("decoding %q: %w", path, err)
		}

		var all []pbf.Glyph
		for _, stack := range glyphs.Stacks {
			all = append(all, stack.Glyphs...)
		}
		sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

		for _, glyph := range all {
			err := write(
				strconv.FormatUint(uint64(glyph.ID), 10),
				strconv.FormatUint(uint64(glyph.Width), 10),
				strconv.FormatUint(uint64(glyph.Height), 10),
				strconv.FormatInt(int64(glyph.Left), 10),
				strconv.FormatInt(int64(glyph.Top), 10),
				strconv.FormatUint(uint64(glyph.Advance), 10),
				strconv.Itoa(len(glyph.Bitmap)),
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
