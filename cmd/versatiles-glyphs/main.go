// Package main provides the CLI entry point for versatiles-glyphs.
//
// Usage:
//
//	versatiles-glyphs merge -o glyphs font.ttf font_arabic.ttf
//	versatiles-glyphs recurse -t font_directory > glyphs.tar
//	versatiles-glyphs debug glyphs/noto_sans_regular
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "merge":
		err = runMerge(os.Args[2:], os.Stdout)
	case "recurse":
		err = runRecurse(os.Args[2:], os.Stdout)
	case "debug":
		err = runDebug(os.Args[2:], os.Stdout)
	case "help", "-h", "--help":
		printUsage()
		return
	case "version", "-v", "--version":
		printVersion()
		return
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`versatiles-glyphs - Convert fonts into map-renderer glyph tiles

Usage:
  versatiles-glyphs merge [flags] <font files...>
  versatiles-glyphs recurse [flags] <directories...>
  versatiles-glyphs debug <glyph directory> [--format csv|tsv]
  versatiles-glyphs help
  versatiles-glyphs version

Commands:
  merge     Merge one or more font files into a single set of glyphs
  recurse   Scan directories for fonts (honoring fonts.json) and convert them
  debug     Print the glyph metrics of a rendered glyph directory
  help      Show this help message
  version   Show version information

Flags for merge and recurse:
  -o <dir>        Output directory (default "output"; removed and recreated)
  -t              Write a tar stream to stdout instead of a directory
  --no-families   Skip writing font_families.json
  --no-index      Skip writing index.json`)
}

func printVersion() {
	fmt.Println("versatiles-glyphs version 0.1.0")
}
