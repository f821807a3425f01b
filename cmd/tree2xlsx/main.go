package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"tree2xlsx/internal/app"
	"tree2xlsx/internal/config"
)

// Overridable via -ldflags "-X main.version=1.0.0"
var version = "dev"

func main() {
	in := flag.String("in", "-", "input file with tree output ('-' for stdin; .md/.html/.docx/.pdf are unwrapped first)")
	out := flag.String("out", "", "output .xlsx path (default tree_output.xlsx, or TREE2XLSX_OUTPUT)")

	var includeHidden bool
	flag.BoolVar(&includeHidden, "include-hidden", false, "include hidden (dot-prefixed) entries and their subtrees")
	flag.BoolVar(&includeHidden, "a", false, "shorthand for -include-hidden")

	verbose := flag.Bool("v", false, "verbose logging")
	showVersion := flag.Bool("version", false, "print version and exit")

	flag.Usage = func() {
		name := filepath.Base(os.Args[0])
		fmt.Fprintf(os.Stderr, `%s converts tree command output into an xlsx workbook with one
column per depth level and merged cells along shared ancestry.

Usage:
  tree | %s
  %s -in listing.txt -out layout.xlsx -a

Flags:
`, name, name, name)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Load()

	opts := app.Options{
		InPath:        *in,
		OutPath:       *out,
		IncludeHidden: includeHidden,
	}
	if err := app.Run(opts, cfg, log); err != nil {
		log.Error("tree2xlsx failed", "error", err)
		os.Exit(1)
	}
}
