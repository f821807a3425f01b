// Package app wires the pipeline together: input → source extraction →
// tree parsing → grid projection → xlsx rendering.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"tree2xlsx/internal/config"
	"tree2xlsx/internal/grid"
	"tree2xlsx/internal/source"
	"tree2xlsx/internal/treeparse"
	"tree2xlsx/internal/xlsxout"
)

// Options are the per-run settings from the command line. Values left empty
// fall back to the loaded Config.
type Options struct {
	InPath        string // "" or "-" reads stdin
	OutPath       string
	IncludeHidden bool
}

// Run executes the whole pipeline once. Input-acquisition and output-write
// failures are returned with the failing path; malformed listing lines are
// not errors and are skipped by the parser.
func Run(opts Options, cfg config.Config, log *slog.Logger) error {
	var r io.Reader
	name := opts.InPath
	if name == "" || name == "-" {
		name = "stdin"
		r = os.Stdin
		log.Info("reading tree output from stdin (end with Ctrl-D)")
	} else {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("open input %s: %w", name, err)
		}
		defer f.Close()
		r = f
	}

	ex := source.ForPath(name)
	if pdf, ok := ex.(*source.PDF); ok {
		pdf.FallbackPdftotext = cfg.PDFFallbackPdftotext
	}
	text, err := ex.Extract(r)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	log.Debug("input extracted", "source", name, "bytes", len(text))

	items := treeparse.Parse(text, treeparse.Options{
		IncludeHidden: opts.IncludeHidden,
		KnownFiles:    cfg.KnownFiles,
	})
	// The last item is always the synthetic summary.
	log.Info("parsed tree", "entries", len(items)-1, "include_hidden", opts.IncludeHidden)

	g := grid.Project(items)
	log.Debug("grid projected", "rows", len(g.Rows), "max_depth", g.MaxDepth)

	out := opts.OutPath
	if out == "" {
		out = cfg.OutputPath
	}
	layout := xlsxout.Layout{
		Sheet:            cfg.Sheet,
		LevelColWidth:    cfg.LevelColWidth,
		PathColWidth:     cfg.PathColWidth,
		NotesColWidth:    cfg.NotesColWidth,
		SummaryRowHeight: cfg.SummaryRowHeight,
	}
	if err := xlsxout.Write(g, out, layout); err != nil {
		return err
	}
	log.Info("workbook written", "path", out)
	return nil
}
