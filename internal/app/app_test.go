package app

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"tree2xlsx/internal/config"
)

func TestRun_FileToWorkbook(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "listing.txt")
	out := filepath.Join(dir, "out.xlsx")

	listing := "├── src\n│   ├── main.rs\n│   └── lib.rs\n├── Cargo.toml\n\n1 directory, 3 files\n"
	if err := os.WriteFile(in, []byte(listing), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	err := Run(Options{InPath: in, OutPath: out}, config.Load(), log)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Tree", "A2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "src" {
		t.Errorf("A2 = %q, want src", got)
	}
}

func TestRun_MissingInputFails(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	err := Run(Options{InPath: "/nonexistent/listing.txt", OutPath: "unused.xlsx"}, config.Load(), log)
	if err == nil {
		t.Fatalf("expected error for missing input file")
	}
}

func TestRun_UnwritableOutputFails(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "listing.txt")
	if err := os.WriteFile(in, []byte("├── src\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	out := filepath.Join(dir, "missing", "deep", "out.xlsx")
	if err := Run(Options{InPath: in, OutPath: out}, config.Load(), log); err == nil {
		t.Fatalf("expected error for unwritable output path")
	}
}
