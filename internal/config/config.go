package config

import (
	"os"
	"strconv"
	"strings"

	"tree2xlsx/internal/treeparse"
)

type Config struct {
	// Output workbook
	OutputPath string
	Sheet      string

	// Column widths and summary row height
	LevelColWidth    float64
	PathColWidth     float64
	NotesColWidth    float64
	SummaryRowHeight float64

	// Extensionless names classified as files. TREE2XLSX_KNOWN_FILES adds
	// to the built-in set, comma separated.
	KnownFiles []string

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		OutputPath: envOr("TREE2XLSX_OUTPUT", "tree_output.xlsx"),
		Sheet:      envOr("TREE2XLSX_SHEET", "Tree"),

		LevelColWidth:    envFloat("TREE2XLSX_LEVEL_WIDTH", 20),
		PathColWidth:     envFloat("TREE2XLSX_PATH_WIDTH", 60),
		NotesColWidth:    envFloat("TREE2XLSX_NOTES_WIDTH", 30),
		SummaryRowHeight: envFloat("TREE2XLSX_SUMMARY_HEIGHT", 20),

		KnownFiles: append(append([]string{}, treeparse.DefaultKnownFiles...),
			envList("TREE2XLSX_KNOWN_FILES")...),

		PDFFallbackPdftotext: envBool("TREE2XLSX_PDF_FALLBACK", true),
	}

	if cfg.OutputPath == "" {
		cfg.OutputPath = "tree_output.xlsx"
	}
	if cfg.LevelColWidth <= 0 {
		cfg.LevelColWidth = 20
	}
	if cfg.PathColWidth <= 0 {
		cfg.PathColWidth = 60
	}
	if cfg.NotesColWidth <= 0 {
		cfg.NotesColWidth = 30
	}
	if cfg.SummaryRowHeight <= 0 {
		cfg.SummaryRowHeight = 20
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
