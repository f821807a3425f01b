// Package source pulls the raw tree listing text out of the supported input
// containers. Plain text is passed through; Markdown, HTML, DOCX, and PDF
// inputs carry listings inside code fences, <pre> blocks, or paragraphs, and
// each extractor knows where to look.
package source

import (
	"io"
	"path/filepath"
	"strings"
)

// Extractor converts one input document into the raw listing text the tree
// parser consumes.
type Extractor interface {
	Extract(r io.Reader) (string, error)
}

// ForPath returns the extractor for a file path based on its extension.
// Unknown extensions, and stdin, are treated as plain text.
func ForPath(path string) Extractor {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return &Markdown{}
	case ".html", ".htm":
		return &HTML{}
	case ".docx":
		return &DOCX{}
	case ".pdf":
		return &PDF{FallbackPdftotext: true}
	default:
		return &Plain{}
	}
}

// looksLikeTree reports whether the text contains at least one connector
// glyph line, i.e. whether it plausibly is tree output.
func looksLikeTree(s string) bool {
	return strings.Contains(s, "├──") || strings.Contains(s, "└──")
}
