// Package treeparse reconstructs a file/directory hierarchy from the
// glyph-drawn text that the tree command prints. Each accepted line becomes
// one Item carrying its 1-based depth and the slash-joined path from the
// root; a synthetic summary item with the directory/file totals is appended
// last.
package treeparse

import (
	"fmt"
	"strings"
	"unicode"
)

// Item is one entry reconstructed from a tree listing. Depth is 1 for
// top-level entries. The summary item appended by Parse has Depth 0.
type Item struct {
	Name     string
	Depth    int
	IsLeaf   bool
	FullPath string
}

// Summary reports whether the item is the trailing synthetic summary row.
func (it Item) Summary() bool { return it.Depth == 0 }

// DefaultKnownFiles lists well-known extensionless names classified as files
// rather than directories.
var DefaultKnownFiles = []string{
	"Cargo.lock",
	"Dockerfile",
	"Makefile",
	"LICENSE",
	"README",
	"CHANGELOG",
}

// Options controls parsing.
type Options struct {
	// IncludeHidden keeps dot-prefixed entries and their subtrees. When
	// false (the default) a hidden entry suppresses everything below it.
	IncludeHidden bool

	// KnownFiles overrides DefaultKnownFiles when non-nil.
	KnownFiles []string
}

// Parse turns raw tree output into an ordered item list. It never fails:
// lines that do not match the indentation+connector grammar are skipped.
// The returned slice always ends with the summary item.
func Parse(text string, opts Options) []Item {
	known := knownFileSet(opts.KnownFiles)

	var (
		items        []Item
		pathStack    []string
		hiddenDepths []int
		statsLine    string
	)

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		// The statistics line tree prints last ("N directories, M files").
		// Keep the first one seen; it may appear anywhere in piped input.
		if strings.Contains(line, "directories") && strings.Contains(line, "files") {
			if statsLine == "" {
				statsLine = strings.TrimSpace(line)
			}
			continue
		}

		depth, name, ok := parseLine(line)
		if !ok {
			continue
		}

		// Hidden subtrees recorded at this depth or deeper are closed now.
		n := 0
		for _, d := range hiddenDepths {
			if d < depth {
				hiddenDepths[n] = d
				n++
			}
		}
		hiddenDepths = hiddenDepths[:n]

		if !opts.IncludeHidden {
			hidden := strings.HasPrefix(name, ".")
			if hidden || len(hiddenDepths) > 0 {
				if hidden {
					// Remember the depth so descendants are skipped too.
					hiddenDepths = append(hiddenDepths, depth)
				}
				continue
			}
		}

		if depth-1 < len(pathStack) {
			pathStack = pathStack[:depth-1]
		}
		fullPath := name
		if len(pathStack) > 0 {
			fullPath = strings.Join(pathStack, "/") + "/" + name
		}
		pathStack = append(pathStack, name)

		items = append(items, Item{
			Name:     name,
			Depth:    depth,
			IsLeaf:   isFile(name, known),
			FullPath: fullPath,
		})
	}

	return append(items, summaryItem(items, statsLine, opts.IncludeHidden))
}

// summaryItem builds the trailing summary. Counts are recomputed from the
// accepted items so the totals always match what is rendered; the phrase
// captured from the input is preferred only when nothing was filtered out.
func summaryItem(items []Item, statsLine string, includeHidden bool) Item {
	dirs, files := 0, 0
	for _, it := range items {
		if it.IsLeaf {
			files++
		} else {
			dirs++
		}
	}

	stats := fmt.Sprintf("%d directories, %d files", dirs, files)
	if includeHidden && statsLine != "" {
		stats = statsLine
	}

	name := "Summary: " + stats
	return Item{Name: name, Depth: 0, FullPath: name}
}

// parseLine returns the 1-based depth and display name of one entry line, or
// ok=false for lines that are not entries: the root marker, or anything not
// matching the indentation+connector grammar.
func parseLine(line string) (depth int, name string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "." {
		return 0, "", false
	}
	// A bare name ending in a path separator is the root directory line.
	if strings.HasSuffix(trimmed, "/") &&
		!strings.ContainsRune(trimmed, '├') && !strings.ContainsRune(trimmed, '└') {
		return 0, "", false
	}

	runes := []rune(StripANSI(line))
	pos := 0

	// Each complete 4-character unit is one nesting level: a continuation
	// bar followed by three whitespace characters (tree emits NBSP in some
	// locales), or four plain spaces under a last child.
	for pos+3 < len(runes) {
		bar := runes[pos] == '│' &&
			unicode.IsSpace(runes[pos+1]) &&
			unicode.IsSpace(runes[pos+2]) &&
			unicode.IsSpace(runes[pos+3])
		blank := runes[pos] == ' ' && runes[pos+1] == ' ' &&
			runes[pos+2] == ' ' && runes[pos+3] == ' '
		if !bar && !blank {
			break
		}
		depth++
		pos += 4
	}

	// The connector glyph is mandatory: ├ or └ followed by two dashes.
	if pos+2 >= len(runes) ||
		(runes[pos] != '├' && runes[pos] != '└') ||
		runes[pos+1] != '─' || runes[pos+2] != '─' {
		return 0, "", false
	}
	pos += 3
	if pos < len(runes) && runes[pos] == ' ' {
		pos++
	}

	name = strings.TrimSpace(string(runes[pos:]))
	if name == "" {
		return 0, "", false
	}
	// Top-level entries carry zero indentation units.
	return depth + 1, name, true
}

// isFile classifies an entry name. A dot that is neither leading nor final
// marks an extension; names on the known-files set are files as well.
func isFile(name string, known map[string]bool) bool {
	if !strings.HasPrefix(name, ".") {
		if i := strings.LastIndexByte(name, '.'); i > 0 && i < len(name)-1 {
			return true
		}
	}
	return known[name]
}

func knownFileSet(names []string) map[string]bool {
	if names == nil {
		names = DefaultKnownFiles
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
