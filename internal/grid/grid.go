// Package grid projects the flat item list onto a per-depth spreadsheet grid
// and computes which contiguous cell runs may be merged.
package grid

import "tree2xlsx/internal/treeparse"

// Row is one spreadsheet data row. Levels always has MaxDepth entries: the
// slot for each ancestor holds its name and deeper slots stay empty. Summary
// rows carry their phrase in Levels[0] and span the full sheet width when
// rendered.
type Row struct {
	Levels   []string
	FullPath string
	IsLeaf   bool
	Summary  bool
}

// Grid holds the projected rows in input order, summary rows last.
type Grid struct {
	MaxDepth int
	Rows     []Row
}

// Project builds the grid for an ordered item list. The ancestor stack is
// rebuilt here rather than reusing parser state, since the list may have
// been filtered and already carries the summary item.
func Project(items []treeparse.Item) Grid {
	maxDepth := 1
	for _, it := range items {
		if !it.Summary() && it.Depth > maxDepth {
			maxDepth = it.Depth
		}
	}

	g := Grid{MaxDepth: maxDepth}
	var stack []string
	for _, it := range items {
		levels := make([]string, maxDepth)

		if it.Summary() {
			levels[0] = it.Name
			g.Rows = append(g.Rows, Row{Levels: levels, FullPath: it.FullPath, Summary: true})
			continue
		}

		if it.Depth-1 < len(stack) {
			stack = stack[:it.Depth-1]
		}
		stack = append(stack, it.Name)
		for i, name := range stack {
			if i < maxDepth {
				levels[i] = name
			}
		}

		g.Rows = append(g.Rows, Row{Levels: levels, FullPath: it.FullPath, IsLeaf: it.IsLeaf})
	}
	return g
}

// DataRows returns the non-summary rows in input order.
func (g Grid) DataRows() []Row {
	rows := make([]Row, 0, len(g.Rows))
	for _, r := range g.Rows {
		if !r.Summary {
			rows = append(rows, r)
		}
	}
	return rows
}

// SummaryRows returns the summary rows in input order.
func (g Grid) SummaryRows() []Row {
	var rows []Row
	for _, r := range g.Rows {
		if r.Summary {
			rows = append(rows, r)
		}
	}
	return rows
}
