// Package xlsxout renders a projected grid into an xlsx workbook using
// excelize: one column per depth level with merged cells along shared
// ancestry, a full-path column, an empty notes column, and the summary row
// merged across the full width.
package xlsxout

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"tree2xlsx/internal/grid"
)

// Layout holds the presentation knobs that sit outside the merge logic.
// Zero values fall back to the defaults below.
type Layout struct {
	Sheet            string
	LevelColWidth    float64
	PathColWidth     float64
	NotesColWidth    float64
	SummaryRowHeight float64
}

const (
	defaultSheet            = "Tree"
	defaultLevelColWidth    = 20
	defaultPathColWidth     = 60
	defaultNotesColWidth    = 30
	defaultSummaryRowHeight = 20
)

func (l Layout) withDefaults() Layout {
	if l.Sheet == "" {
		l.Sheet = defaultSheet
	}
	if l.LevelColWidth <= 0 {
		l.LevelColWidth = defaultLevelColWidth
	}
	if l.PathColWidth <= 0 {
		l.PathColWidth = defaultPathColWidth
	}
	if l.NotesColWidth <= 0 {
		l.NotesColWidth = defaultNotesColWidth
	}
	if l.SummaryRowHeight <= 0 {
		l.SummaryRowHeight = defaultSummaryRowHeight
	}
	return l
}

// Write renders the grid into a workbook and saves it to path. Data rows
// start below the header; every non-empty cell is written and styled first,
// then merge runs are applied per column as an overlay, then summary rows,
// frozen header, and the autofilter range.
func Write(g grid.Grid, path string, layout Layout) error {
	layout = layout.withDefaults()

	f := excelize.NewFile()
	defer f.Close()

	sheet := layout.Sheet
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	st, err := newStyles(f)
	if err != nil {
		return fmt.Errorf("build styles: %w", err)
	}

	if err := writeHeader(f, sheet, g.MaxDepth, layout, st); err != nil {
		return err
	}

	data := g.DataRows()
	summaries := g.SummaryRows()
	totalCols := g.MaxDepth + 2

	for i, row := range data {
		rowNum := i + 2 // row 1 is the header
		last := lastLevel(row)
		for col, name := range row.Levels {
			if name == "" {
				continue
			}
			style := st.dir
			if row.IsLeaf && col == last {
				style = st.file
			}
			if err := writeCell(f, sheet, col+1, rowNum, name, style); err != nil {
				return err
			}
		}
		if err := writeCell(f, sheet, g.MaxDepth+1, rowNum, row.FullPath, st.path); err != nil {
			return err
		}
		if err := writeCell(f, sheet, g.MaxDepth+2, rowNum, "", st.notes); err != nil {
			return err
		}
	}

	// Merge overlay, one level column at a time. The run's value is already
	// in its top-left cell.
	for col := 0; col < g.MaxDepth; col++ {
		for _, run := range grid.Runs(data, col) {
			top, _ := excelize.CoordinatesToCellName(run.Col+1, run.First+2)
			bottom, _ := excelize.CoordinatesToCellName(run.Col+1, run.Last+2)
			if err := f.MergeCell(sheet, top, bottom); err != nil {
				return fmt.Errorf("merge %s:%s: %w", top, bottom, err)
			}
			if err := f.SetCellStyle(sheet, top, bottom, st.dir); err != nil {
				return fmt.Errorf("style merged %s:%s: %w", top, bottom, err)
			}
		}
	}

	rowNum := len(data) + 2
	for _, row := range summaries {
		if err := f.SetRowHeight(sheet, rowNum, layout.SummaryRowHeight); err != nil {
			return fmt.Errorf("set summary row height: %w", err)
		}
		left, _ := excelize.CoordinatesToCellName(1, rowNum)
		right, _ := excelize.CoordinatesToCellName(totalCols, rowNum)
		if err := f.MergeCell(sheet, left, right); err != nil {
			return fmt.Errorf("merge summary row: %w", err)
		}
		if err := f.SetCellValue(sheet, left, row.Levels[0]); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
		if err := f.SetCellStyle(sheet, left, right, st.summary); err != nil {
			return fmt.Errorf("style summary row: %w", err)
		}
		rowNum++
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header row: %w", err)
	}

	if len(data) > 0 {
		lastCol, _ := excelize.ColumnNumberToName(totalCols)
		ref := fmt.Sprintf("A1:%s%d", lastCol, len(data)+len(summaries)+1)
		if err := f.AutoFilter(sheet, ref, nil); err != nil {
			return fmt.Errorf("apply autofilter: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, maxDepth int, layout Layout, st styles) error {
	for col := 1; col <= maxDepth; col++ {
		if err := writeCell(f, sheet, col, 1, fmt.Sprintf("L%d", col), st.header); err != nil {
			return err
		}
		name, _ := excelize.ColumnNumberToName(col)
		if err := f.SetColWidth(sheet, name, name, layout.LevelColWidth); err != nil {
			return fmt.Errorf("set column width %s: %w", name, err)
		}
	}

	pathCol, _ := excelize.ColumnNumberToName(maxDepth + 1)
	notesCol, _ := excelize.ColumnNumberToName(maxDepth + 2)
	if err := writeCell(f, sheet, maxDepth+1, 1, "Full Path", st.header); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, pathCol, pathCol, layout.PathColWidth); err != nil {
		return fmt.Errorf("set column width %s: %w", pathCol, err)
	}
	if err := writeCell(f, sheet, maxDepth+2, 1, "Notes", st.header); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, notesCol, notesCol, layout.NotesColWidth); err != nil {
		return fmt.Errorf("set column width %s: %w", notesCol, err)
	}
	return nil
}

func writeCell(f *excelize.File, sheet string, col, row int, value string, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell (%d,%d): %w", col, row, err)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("write cell %s: %w", cell, err)
	}
	if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
		return fmt.Errorf("style cell %s: %w", cell, err)
	}
	return nil
}

// lastLevel returns the index of the row's deepest non-empty level slot,
// which holds the entry's own name.
func lastLevel(row grid.Row) int {
	last := 0
	for i, name := range row.Levels {
		if name != "" {
			last = i
		}
	}
	return last
}
