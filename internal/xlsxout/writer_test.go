package xlsxout

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"tree2xlsx/internal/grid"
	"tree2xlsx/internal/treeparse"
)

func writeAndReopen(t *testing.T, input string) (*excelize.File, grid.Grid) {
	t.Helper()

	items := treeparse.Parse(input, treeparse.Options{})
	g := grid.Project(items)

	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := Write(g, path, Layout{}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f, g
}

func cellValue(t *testing.T, f *excelize.File, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(defaultSheet, cell)
	if err != nil {
		t.Fatalf("GetCellValue(%s): %v", cell, err)
	}
	return v
}

func TestWrite_HeaderAndCells(t *testing.T) {
	f, _ := writeAndReopen(t, "├── src\n│   ├── main.rs\n│   └── lib.rs\n")

	want := map[string]string{
		"A1": "L1",
		"B1": "L2",
		"C1": "Full Path",
		"D1": "Notes",
		"A2": "src",
		"B3": "main.rs",
		"B4": "lib.rs",
		"C3": "src/main.rs",
		"C4": "src/lib.rs",
	}
	for cell, w := range want {
		if got := cellValue(t, f, cell); got != w {
			t.Errorf("cell %s = %q, want %q", cell, got, w)
		}
	}
}

func TestWrite_MergesAncestorColumn(t *testing.T) {
	f, _ := writeAndReopen(t, "├── src\n│   ├── main.rs\n│   └── lib.rs\n")

	merges, err := f.GetMergeCells(defaultSheet)
	if err != nil {
		t.Fatalf("GetMergeCells: %v", err)
	}

	found := false
	for _, m := range merges {
		if m.GetStartAxis() == "A2" && m.GetEndAxis() == "A4" {
			found = true
			if m.GetCellValue() != "src" {
				t.Errorf("merged range A2:A4 value = %q, want src", m.GetCellValue())
			}
		}
	}
	if !found {
		t.Errorf("expected merged range A2:A4, got %+v", mergeRefs(merges))
	}
}

func TestWrite_SiblingReadmesStayApart(t *testing.T) {
	input := "├── a\n│   └── README\n├── b\n│   └── README\n"
	f, _ := writeAndReopen(t, input)

	merges, err := f.GetMergeCells(defaultSheet)
	if err != nil {
		t.Fatalf("GetMergeCells: %v", err)
	}
	for _, m := range merges {
		if m.GetCellValue() == "README" {
			t.Errorf("READMEs under different parents merged: %s:%s", m.GetStartAxis(), m.GetEndAxis())
		}
	}
}

func TestWrite_SummaryRowMergedFullWidth(t *testing.T) {
	f, g := writeAndReopen(t, "├── src\n│   └── main.rs\n")

	// Data occupies rows 2..N+1; the summary row follows.
	sumRow := len(g.DataRows()) + 2
	left, _ := excelize.CoordinatesToCellName(1, sumRow)
	right, _ := excelize.CoordinatesToCellName(g.MaxDepth+2, sumRow)

	merges, err := f.GetMergeCells(defaultSheet)
	if err != nil {
		t.Fatalf("GetMergeCells: %v", err)
	}
	found := false
	for _, m := range merges {
		if m.GetStartAxis() == left && m.GetEndAxis() == right {
			found = true
		}
	}
	if !found {
		t.Errorf("summary row not merged %s:%s, got %+v", left, right, mergeRefs(merges))
	}

	if got := cellValue(t, f, left); got != "Summary: 1 directories, 1 files" {
		t.Errorf("summary cell = %q", got)
	}
}

func TestWrite_SummaryOnlyWorkbook(t *testing.T) {
	f, _ := writeAndReopen(t, "")

	if got := cellValue(t, f, "A1"); got != "L1" {
		t.Errorf("header missing for empty input, A1 = %q", got)
	}
	if got := cellValue(t, f, "A2"); got != "Summary: 0 directories, 0 files" {
		t.Errorf("summary row = %q", got)
	}
}

func mergeRefs(merges []excelize.MergeCell) []string {
	refs := make([]string, 0, len(merges))
	for _, m := range merges {
		refs = append(refs, m.GetStartAxis()+":"+m.GetEndAxis())
	}
	return refs
}
