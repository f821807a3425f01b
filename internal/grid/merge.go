package grid

// Run describes one contiguous range of at least two rows that render as a
// single merged cell in one level column. First and Last are inclusive
// indices into the row slice passed to Runs.
type Run struct {
	Col   int
	First int
	Last  int
	Value string
}

// Runs computes the merge runs for one level column. A row joins the run
// started at row First only if it matches the value at col AND every
// shallower column: same-named entries under different parents stay apart.
// Empty values are never merged; they mean the row has no entry at this
// depth. Summary rows must not be passed in.
func Runs(rows []Row, col int) []Run {
	var runs []Run
	i := 0
	for i < len(rows) {
		value := rows[i].Levels[col]
		if value == "" {
			i++
			continue
		}

		j := i + 1
		for j < len(rows) && rows[j].Levels[col] == value && sameAncestry(rows[i], rows[j], col) {
			j++
		}

		if j-i > 1 {
			runs = append(runs, Run{Col: col, First: i, Last: j - 1, Value: value})
		}
		i = j
	}
	return runs
}

func sameAncestry(a, b Row, col int) bool {
	for k := 0; k < col; k++ {
		if a.Levels[k] != b.Levels[k] {
			return false
		}
	}
	return true
}
