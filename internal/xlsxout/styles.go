package xlsxout

import "github.com/xuri/excelize/v2"

type styles struct {
	header  int
	dir     int
	file    int
	path    int
	notes   int
	summary int
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error

	st.header, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:   fill("4F81BD"),
		Border: thinBorder(),
	})
	if err != nil {
		return st, err
	}

	st.dir, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      fill("E8F4FD"),
		Border:    thinBorder(),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return st, err
	}

	st.file, err = f.NewStyle(&excelize.Style{
		Fill:   fill("F0F8E8"),
		Border: thinBorder(),
	})
	if err != nil {
		return st, err
	}

	st.path, err = f.NewStyle(&excelize.Style{
		Fill:   fill("FFFEF7"),
		Border: thinBorder(),
	})
	if err != nil {
		return st, err
	}

	st.notes, err = f.NewStyle(&excelize.Style{
		Fill:   fill("F5F5F5"),
		Border: thinBorder(),
	})
	if err != nil {
		return st, err
	}

	st.summary, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Color: "8B0000"},
		Fill:   fill("FFE4E1"),
		Border: thinBorder(),
	})
	return st, err
}

func fill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

func thinBorder() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	borders := make([]excelize.Border, 0, len(sides))
	for _, s := range sides {
		borders = append(borders, excelize.Border{Type: s, Color: "000000", Style: 1})
	}
	return borders
}
