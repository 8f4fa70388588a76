package ingest

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/rshade/lcafocus/internal/lca"
)

func readXLSXFile(path string) (lca.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return lca.Table{}, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return sheetTable(f)
}

// ParseXLSX reads the first worksheet of a workbook. The first row is the
// header. Cells are read as their stored values, so number formats such as
// thousands separators, percentages or rounding do not alter the data.
func ParseXLSX(r io.Reader) (lca.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return lca.Table{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = f.Close() }()
	return sheetTable(f)
}

func sheetTable(f *excelize.File) (lca.Table, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return lca.Table{}, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return lca.Table{}, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return lca.Table{}, nil
	}
	return headerTable(rows[0], rows[1:]), nil
}
