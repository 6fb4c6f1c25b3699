package matrixio

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// XLSXOptions configures the XLSX reader.
type XLSXOptions struct {
	SheetIndex int    // default 0
	SheetName  string // if set, overrides SheetIndex
	SkipRows   int    // number of header rows to skip
	SkipCols   int    // number of label columns to skip
}

// ReadXLSX reads a matrix from one sheet of an XLSX workbook. Trailing
// empty cells and fully empty rows are dropped; spreadsheets pad both.
func ReadXLSX(path string, opts XLSXOptions) (*Input, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "matrixio: open xlsx %s", path)
	}

	sheet, err := getSheet(f, opts)
	if err != nil {
		return nil, err
	}

	var cells [][]string
	for i, row := range sheet.Rows {
		if i < opts.SkipRows || row == nil {
			continue
		}
		record := rowToStrings(row)
		if opts.SkipCols > 0 {
			if len(record) <= opts.SkipCols {
				continue
			}
			record = record[opts.SkipCols:]
		}
		if len(record) == 0 {
			continue
		}
		cells = append(cells, record)
	}

	m, err := build(cells)
	if err != nil {
		return nil, eris.Wrapf(err, "matrixio: xlsx sheet %q", sheet.Name)
	}
	return &Input{Matrix: m}, nil
}

func getSheet(f *xlsx.File, opts XLSXOptions) (*xlsx.Sheet, error) {
	if opts.SheetName != "" {
		sheet, ok := f.Sheet[opts.SheetName]
		if !ok {
			return nil, eris.Errorf("matrixio: sheet %q not found", opts.SheetName)
		}
		return sheet, nil
	}

	if opts.SheetIndex < 0 || opts.SheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("matrixio: sheet index %d out of range (file has %d sheets)", opts.SheetIndex, len(f.Sheets))
	}

	return f.Sheets[opts.SheetIndex], nil
}

// rowToStrings returns the row's cell text without trailing empty cells.
func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	last := -1
	for j, cell := range row.Cells {
		cells[j] = strings.TrimSpace(cell.String())
		if cells[j] != "" {
			last = j
		}
	}
	return cells[:last+1]
}
