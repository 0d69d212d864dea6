package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// region is the bounding box of non-empty cells, 0-based and inclusive.
type region struct {
	minRow, maxRow int
	minCol, maxCol int
}

func (r region) empty() bool {
	return r.minRow < 0
}

// String returns the region in A1 notation.
func (r region) String() string {
	start, _ := excelize.CoordinatesToCellName(r.minCol+1, r.minRow+1)
	end, _ := excelize.CoordinatesToCellName(r.maxCol+1, r.maxRow+1)
	return fmt.Sprintf("%s:%s", start, end)
}

func findRegion(rows [][]string) region {
	r := region{minRow: -1, maxRow: -1, minCol: -1, maxCol: -1}
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if r.minRow < 0 || rowIdx < r.minRow {
				r.minRow = rowIdx
			}
			if rowIdx > r.maxRow {
				r.maxRow = rowIdx
			}
			if r.minCol < 0 || colIdx < r.minCol {
				r.minCol = colIdx
			}
			if colIdx > r.maxCol {
				r.maxCol = colIdx
			}
		}
	}
	return r
}

func cellAt(rows [][]string, row, col int) string {
	if row >= len(rows) || col >= len(rows[row]) {
		return ""
	}
	return rows[row][col]
}

// DataRange returns the sheet's data region, for example "A1:D10".
// An empty sheet yields an empty string.
func (w *Workbook) DataRange(sheet string) (string, error) {
	rows, err := w.rows(sheet)
	if err != nil {
		return "", err
	}
	r := findRegion(rows)
	if r.empty() {
		return "", nil
	}
	return r.String(), nil
}
