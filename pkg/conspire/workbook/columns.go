package workbook

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/conspire-go/pkg/conspire/models"
)

// Mapping binds sheet columns to layer channels. Each field is a header
// name or a column letter; empty fields stay unbound.
type Mapping struct {
	X     string
	Y     string
	Color string
	Size  string
	Name  string
}

// Columns reads every column of the data region keyed by its header.
// Columns without a header are keyed by their letter.
func (w *Workbook) Columns(sheet string) (map[string]models.Series, error) {
	rows, err := w.rows(sheet)
	if err != nil {
		return nil, err
	}
	r := findRegion(rows)
	out := make(map[string]models.Series)
	if r.empty() {
		return out, nil
	}
	for col := r.minCol; col <= r.maxCol; col++ {
		key := cellAt(rows, r.minRow, col)
		if key == "" {
			key, _ = excelize.ColumnNumberToName(col + 1)
		}
		out[key] = readColumn(rows, r, col)
	}
	return out, nil
}

// Column reads one column below the header row. ref is tried as a header
// name first and as a column letter second.
func (w *Workbook) Column(sheet, ref string) (models.Series, error) {
	rows, err := w.rows(sheet)
	if err != nil {
		return models.Series{}, err
	}
	r := findRegion(rows)
	if r.empty() {
		return models.Series{}, fmt.Errorf("%w: %q in empty sheet %q", ErrColumnNotFound, ref, sheet)
	}
	col, ok := resolveColumn(rows, r, ref)
	if !ok {
		return models.Series{}, fmt.Errorf("%w: %q in sheet %q", ErrColumnNotFound, ref, sheet)
	}
	return readColumn(rows, r, col), nil
}

// LayerFromSheet builds a layer from the mapped columns.
func (w *Workbook) LayerFromSheet(sheet string, m Mapping) (models.Layer, error) {
	l := models.NewLayer()
	bind := []struct {
		ref string
		set func(models.Layer, models.SeriesSource) models.Layer
	}{
		{m.X, models.Layer.X},
		{m.Y, models.Layer.Y},
		{m.Color, models.Layer.Color},
		{m.Size, models.Layer.Size},
	}
	for _, b := range bind {
		if b.ref == "" {
			continue
		}
		s, err := w.Column(sheet, b.ref)
		if err != nil {
			return models.Layer{}, err
		}
		l = b.set(l, s)
	}
	if m.Name != "" {
		l = l.Name(m.Name)
	}
	return l, nil
}

func resolveColumn(rows [][]string, r region, ref string) (int, bool) {
	for col := r.minCol; col <= r.maxCol; col++ {
		if cellAt(rows, r.minRow, col) == ref {
			return col, true
		}
	}
	num, err := excelize.ColumnNameToNumber(strings.ToUpper(ref))
	if err != nil {
		return 0, false
	}
	col := num - 1
	if col < r.minCol || col > r.maxCol {
		return 0, false
	}
	return col, true
}

// readColumn normalizes the cells under the header.
func readColumn(rows [][]string, r region, col int) models.Series {
	cells := make([]string, 0, r.maxRow-r.minRow)
	for row := r.minRow + 1; row <= r.maxRow; row++ {
		cells = append(cells, cellAt(rows, row, col))
	}
	return cellSeries(cells)
}

// cellSeries is quantitative when every non-empty cell parses as a number,
// with NaN for blanks, and categorical otherwise. All-blank cells yield an
// empty series so the channel reads as absent.
func cellSeries(cells []string) models.Series {
	nums := make([]float64, len(cells))
	numeric := false
	for i, cell := range cells {
		if cell == "" {
			nums[i] = math.NaN()
			continue
		}
		switch v := parseValue(cell).(type) {
		case int64:
			nums[i] = float64(v)
		case float64:
			nums[i] = v
		default:
			return models.Categorical(cells...)
		}
		numeric = true
	}
	if !numeric {
		return models.Series{}
	}
	return models.Quantitative(nums...)
}

// parseValue returns int64 for integers, float64 for decimals, or the
// original string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
