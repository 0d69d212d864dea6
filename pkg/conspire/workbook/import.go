package workbook

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/conspire-go/pkg/conspire/models"
)

// ErrUnsupportedPlot indicates an embedded chart type with no chart kind.
var ErrUnsupportedPlot = errors.New("unsupported embedded chart type")

// ErrInvalidRef indicates a series reference that is not a cell range.
var ErrInvalidRef = errors.New("invalid cell reference")

// Kind maps the embedded plot type to a chart kind.
func (c EmbeddedChart) Kind() (models.ChartKind, error) {
	switch c.Plot {
	case "lineChart", "line3DChart", "areaChart", "area3DChart", "radarChart", "stockChart":
		return models.KindLine, nil
	case "barChart", "bar3DChart":
		if c.Horizontal {
			return models.KindHorizontalBar, nil
		}
		return models.KindBar, nil
	case "pieChart", "pie3DChart", "doughnutChart", "ofPieChart":
		return models.KindPie, nil
	case "scatterChart", "bubbleChart":
		return models.KindScatter, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedPlot, c.Plot)
}

// ImportCharts converts the charts drawn on sheet into one chart per series.
// Pie series keep their values; their category labels are dropped. Chart
// types without a matching kind are skipped.
func (w *Workbook) ImportCharts(sheet string) ([]models.Chart, error) {
	embedded, err := w.EmbeddedCharts(sheet)
	if err != nil {
		return nil, err
	}
	var out []models.Chart
	for _, ec := range embedded {
		kind, err := ec.Kind()
		if err != nil {
			continue
		}
		for i, s := range ec.Series {
			c, err := w.importSeries(kind, s)
			if err != nil {
				return nil, fmt.Errorf("chart %q series %d: %w", ec.Name, i, err)
			}
			out = append(out, c)
		}
	}
	return out, nil
}

func (w *Workbook) importSeries(kind models.ChartKind, s EmbeddedSeries) (models.Chart, error) {
	l := models.NewLayer()

	y, err := w.resolveRef(s.YRef)
	if err != nil {
		return nil, err
	}
	if kind == models.KindPie {
		l = l.X(y)
	} else {
		x, err := w.resolveRef(s.XRef)
		if err != nil {
			return nil, err
		}
		if x.IsEmpty() {
			x = positions(y.Len())
		}
		l = l.X(x).Y(y)
	}

	if s.SizeRef != "" {
		size, err := w.resolveRef(s.SizeRef)
		if err != nil {
			return nil, err
		}
		l = l.Size(size)
	}

	name := s.Name
	if name == "" && s.NameRef != "" {
		if ns, err := w.resolveRef(s.NameRef); err == nil && ns.Len() > 0 {
			name = fmt.Sprint(ns.At(0))
		}
	}
	return models.NewChart(kind, l.Name(name))
}

// positions returns 1..n, the implicit x axis of a series without categories.
func positions(n int) models.Series {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i + 1)
	}
	return models.Quantitative(xs...)
}

// resolveRef reads a reference such as Sheet1!$A$2:$A$5 as a series.
// An empty reference yields an empty series.
func (w *Workbook) resolveRef(ref string) (models.Series, error) {
	if ref == "" {
		return models.Series{}, nil
	}
	sheet, cells, ok := strings.Cut(ref, "!")
	if !ok {
		return models.Series{}, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	sheet = strings.Trim(sheet, "'")
	cells = strings.ReplaceAll(cells, "$", "")
	from, to, found := strings.Cut(cells, ":")
	if !found {
		to = from
	}

	c1, r1, err := excelize.CellNameToCoordinates(from)
	if err != nil {
		return models.Series{}, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	c2, r2, err := excelize.CellNameToCoordinates(to)
	if err != nil {
		return models.Series{}, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}

	if idx, err := w.f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return models.Series{}, fmt.Errorf("%w: %q in %s", ErrSheetNotFound, sheet, w.name)
	}
	var values []string
	for col := c1; col <= c2; col++ {
		for row := r1; row <= r2; row++ {
			name, _ := excelize.CoordinatesToCellName(col, row)
			v, err := w.f.GetCellValue(sheet, name)
			if err != nil {
				return models.Series{}, fmt.Errorf("failed to read %s!%s: %w", sheet, name, err)
			}
			values = append(values, v)
		}
	}
	return cellSeries(values), nil
}
