package workbook

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/conspire-go/pkg/conspire/models"
)

// writeFixture saves a sales sheet offset to B2 and an empty sheet.
func writeFixture(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "B2", "Month")
	f.SetCellValue(sheet, "C2", "Sales")
	f.SetCellValue(sheet, "D2", "Rate")
	months := []string{"Jan", "Feb", "Mar"}
	sales := []int{100, 250, 175}
	rates := []float64{0.5, 1.25, 2}
	for i := range months {
		row := i + 3
		f.SetCellValue(sheet, cell(t, 2, row), months[i])
		f.SetCellValue(sheet, cell(t, 3, row), sales[i])
		if i != 1 {
			f.SetCellValue(sheet, cell(t, 4, row), rates[i])
		}
	}
	if _, err := f.NewSheet("Empty"); err != nil {
		t.Fatalf("Failed to add sheet: %v", err)
	}

	path := filepath.Join(t.TempDir(), "data.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func cell(t *testing.T, col, row int) string {
	t.Helper()
	name, err := excelize.CoordinatesToCellName(col, row)
	require.NoError(t, err)
	return name
}

func openFixture(t *testing.T) *Workbook {
	t.Helper()
	w, err := Open(writeFixture(t))
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })
	return w
}

func TestWorkbook_Sheets(t *testing.T) {
	w := openFixture(t)
	assert.Equal(t, []string{"Sheet1", "Empty"}, w.Sheets())
	assert.Equal(t, "data.xlsx", w.Name())
}

func TestWorkbook_DataRange(t *testing.T) {
	w := openFixture(t)

	got, err := w.DataRange("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, "B2:D5", got)

	got, err = w.DataRange("Empty")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = w.DataRange("Missing")
	assert.True(t, errors.Is(err, ErrSheetNotFound))
}

func TestWorkbook_Columns(t *testing.T) {
	w := openFixture(t)
	cols, err := w.Columns("Sheet1")
	require.NoError(t, err)
	require.Len(t, cols, 3)

	assert.True(t, cols["Month"].Equal(models.Categorical("Jan", "Feb", "Mar")))
	assert.True(t, cols["Sales"].Equal(models.Quantitative(100, 250, 175)))

	rate := cols["Rate"]
	require.True(t, rate.IsQuantitative())
	require.Equal(t, 3, rate.Len())
	assert.Equal(t, 0.5, rate.Floats()[0])
	assert.True(t, math.IsNaN(rate.Floats()[1]))
	assert.Equal(t, 2.0, rate.Floats()[2])
}

func TestWorkbook_Column(t *testing.T) {
	w := openFixture(t)

	tests := []struct {
		ref      string
		expected models.Series
	}{
		{"Sales", models.Quantitative(100, 250, 175)},
		{"C", models.Quantitative(100, 250, 175)},
		{"b", models.Categorical("Jan", "Feb", "Mar")},
	}
	for _, tt := range tests {
		got, err := w.Column("Sheet1", tt.ref)
		if err != nil {
			t.Errorf("Column(%q) error = %v", tt.ref, err)
			continue
		}
		if !got.Equal(tt.expected) {
			t.Errorf("Column(%q) = %v, expected %v", tt.ref, got.Values(), tt.expected.Values())
		}
	}

	for _, ref := range []string{"Profit", "A", "Z"} {
		if _, err := w.Column("Sheet1", ref); !errors.Is(err, ErrColumnNotFound) {
			t.Errorf("Column(%q) error = %v, expected ErrColumnNotFound", ref, err)
		}
	}
}

func TestWorkbook_LayerFromSheet(t *testing.T) {
	w := openFixture(t)

	t.Run("Should bind mapped columns", func(t *testing.T) {
		l, err := w.LayerFromSheet("Sheet1", Mapping{X: "Month", Y: "Sales", Name: "sales"})
		require.NoError(t, err)

		c, err := models.NewBar(l)
		require.NoError(t, err)
		assert.True(t, c.X().Equal(models.Categorical("Jan", "Feb", "Mar")))
		name, ok := c.Name()
		assert.True(t, ok)
		assert.Equal(t, "sales", name)
		_, colored := c.Color()
		assert.False(t, colored)
	})

	t.Run("Should fail on an unknown column", func(t *testing.T) {
		_, err := w.LayerFromSheet("Sheet1", Mapping{X: "Month", Y: "Profit"})
		assert.True(t, errors.Is(err, ErrColumnNotFound))
	})
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"100", int64(100)},
		{"-7", int64(-7)},
		{"200.5", 200.5},
		{"1e3", 1000.0},
		{"Jan", "Jan"},
	}

	for _, tt := range tests {
		if got := parseValue(tt.input); got != tt.expected {
			t.Errorf("parseValue(%q) = %v (%T), expected %v (%T)", tt.input, got, got, tt.expected, tt.expected)
		}
	}
}

func TestWorkbook_BlankColumnIsAbsent(t *testing.T) {
	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "X")
	f.SetCellValue("Sheet1", "B1", "Y")
	f.SetCellValue("Sheet1", "A2", 1)
	f.SetCellValue("Sheet1", "A3", 2)
	path := filepath.Join(t.TempDir(), "blank.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	w, err := Open(path)
	require.NoError(t, err)
	defer w.Close()

	y, err := w.Column("Sheet1", "Y")
	require.NoError(t, err)
	assert.True(t, y.IsEmpty())

	l, err := w.LayerFromSheet("Sheet1", Mapping{X: "X", Y: "Y"})
	require.NoError(t, err)
	_, present := l.GetY()
	assert.False(t, present)

	_, err = models.NewScatter(l)
	assert.True(t, errors.Is(err, models.ErrMissingDimension))
}

func TestCellSeries(t *testing.T) {
	tests := []struct {
		cells    []string
		expected models.Series
	}{
		{[]string{"", ""}, models.Series{}},
		{[]string{}, models.Series{}},
		{[]string{"a", ""}, models.Categorical("a", "")},
		{[]string{"1", "2.5"}, models.Quantitative(1, 2.5)},
	}

	for _, tt := range tests {
		if got := cellSeries(tt.cells); !got.Equal(tt.expected) || got.IsEmpty() != tt.expected.IsEmpty() {
			t.Errorf("cellSeries(%q) = %v, expected %v", tt.cells, got.Values(), tt.expected.Values())
		}
	}
}
