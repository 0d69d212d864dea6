// Package workbook reads chart data out of xlsx sheets.
package workbook

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the workbook has no sheet with the given name.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrColumnNotFound indicates a column reference matched neither a header
// nor a column letter inside the data region.
var ErrColumnNotFound = errors.New("column not found")

// Workbook is an open xlsx file. It is not safe for concurrent use.
type Workbook struct {
	f    *excelize.File
	path string
	name string
}

// Open opens the workbook at path.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return &Workbook{f: f, path: path, name: filepath.Base(path)}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// Name returns the workbook's file name.
func (w *Workbook) Name() string {
	return w.name
}

// Sheets returns sheet names in workbook order.
func (w *Workbook) Sheets() []string {
	return w.f.GetSheetList()
}

func (w *Workbook) rows(sheet string) ([][]string, error) {
	if idx, err := w.f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q in %s", ErrSheetNotFound, sheet, w.name)
	}
	rows, err := w.f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}
