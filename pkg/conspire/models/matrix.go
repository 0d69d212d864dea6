package models

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/tiendc/go-deepcopy"
)

// MatrixKind tags the representation held by a Matrix.
// Only quantitative matrices exist today.
type MatrixKind int

const (
	// MatrixQuantitative marks a matrix of float64 rows.
	MatrixQuantitative MatrixKind = iota
)

// String returns the lower-case kind name.
func (k MatrixKind) String() string {
	if k == MatrixQuantitative {
		return "quantitative"
	}
	return "unknown"
}

// Matrix is a two-dimensional sequence of rows. Rows may differ in length.
type Matrix struct {
	kind MatrixKind
	rows [][]float64
}

// QuantitativeMatrix returns a matrix holding a deep copy of rows.
func QuantitativeMatrix(rows [][]float64) Matrix {
	return Matrix{kind: MatrixQuantitative, rows: cloneRows(rows)}
}

// Matrix implements MatrixSource.
func (m Matrix) Matrix() Matrix {
	return m
}

// Kind returns the matrix tag.
func (m Matrix) Kind() MatrixKind {
	return m.kind
}

// Len returns the number of rows.
func (m Matrix) Len() int {
	return len(m.rows)
}

// IsEmpty reports whether the matrix has no values in any row.
func (m Matrix) IsEmpty() bool {
	for _, r := range m.rows {
		if len(r) > 0 {
			return false
		}
	}
	return true
}

// Rows returns a deep copy of the matrix rows.
func (m Matrix) Rows() [][]float64 {
	return cloneRows(m.rows)
}

// Row returns a copy of row i.
func (m Matrix) Row(i int) []float64 {
	return slices.Clone(m.rows[i])
}

// Equal reports whether both matrices hold the same rows.
func (m Matrix) Equal(o Matrix) bool {
	if m.kind != o.kind || len(m.rows) != len(o.rows) {
		return false
	}
	for i := range m.rows {
		if !slices.Equal(m.rows[i], o.rows[i]) {
			return false
		}
	}
	return true
}

type matrixJSON struct {
	Kind string      `json:"kind"`
	Rows [][]float64 `json:"rows"`
}

// MarshalJSON encodes the matrix as {"kind": ..., "rows": [[...]]}.
func (m Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(matrixJSON{Kind: m.kind.String(), Rows: m.rows})
}

func cloneRows(rows [][]float64) [][]float64 {
	if rows == nil {
		return nil
	}
	var out [][]float64
	if err := deepcopy.Copy(&out, rows); err != nil {
		// [][]float64 holds no types deepcopy rejects.
		panic(fmt.Sprintf("models: copy matrix rows: %v", err))
	}
	return out
}
