package models

import (
	"errors"
	"fmt"
)

// ErrUnsupportedInput indicates a dynamically typed value has no canonical form.
var ErrUnsupportedInput = errors.New("unsupported input")

// SeriesSource is implemented by every container that normalizes into a Series.
type SeriesSource interface {
	Series() Series
}

// MatrixSource is implemented by every container that normalizes into a Matrix.
type MatrixSource interface {
	Matrix() Matrix
}

// Number lists the native numeric types accepted as quantitative data.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Numbers is a numeric container; every element is widened to float64.
type Numbers[T Number] []T

// Series returns a quantitative series.
func (n Numbers[T]) Series() Series {
	out := make([]float64, len(n))
	for i, v := range n {
		out[i] = float64(v)
	}
	return Series{kind: KindQuantitative, nums: out}
}

// Texts is a textual container; every element becomes an owned string.
type Texts[T ~string] []T

// Series returns a categorical series.
func (t Texts[T]) Series() Series {
	out := make([]string, len(t))
	for i, v := range t {
		out[i] = string(v)
	}
	return Series{kind: KindCategorical, cats: out}
}

// Text is a single label. It normalizes to a one-element categorical series,
// which is how a whole layer is tagged with one category.
type Text string

// Series returns a one-element categorical series.
func (t Text) Series() Series {
	return Series{kind: KindCategorical, cats: []string{string(t)}}
}

// Grid is a numeric row container; every cell is widened to float64.
type Grid[T Number] [][]T

// Matrix returns a quantitative matrix.
func (g Grid[T]) Matrix() Matrix {
	rows := make([][]float64, len(g))
	for i, r := range g {
		rows[i] = Numbers[T](r).Series().nums
	}
	return Matrix{kind: MatrixQuantitative, rows: rows}
}

// Shorthands for the common containers.
type (
	Floats  = Numbers[float64]
	Ints    = Numbers[int]
	Strings = Texts[string]
)

// Normalize converts a dynamically typed value into a Series.
// It accepts every statically supported container, numeric and string
// scalars (one-element series), and []any lists whose elements are all
// numbers or all strings, as produced by YAML and JSON decoders.
func Normalize(v any) (Series, error) {
	switch v := v.(type) {
	case nil:
		return Series{}, nil
	case SeriesSource:
		return v.Series(), nil
	case string:
		return Text(v).Series(), nil
	case []string:
		return Categorical(v...), nil
	case []float64:
		return Quantitative(v...), nil
	case []float32:
		return Numbers[float32](v).Series(), nil
	case []int:
		return Numbers[int](v).Series(), nil
	case []int8:
		return Numbers[int8](v).Series(), nil
	case []int16:
		return Numbers[int16](v).Series(), nil
	case []int32:
		return Numbers[int32](v).Series(), nil
	case []int64:
		return Numbers[int64](v).Series(), nil
	case []uint:
		return Numbers[uint](v).Series(), nil
	case []uint8:
		return Numbers[uint8](v).Series(), nil
	case []uint16:
		return Numbers[uint16](v).Series(), nil
	case []uint32:
		return Numbers[uint32](v).Series(), nil
	case []uint64:
		return Numbers[uint64](v).Series(), nil
	case []any:
		return normalizeList(v)
	}
	if f, ok := toFloat(v); ok {
		return Quantitative(f), nil
	}
	return Series{}, fmt.Errorf("%w: %T", ErrUnsupportedInput, v)
}

// NormalizeMatrix converts a dynamically typed value into a Matrix.
func NormalizeMatrix(v any) (Matrix, error) {
	switch v := v.(type) {
	case nil:
		return Matrix{}, nil
	case MatrixSource:
		return v.Matrix(), nil
	case [][]float64:
		return QuantitativeMatrix(v), nil
	case [][]float32:
		return Grid[float32](v).Matrix(), nil
	case [][]int:
		return Grid[int](v).Matrix(), nil
	case [][]int32:
		return Grid[int32](v).Matrix(), nil
	case [][]int64:
		return Grid[int64](v).Matrix(), nil
	case []any:
		rows := make([][]float64, 0, len(v))
		for i, raw := range v {
			row, err := Normalize(raw)
			if err != nil {
				return Matrix{}, fmt.Errorf("row %d: %w", i, err)
			}
			if !row.IsEmpty() && !row.IsQuantitative() {
				return Matrix{}, fmt.Errorf("%w: row %d is categorical", ErrUnsupportedInput, i)
			}
			rows = append(rows, row.nums)
		}
		return Matrix{kind: MatrixQuantitative, rows: rows}, nil
	}
	return Matrix{}, fmt.Errorf("%w: %T", ErrUnsupportedInput, v)
}

// normalizeList converts a decoder list; mixed lists are rejected.
func normalizeList(list []any) (Series, error) {
	if len(list) == 0 {
		return Series{}, nil
	}
	if _, ok := list[0].(string); ok {
		out := make([]string, len(list))
		for i, raw := range list {
			s, ok := raw.(string)
			if !ok {
				return Series{}, fmt.Errorf("%w: mixed list, element %d is %T", ErrUnsupportedInput, i, raw)
			}
			out[i] = s
		}
		return Series{kind: KindCategorical, cats: out}, nil
	}
	out := make([]float64, len(list))
	for i, raw := range list {
		f, ok := toFloat(raw)
		if !ok {
			return Series{}, fmt.Errorf("%w: mixed list, element %d is %T", ErrUnsupportedInput, i, raw)
		}
		out[i] = f
	}
	return Series{kind: KindQuantitative, nums: out}, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
