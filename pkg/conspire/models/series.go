// Package models defines the canonical data model for conspire charts:
// normalized series and matrices, visual channels, layers and chart variants.
package models

import (
	"encoding/json"
	"slices"
)

// SeriesKind tags the representation held by a Series.
type SeriesKind int

const (
	// KindQuantitative marks a series of float64 values.
	KindQuantitative SeriesKind = iota
	// KindCategorical marks a series of string values.
	KindCategorical
)

// String returns the lower-case kind name.
func (k SeriesKind) String() string {
	switch k {
	case KindQuantitative:
		return "quantitative"
	case KindCategorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// Series is a one-dimensional, homogeneous sequence of values.
// It is either quantitative (float64) or categorical (string), never both.
// The zero value is an empty quantitative series.
type Series struct {
	kind SeriesKind
	nums []float64
	cats []string
}

// Quantitative returns a quantitative series holding a copy of values.
func Quantitative(values ...float64) Series {
	return Series{kind: KindQuantitative, nums: slices.Clone(values)}
}

// Categorical returns a categorical series holding a copy of values.
func Categorical(values ...string) Series {
	return Series{kind: KindCategorical, cats: slices.Clone(values)}
}

// Series implements SeriesSource.
func (s Series) Series() Series {
	return s
}

// Kind returns the series tag.
func (s Series) Kind() SeriesKind {
	return s.kind
}

// IsQuantitative reports whether the series holds numbers.
func (s Series) IsQuantitative() bool {
	return s.kind == KindQuantitative
}

// Len returns the number of values.
func (s Series) Len() int {
	if s.kind == KindCategorical {
		return len(s.cats)
	}
	return len(s.nums)
}

// IsEmpty reports whether the series has no values.
// Consumers treat an empty series as an absent channel.
func (s Series) IsEmpty() bool {
	return s.Len() == 0
}

// Floats returns a copy of the quantitative values, or nil for a categorical series.
func (s Series) Floats() []float64 {
	if s.kind != KindQuantitative {
		return nil
	}
	return slices.Clone(s.nums)
}

// Strings returns a copy of the categorical values, or nil for a quantitative series.
func (s Series) Strings() []string {
	if s.kind != KindCategorical {
		return nil
	}
	return slices.Clone(s.cats)
}

// Values returns the values boxed in order.
func (s Series) Values() []any {
	out := make([]any, 0, s.Len())
	if s.kind == KindCategorical {
		for _, v := range s.cats {
			out = append(out, v)
		}
		return out
	}
	for _, v := range s.nums {
		out = append(out, v)
	}
	return out
}

// At returns the value at index i boxed as float64 or string.
func (s Series) At(i int) any {
	if s.kind == KindCategorical {
		return s.cats[i]
	}
	return s.nums[i]
}

// Equal reports whether both series have the same tag and values.
func (s Series) Equal(o Series) bool {
	if s.IsEmpty() && o.IsEmpty() {
		return true
	}
	if s.kind != o.kind {
		return false
	}
	if s.kind == KindCategorical {
		return slices.Equal(s.cats, o.cats)
	}
	return slices.Equal(s.nums, o.nums)
}

type seriesJSON struct {
	Kind   string `json:"kind"`
	Values []any  `json:"values"`
}

// MarshalJSON encodes the series as {"kind": ..., "values": [...]}.
func (s Series) MarshalJSON() ([]byte, error) {
	return json.Marshal(seriesJSON{Kind: s.kind.String(), Values: s.Values()})
}
