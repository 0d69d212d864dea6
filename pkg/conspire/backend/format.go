package backend

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/conspire-go/pkg/conspire/models"
)

// attr formats one "key: value," pair.
func attr(key, value string) string {
	return key + ": " + value + ","
}

// quote returns s as a JSON string literal, which is also a valid JS literal.
func quote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(b)
}

// formatFloat renders f as a JS number literal that always carries a
// decimal point, so 1 renders as 1.0.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// formatSeries renders a present series size-aware: a single value becomes a
// scalar literal, two or more become an array literal in order.
func formatSeries(s models.Series) string {
	if s.Len() == 1 {
		return formatElement(s, 0)
	}
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatElement(s, i))
	}
	b.WriteByte(']')
	return b.String()
}

func formatElement(s models.Series, i int) string {
	switch v := s.At(i).(type) {
	case string:
		return quote(v)
	case float64:
		return formatFloat(v)
	}
	return "null"
}

// formatMatrix renders a matrix as an array of row arrays.
func formatMatrix(m models.Matrix) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, row := range m.Rows() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(formatFloat(v))
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}
