// Package chartfile decodes declarative chart documents written in YAML or
// JSON into plot builders.
package chartfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

// ErrInvalidFile indicates a document that decodes but fails validation.
var ErrInvalidFile = errors.New("invalid chart file")

// File is a decoded chart document.
type File struct {
	Backend string  `yaml:"backend" json:"backend" validate:"omitempty,oneof=plotly vegalite vega-lite"`
	Display bool    `yaml:"display" json:"display"`
	Charts  []Chart `yaml:"charts"  json:"charts"  validate:"required,min=1,dive"`

	// dir resolves relative workbook paths.
	dir string
}

// Chart is one chart entry. Series channels accept a list or a scalar.
type Chart struct {
	Kind   string  `yaml:"kind"   json:"kind"   validate:"required,chartkind"`
	Name   string  `yaml:"name"   json:"name"`
	X      any     `yaml:"x"      json:"x"`
	Y      any     `yaml:"y"      json:"y"`
	Z      any     `yaml:"z"      json:"z"`
	Color  any     `yaml:"color"  json:"color"`
	Size   any     `yaml:"size"   json:"size"`
	Source *Source `yaml:"source" json:"source" validate:"omitempty"`
}

// Source reads channels from a workbook sheet. Inline values on the chart
// win over source columns for the same channel.
type Source struct {
	Workbook string `yaml:"workbook" json:"workbook" validate:"required"`
	Sheet    string `yaml:"sheet"    json:"sheet"    validate:"required"`
	X        string `yaml:"x"        json:"x"`
	Y        string `yaml:"y"        json:"y"`
	Color    string `yaml:"color"    json:"color"`
	Size     string `yaml:"size"     json:"size"`
}

// ChartError ties a failure to the chart entry that caused it.
type ChartError struct {
	Index int
	Kind  string
	Err   error
}

func (e *ChartError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("chart %d (%s): %v", e.Index, e.Kind, e.Err)
	}
	return fmt.Sprintf("chart %d: %v", e.Index, e.Err)
}

func (e *ChartError) Unwrap() error {
	return e.Err
}

// NewChartError creates a new ChartError.
func NewChartError(index int, kind string, err error) *ChartError {
	return &ChartError{Index: index, Kind: kind, Err: err}
}

// Parse decodes and validates a chart document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode chart file: %w", err)
	}
	if err := validate(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and parses the document at path. Relative workbook paths are
// resolved against the document's directory.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.dir = dirOf(path)
	return f, nil
}

func validate(f *File) error {
	if err := newValidator().Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s", ErrInvalidFile, describe(verrs))
		}
		return fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	return nil
}
