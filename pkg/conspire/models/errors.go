package models

import (
	"errors"
	"fmt"
)

// ErrMissingDimension indicates a chart was built without a required channel.
var ErrMissingDimension = errors.New("missing dimension")

// ErrUnknownChartKind indicates a chart kind name is not recognized.
var ErrUnknownChartKind = errors.New("unknown chart kind")

// MissingDimensionError names the chart kind and the channel that was absent.
type MissingDimensionError struct {
	Kind    ChartKind
	Channel Channel
}

func (e *MissingDimensionError) Error() string {
	return fmt.Sprintf("%s chart: missing %s dimension", e.Kind, e.Channel)
}

// Is reports whether target is ErrMissingDimension.
func (e *MissingDimensionError) Is(target error) bool {
	return target == ErrMissingDimension
}

// NewMissingDimensionError creates a new MissingDimensionError.
func NewMissingDimensionError(kind ChartKind, channel Channel) *MissingDimensionError {
	return &MissingDimensionError{
		Kind:    kind,
		Channel: channel,
	}
}
