package backend

import (
	"errors"
	"fmt"

	"github.com/ukaji3/conspire-go/pkg/conspire/models"
)

// ErrUnsupported indicates a backend has not implemented a chart kind.
var ErrUnsupported = errors.New("unsupported by backend")

// ErrUnknownBackend indicates no backend is registered under an identifier.
var ErrUnknownBackend = errors.New("unknown backend")

// RenderError represents a failure while serializing charts.
type RenderError struct {
	Backend ID
	Index   int // trace position, -1 when the failure is not tied to one chart
	Kind    models.ChartKind
	Err     error
}

func (e *RenderError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("render error in %s backend: %v", e.Backend, e.Err)
	}
	return fmt.Sprintf("render error in %s backend, trace %d (%s): %v", e.Backend, e.Index, e.Kind, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(backend ID, index int, kind models.ChartKind, err error) *RenderError {
	return &RenderError{
		Backend: backend,
		Index:   index,
		Kind:    kind,
		Err:     err,
	}
}
