package conspire

import (
	"fmt"
	"slices"

	"github.com/ukaji3/conspire-go/pkg/conspire/backend"
	"github.com/ukaji3/conspire-go/pkg/conspire/models"
)

// PlotBuilder accumulates charts for one rendering. Every method returns a
// new builder and leaves the receiver unchanged.
type PlotBuilder struct {
	backend backend.ID
	charts  []models.Chart
	display bool
}

// NewPlotBuilder returns an empty builder targeting id.
func NewPlotBuilder(id backend.ID) PlotBuilder {
	return PlotBuilder{backend: id}
}

// Backend selects the renderer.
func (b PlotBuilder) Backend(id backend.ID) PlotBuilder {
	b.backend = id
	return b
}

// Add appends a chart. The appended slice never shares storage with the
// receiver, so sibling builders stay independent.
func (b PlotBuilder) Add(c models.Chart) PlotBuilder {
	charts := make([]models.Chart, len(b.charts), len(b.charts)+1)
	copy(charts, b.charts)
	b.charts = append(charts, c)
	return b
}

// Display sets whether the artifact is opened after publishing.
func (b PlotBuilder) Display(display bool) PlotBuilder {
	b.display = display
	return b
}

// Len is the number of layers added so far.
func (b PlotBuilder) Len() int {
	return len(b.charts)
}

// Build freezes the builder into a PlotSystem.
func (b PlotBuilder) Build() (*PlotSystem, error) {
	if len(b.charts) == 0 {
		return nil, ErrEmptyAssembly
	}
	for i, c := range b.charts {
		if c == nil {
			return nil, fmt.Errorf("chart %d: %w", i, ErrNilChart)
		}
		if err := models.Validate(c); err != nil {
			return nil, fmt.Errorf("chart %d: %w", i, err)
		}
	}
	id := b.backend
	if id == "" {
		id = DefaultBackend
	}
	return &PlotSystem{
		backend: id,
		charts:  slices.Clone(b.charts),
		display: b.display,
	}, nil
}

// PlotSystem is an immutable, non-empty assembly of charts.
type PlotSystem struct {
	backend backend.ID
	charts  []models.Chart
	display bool
}

// Charts returns the charts in insertion order.
func (ps *PlotSystem) Charts() []models.Chart {
	return slices.Clone(ps.charts)
}

// Len is the number of layers in the system.
func (ps *PlotSystem) Len() int {
	return len(ps.charts)
}

// BackendID names the renderer the system was built for.
func (ps *PlotSystem) BackendID() backend.ID {
	return ps.backend
}

// ShouldDisplay reports whether Publish opens the written artifact.
func (ps *PlotSystem) ShouldDisplay() bool {
	return ps.display
}

// Render hands the charts to the selected backend.
func (ps *PlotSystem) Render() (*backend.Artifact, error) {
	r, err := backend.Lookup(ps.backend)
	if err != nil {
		return nil, backend.NewRenderError(ps.backend, -1, "", err)
	}
	return r.Render(ps.Charts(), ps.display)
}
