// Package backend defines the rendering contract shared by every chart
// backend and provides the built-in Plotly and Vega-Lite implementations.
package backend

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/ukaji3/conspire-go/pkg/conspire/models"
)

// ID identifies a rendering backend.
type ID string

const (
	// Plotly renders Plotly.js trace declarations inside an HTML document.
	Plotly ID = "plotly"
	// VegaLite renders a layered Vega-Lite specification inside an HTML document.
	VegaLite ID = "vegalite"
)

// String returns the identifier text.
func (id ID) String() string {
	return string(id)
}

// Renderer serializes an ordered sequence of validated charts.
// Implementations either return a complete artifact or an error, never both.
type Renderer interface {
	Render(charts []models.Chart, display bool) (*Artifact, error)
}

// Factory creates a Renderer for one backend.
type Factory func() Renderer

// Artifact is the textual output of a backend.
type Artifact struct {
	// Backend is the backend that produced the artifact.
	Backend ID
	// MediaType is the MIME type of Content.
	MediaType string
	// Extension is the file extension including the leading dot.
	Extension string
	// Content is the serialized document.
	Content []byte
	// Display records whether the caller asked for the artifact to be shown.
	Display bool
}

// String returns the artifact content.
func (a *Artifact) String() string {
	return string(a.Content)
}

var (
	registryMu sync.RWMutex
	registry   = map[ID]Factory{}
)

func init() {
	Register(Plotly, func() Renderer { return NewPlotly() })
	Register(VegaLite, func() Renderer { return NewVegaLite() })
}

// Register makes a backend available under id, replacing any previous factory.
func Register(id ID, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[id] = f
}

// Lookup returns a new Renderer for id.
func Lookup(id ID) (Renderer, error) {
	registryMu.RLock()
	f, ok := registry[id]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, id)
	}
	return f(), nil
}

// IDs returns the registered backend identifiers in sorted order.
func IDs() []ID {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ids := make([]ID, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// ParseID resolves a backend name case-insensitively against the registry.
func ParseID(name string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(name)))
	if id == "vega-lite" || id == "vega" {
		id = VegaLite
	}
	registryMu.RLock()
	_, ok := registry[id]
	registryMu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return id, nil
}
