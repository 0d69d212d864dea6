// Package conspire assembles charts into plot systems and hands them to a
// rendering backend.
package conspire

import (
	"github.com/ukaji3/conspire-go/pkg/conspire/backend"
	"github.com/ukaji3/conspire-go/pkg/conspire/output"
)

// PublishOptions configures where a rendered artifact goes.
type PublishOptions struct {
	// Path is the artifact destination. Empty means output.DefaultPath.
	Path string
	// Persister writes the artifact. If nil, the OS filesystem is used.
	Persister *output.Persister
	// Opener displays the artifact when the assembly asks for it.
	// If nil, the default browser is used.
	Opener output.Opener
	// Display overrides the assembly's display flag when set.
	Display *bool
}

// DefaultPublishOptions returns options writing render.html in the working
// directory.
func DefaultPublishOptions() PublishOptions {
	return PublishOptions{
		Path: output.DefaultPath,
	}
}

// ShouldDisplay returns whether the artifact is opened after persisting.
func (o PublishOptions) ShouldDisplay(ps *PlotSystem) bool {
	if o.Display != nil {
		return *o.Display
	}
	return ps.ShouldDisplay()
}

func (o PublishOptions) persister() *output.Persister {
	if o.Persister != nil {
		return o.Persister
	}
	return output.NewPersister()
}

func (o PublishOptions) opener() output.Opener {
	if o.Opener != nil {
		return o.Opener
	}
	return output.BrowserOpener{}
}

// DefaultBackend is the backend a new builder targets.
const DefaultBackend = backend.Plotly
