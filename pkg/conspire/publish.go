package conspire

import (
	"context"
	"fmt"

	"github.com/ukaji3/conspire-go/internal/logger"
)

// Result reports what Publish produced.
type Result struct {
	Path      string
	Displayed bool
}

// Publish renders ps, persists the artifact and opens it when display is on.
// Nothing is written unless rendering succeeded for every chart.
func Publish(ctx context.Context, ps *PlotSystem, opts PublishOptions) (*Result, error) {
	log := logger.FromContext(ctx).With("backend", ps.BackendID().String())

	artifact, err := ps.Render()
	if err != nil {
		log.Error("render failed", "err", err)
		return nil, err
	}
	log.Debug("rendered", "traces", ps.Len(), "bytes", len(artifact.Content))

	path, err := opts.persister().Persist(artifact, opts.Path)
	if err != nil {
		log.Error("persist failed", "err", err)
		return nil, err
	}
	log.Info("artifact written", "path", path)

	res := &Result{Path: path}
	if !opts.ShouldDisplay(ps) {
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	if err := opts.opener().Open(path); err != nil {
		log.Warn("display failed", "path", path, "err", err)
		return res, fmt.Errorf("failed to display artifact: %w", err)
	}
	res.Displayed = true
	log.Debug("artifact opened", "path", path)
	return res, nil
}
