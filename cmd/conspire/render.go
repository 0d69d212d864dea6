package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/conspire-go/internal/logger"
	"github.com/ukaji3/conspire-go/pkg/conspire"
	"github.com/ukaji3/conspire-go/pkg/conspire/chartfile"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <chart.yaml>",
		Short: "Render a chart file",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	addPublishFlags(cmd.Flags())
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := configFrom(ctx)

	ps, err := loadPlot(cmd, args[0], cfg.Backend.String())
	if err != nil {
		return err
	}

	opts, err := publishOptions(cmd.Flags(), cfg)
	if err != nil {
		return err
	}
	res, err := conspire.Publish(ctx, ps, opts)
	if err != nil {
		return fmt.Errorf("publish failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Path)
	return nil
}

// loadPlot reads a chart file and builds it. The file's backend wins over
// the configured one, and an explicit --backend wins over both.
func loadPlot(cmd *cobra.Command, path, configured string) (*conspire.PlotSystem, error) {
	f, err := chartfile.Load(path)
	if err != nil {
		return nil, err
	}
	b, err := f.Builder(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	fallback := configured
	if f.Backend != "" {
		fallback = f.Backend
	}
	id, err := backendFlag(cmd.Flags(), fallback)
	if err != nil {
		return nil, err
	}
	b = b.Backend(id)

	ps, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.FromContext(cmd.Context()).Debug("chart file built", "path", path, "charts", ps.Len())
	return ps, nil
}
