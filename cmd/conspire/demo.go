package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/conspire-go/pkg/conspire"
	"github.com/ukaji3/conspire-go/pkg/conspire/backend"
	"github.com/ukaji3/conspire-go/pkg/conspire/models"
)

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a two-layer sample plot",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}
	addPublishFlags(cmd.Flags())
	return cmd
}

func runDemo(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := configFrom(ctx)

	id, err := backendFlag(cmd.Flags(), cfg.Backend.String())
	if err != nil {
		return err
	}
	ps, err := demoPlot(id)
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

// demoPlot is a colored, sized scatter under a single-color line.
func demoPlot(id backend.ID) (*conspire.PlotSystem, error) {
	points := models.NewLayer().
		X(models.Floats{1.0, 1.3, 2.0, 2.7, 3.0, 4.0, 5.1, 6.2, 6.3}).
		Y(models.Floats{8.0, 8.1, 7.0, 6.4, 5.0, 4.0, 4.2, 4.2, 4.3}).
		Color(models.Ints{1, 2, 3, 4, 5, 6, 7, 8, 9}).
		Size(models.Ints{30})

	trend := models.NewLayer().
		X(models.Floats{1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0}).
		Y(models.Floats{9.0, 1.0, 10.0, 11.0, 11.0, 11.0, 11.0}).
		Color(models.Strings{"blue"})

	scatter, err := models.NewScatter(points)
	if err != nil {
		return nil, err
	}
	line, err := models.NewLine(trend)
	if err != nil {
		return nil, err
	}
	return conspire.NewPlotBuilder(id).Add(scatter).Add(line).Display(true).Build()
}
