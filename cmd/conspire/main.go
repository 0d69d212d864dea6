// Package main provides the CLI entry point for conspire.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/conspire-go/internal/config"
	"github.com/ukaji3/conspire-go/internal/logger"
)

type configKey struct{}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "conspire",
		Short: "Render chart descriptions to interactive plots",
		Long: `conspire turns chart descriptions (scatter, line, bar, pie, box, heatmap)
into self-contained documents for a plotting backend such as Plotly.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	addGlobalFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(
		newRenderCmd(),
		newDemoCmd(),
		newDescribeCmd(),
		newImportCmd(),
		newBackendsCmd(),
	)
	return rootCmd
}

// setup loads configuration and installs the logger before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := config.Load(cmd.Context(), path)
	if err != nil {
		return err
	}

	level, logJSON, logSource, err := logger.GetLoggerConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("log-level") {
		level = cfg.Log.Level.String()
	}
	if !cmd.Flags().Changed("log-json") {
		logJSON = cfg.Log.JSON
	}
	if !cmd.Flags().Changed("log-source") {
		logSource = cfg.Log.Source
	}
	logger.SetupLogger(level, logJSON, logSource)

	ctx := logger.ContextWithLogger(cmd.Context(), logger.GetDefault())
	ctx = context.WithValue(ctx, configKey{}, cfg)
	cmd.SetContext(ctx)
	return nil
}

func configFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}
