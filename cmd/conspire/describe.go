package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/conspire-go/pkg/conspire/output"
)

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <chart.yaml>",
		Short: "Print the JSON description of a chart file",
		Args:  cobra.ExactArgs(1),
		RunE:  runDescribe,
	}
	cmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
	return cmd
}

func runDescribe(cmd *cobra.Command, args []string) error {
	cfg := configFrom(cmd.Context())
	ps, err := loadPlot(cmd, args[0], cfg.Backend.String())
	if err != nil {
		return err
	}

	pretty, err := cmd.Flags().GetBool("pretty")
	if err != nil {
		return err
	}
	data, err := output.ToJSON(ps.Describe(), pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
