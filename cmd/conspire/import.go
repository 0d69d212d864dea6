package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/conspire-go/internal/logger"
	"github.com/ukaji3/conspire-go/pkg/conspire"
	"github.com/ukaji3/conspire-go/pkg/conspire/workbook"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <book.xlsx>",
		Short: "Render the charts embedded in a workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}
	cmd.Flags().String("sheet", "", "Sheet to import (default: every sheet)")
	addPublishFlags(cmd.Flags())
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := configFrom(ctx)
	log := logger.FromContext(ctx)

	id, err := backendFlag(cmd.Flags(), cfg.Backend.String())
	if err != nil {
		return err
	}
	only, err := cmd.Flags().GetString("sheet")
	if err != nil {
		return err
	}

	wb, err := workbook.Open(args[0])
	if err != nil {
		return err
	}
	defer wb.Close()

	sheets := wb.Sheets()
	if only != "" {
		sheets = []string{only}
	}

	b := conspire.NewPlotBuilder(id)
	for _, sheet := range sheets {
		charts, err := wb.ImportCharts(sheet)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		log.Debug("sheet imported", "sheet", sheet, "charts", len(charts))
		for _, c := range charts {
			b = b.Add(c)
		}
	}

	ps, err := b.Build()
	if errors.Is(err, conspire.ErrEmptyAssembly) {
		return fmt.Errorf("%s: no supported charts found", wb.Name())
	}
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
