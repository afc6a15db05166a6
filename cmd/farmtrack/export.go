package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"farmtrack/database"
	"farmtrack/pkg/metrics"
)

func runExport(cmd *cobra.Command, args []string) error {
	store, err := database.Open(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close(cmd.Context())

	svc := newServices(store, cfg, logger, metrics.New())
	x, err := svc.report.Workbook(cmd.Context())
	if err != nil {
		return err
	}
	defer x.Close()
	if err := x.SaveAs(exportOut); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", exportOut)
	return nil
}
