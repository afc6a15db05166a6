package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"farmtrack/database"
	"farmtrack/pkg/dataset"
	"farmtrack/pkg/metrics"
)

func runImport(cmd *cobra.Command, args []string) error {
	rows, err := dataset.Load(importFile)
	if err != nil {
		return err
	}
	store, err := database.Open(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close(cmd.Context())

	svc := newServices(store, cfg, logger, metrics.New())
	res, err := dataset.Import(cmd.Context(), svc.cultivations, rows, importFarmer)
	for _, s := range res.Skipped {
		logger.Warn("row skipped", zap.Int("line", s.Line), zap.String("reason", s.Reason))
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d of %d rows from %s\n", res.Imported, len(rows), importFile)
	return nil
}
