package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"farmtrack/database"
)

// Opening a store migrates it.
func runMigrate(cmd *cobra.Command, args []string) error {
	store, err := database.Open(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close(cmd.Context())
	logger.Info("migrated", zap.String("driver", store.Driver))
	return nil
}
