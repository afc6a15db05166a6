package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"farmtrack/config"
	"farmtrack/pkg/logx"
)

var (
	configFile string

	cfg    config.AppConfig
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "farmtrack",
	Short: "Farmer and cultivation records service",
	Long: `farmtrack keeps farmer registrations and their cultivation records.

Run without arguments to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configFile != "" {
			if err := os.Setenv("CONFIG_FILE", configFile); err != nil {
				return err
			}
		}
		cfg = config.Load()
		var err error
		logger, err = logx.New(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create tables (sql) or indexes (mongo) and exit",
	RunE:  runMigrate,
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load cultivations from a crop-yield csv or xlsx file",
	Long: `Reads Crop, Crop_Year, Season, State, Area, Production, Annual_Rainfall,
Fertilizer, Pesticide and Yield columns and creates one cultivation per row.

Example:
  farmtrack import --file crop_yield.csv --farmer Ramesh1234`,
	RunE: runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write farmers and cultivations to an xlsx workbook",
	RunE:  runExport,
}

var (
	importFile   string
	importFarmer string
	exportOut    string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (overrides CONFIG_FILE)")

	importCmd.Flags().StringVar(&importFile, "file", "", "dataset path (.csv or .xlsx)")
	importCmd.Flags().StringVar(&importFarmer, "farmer", "", "link every row to this farmer id")
	_ = importCmd.MarkFlagRequired("file")

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "farmers.xlsx", "output path")

	rootCmd.AddCommand(serveCmd, migrateCmd, importCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
