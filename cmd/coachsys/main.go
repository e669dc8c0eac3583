package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/chenhoward456-hash/coach-system/internal/config"
	"github.com/chenhoward456-hash/coach-system/internal/database"
	"github.com/chenhoward456-hash/coach-system/internal/handlers"
	"github.com/chenhoward456-hash/coach-system/internal/logger"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "coachsys",
	Short: "Coach growth portal: checklist, journal, scores, goals and plans",
	Long: `coachsys serves the coach growth portal API and manages its data.

All records live in one key/value table that mirrors the web client
local-storage layout, so exports and imports stay compatible.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load .env: %w", err)
		}
		cfg = config.Load()
		if err := logger.Init(cfg.LogMode); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		handlers.Configure(cfg.Location())

		if err := database.Connect(cfg); err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		return database.Migrate()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Log.Sync()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update tables and seed the coach roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		// PersistentPreRunE already migrated
		fmt.Fprintln(cmd.OutOrStdout(), "database is up to date")
		return nil
	},
}

// today is the current time in the configured zone.
func today() time.Time {
	return time.Now().In(cfg.Location())
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, resetCmd, statusCmd, copyCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
