package cmd

import (
	"fmt"

	"github.com/gitsum/gitsum/internal/contract"
	"github.com/gitsum/gitsum/internal/runstore"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runsCmd manages the persisted summary run history.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage the recorded summary run history.",
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// runsListCmd prints the most recent recorded runs.
var runsListCmd = &cobra.Command{
	Use:     "list [repo-path]",
	Short:   "List recent summary runs, newest first.",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := storeManager.GetRunStore()
		if store == nil {
			fmt.Println("Run store is disabled")
			return
		}
		records, err := store.ListRuns(viper.GetInt("limit"))
		if err != nil {
			contract.LogFatal("Cannot list runs", err)
		}
		runstore.PrintRuns(records)
	},
}

// runsStatusCmd prints run store diagnostics.
var runsStatusCmd = &cobra.Command{
	Use:     "status [repo-path]",
	Short:   "Show run store status information.",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := storeManager.GetRunStore()
		if store == nil {
			fmt.Println("Run store is disabled")
			return
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Cannot get run store status", err)
		}
		runstore.PrintStatus(status)
	},
}

// runsClearCmd removes all recorded runs.
var runsClearCmd = &cobra.Command{
	Use:     "clear [repo-path]",
	Short:   "Delete all recorded summary runs.",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := storeManager.GetRunStore()
		if store == nil {
			fmt.Println("Run store is disabled")
			return
		}
		if err := store.Clear(); err != nil {
			contract.LogFatal("Cannot clear run store", err)
		}
		fmt.Println("Run store cleared")
	},
}

// runsMigrateCmd applies run store schema migrations.
var runsMigrateCmd = &cobra.Command{
	Use:     "migrate [repo-path]",
	Short:   "Run database migrations for the run store.",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		target := viper.GetInt("target-version")
		if err := runstore.Migrate(cfg.StoreBackend, cfg.StoreDBConnect, target); err != nil {
			contract.LogFatal("Cannot run migrations", err)
		}
		fmt.Println("Migrations complete")
	},
}
