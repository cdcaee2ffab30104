// Package cmd defines the command-line interface for gitsum.
package cmd

import (
	"github.com/gitsum/gitsum/internal/contract"
	"github.com/gitsum/gitsum/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(authorsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsClearCmd)
	runsCmd.AddCommand(runsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringSliceP("emails", "e", nil, "Email addresses to filter commits by")
	rootCmd.PersistentFlags().String("email-contains", "", "Filter commits by author emails containing this string")
	rootCmd.PersistentFlags().IntP("days", "d", 0, "Show commits from last N days")
	rootCmd.PersistentFlags().IntP("weeks", "w", 0, "Show commits from last N weeks")
	rootCmd.PersistentFlags().IntP("months", "m", 0, "Show commits from last N months")
	rootCmd.PersistentFlags().IntP("years", "y", 0, "Show commits from last N years")
	rootCmd.PersistentFlags().Int("dir-level", contract.DefaultDirLevel, "Directory depth level for impact analysis")
	rootCmd.PersistentFlags().String("diverged-from", "", "Only include commits not reachable from this branch")
	rootCmd.PersistentFlags().Float64("salary", contract.DefaultYearlySalary, "Yearly salary for the COCOMO cost estimate")
	rootCmd.PersistentFlags().Bool("pure", false, "Use net added-minus-deleted lines as the COCOMO size basis")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or json or csv")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Run store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of runsListCmd to Viper
	runsListCmd.Flags().IntP("limit", "l", contract.DefaultRunsLimit, "Number of runs to display")
	if err := viper.BindPFlags(runsListCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs list flags", err)
	}

	// Bind all flags of runsMigrateCmd to Viper
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs migrate flags", err)
	}

	// Bind all flags of authorsCmd to Viper
	authorsCmd.Flags().String("contains", "", "Only list emails containing this substring")
	if err := viper.BindPFlags(authorsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding authors flags", err)
	}
}
