// Package main provides the entry point for the airbasectl CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/leaguedesk/airbase-client/pkg/config"
	"github.com/leaguedesk/airbase-client/pkg/logging"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for airbasectl.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "airbasectl",
		Short: "Fetch and inspect collections from an Airbase base",
		Long: `airbasectl materializes full collections from a paginated Airbase base.

Configuration comes from the environment (or a .env file in the working
directory): AIRBASE_URL, AIRBASE_BASE_ID, AIRBASE_API_KEY, and optional
per-kind table overrides.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewFetchCmd())
	cmd.AddCommand(NewKindsCmd())
	cmd.AddCommand(NewInvalidateCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads .env (when present) and the environment, then
// configures global logging from the result.
func loadConfig() (config.Config, error) {
	// Missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.LogLevel),
		Pretty: cfg.LogPretty,
		Output: os.Stderr,
	})

	return cfg, nil
}
