package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/evently-app/server/internal/config"
)

var (
	flagDatabaseURL  string
	flagDatabaseName string
	flagLogLevel     string
	flagHost         string
	flagPort         string
)

var rootCmd = &cobra.Command{
	Use:   "evently",
	Short: "Evently event-listing API",
	Long:  `REST API for listing, creating, and favoriting events, backed by MongoDB.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := cmd.Help(); err != nil {
			slog.Error("Failed to display help", "error", err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDatabaseURL, "database-url", "", "Database connection URL. Takes priority over the DATABASE_URL environment variable.")
	rootCmd.PersistentFlags().StringVar(&flagDatabaseName, "database-name", "", "Logical database name. Defaults to evently.")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Logging verbosity: critical, error, warning, info, debug.")
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", "", "Host to bind the server to. Defaults to 127.0.0.1.")
	rootCmd.PersistentFlags().StringVar(&flagPort, "port", "", "Port to bind the server to. Defaults to 8080.")
}

// loadConfig resolves configuration from the environment and applies CLI
// flag overrides. Flags take priority over environment variables.
func loadConfig() (*config.Config, error) {
	// Load environment variables
	_ = godotenv.Load(".env.local")

	cfg := config.LoadConfig()

	if flagDatabaseURL != "" {
		cfg.DatabaseURL = flagDatabaseURL
	}
	if flagDatabaseName != "" {
		cfg.DatabaseName = flagDatabaseName
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagHost != "" {
		cfg.Host = flagHost
	}
	if flagPort != "" {
		cfg.Port = flagPort
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
