package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ericoliveiras/cobbs-crumbs/internal/config"
	"github.com/ericoliveiras/cobbs-crumbs/internal/logger"
)

var (
	// Global flags
	envFile  string
	logLevel string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cobbscrumbs",
	Short: "Cobb's Crumbs - storefront and admin API for a home bakery",
	Long: `Cobb's Crumbs serves the bakery's public catalog and order form, plus a
password protected admin API for products, featured items, orders and site copy.

Without a DATABASE_URL the server runs in demo mode on an in-memory catalog
(admin password "demo").`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load before reading the environment")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")
}

// loadConfig reads the env file and environment, applies the global flag
// overrides and builds the logger.
func loadConfig() (config.Config, *zap.Logger, error) {
	if err := config.LoadEnvFile(envFile); err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}
	cfg := config.FromEnv()
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	log, err := logger.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, log, nil
}
