package commands

import (
	"github.com/spf13/cobra"

	"github.com/ericoliveiras/cobbs-crumbs/internal/database"
)

// migrateCmd creates or updates the schema
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	Long: `Create or update the products, orders, featured_items, site_content and
admin_settings tables. Requires DATABASE_URL.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate() error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := requireDatabase(cfg); err != nil {
		return err
	}
	db, err := database.Connect(cfg.DatabaseURL, dbOptions(cfg), log)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	return database.Migrate(db, log)
}
