package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ericoliveiras/cobbs-crumbs/internal/database"
	"github.com/ericoliveiras/cobbs-crumbs/internal/fixtures"
	"github.com/ericoliveiras/cobbs-crumbs/internal/model"
)

var (
	// Seed flags
	seedPassword string
	seedFixtures bool
)

// seedCmd loads the initial data
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Store the admin password and default site content",
	Long: `Store the admin password and insert the default site copy. Existing copy is
kept. With --fixtures the demo catalog is copied into empty tables too.

Examples:
  cobbscrumbs seed --password s3cret   # Set the admin password
  cobbscrumbs seed --fixtures          # Password from ADMIN_PASSWORD, plus demo catalog`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed()
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVar(&seedPassword, "password", "", "Admin password (defaults to ADMIN_PASSWORD)")
	seedCmd.Flags().BoolVar(&seedFixtures, "fixtures", false, "Also insert the demo products and featured items")
}

func runSeed() error {
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

	password := seedPassword
	if password == "" {
		password = cfg.AdminPassword
	}
	if password == "" {
		log.Warn("no admin password given, leaving the stored one unchanged")
	} else if err := database.SeedAdminPassword(db, password, log); err != nil {
		return err
	}

	if err := database.SeedContent(db, model.DefaultSiteContent(), log); err != nil {
		return err
	}

	if seedFixtures {
		set, err := fixtures.Default(time.Now())
		if err != nil {
			return err
		}
		if err := database.SeedFixtures(db, set, log); err != nil {
			return err
		}
	}
	return nil
}
