package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ericoliveiras/cobbs-crumbs/internal/auth"
	"github.com/ericoliveiras/cobbs-crumbs/internal/config"
	"github.com/ericoliveiras/cobbs-crumbs/internal/database"
	"github.com/ericoliveiras/cobbs-crumbs/internal/fixtures"
	"github.com/ericoliveiras/cobbs-crumbs/internal/model"
	"github.com/ericoliveiras/cobbs-crumbs/internal/server"
	"github.com/ericoliveiras/cobbs-crumbs/internal/store"
	"github.com/ericoliveiras/cobbs-crumbs/internal/upload"
)

var servePort string

// serveCmd runs the HTTP server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Run the storefront and admin API until SIGINT or SIGTERM.

Examples:
  cobbscrumbs serve                    # Listen on PORT (default 8080)
  cobbscrumbs serve --port 3000        # Override the port
  cobbscrumbs serve --env-file prod.env`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides PORT)")
}

func runServe(ctx context.Context) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if servePort != "" {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	st, closeStore, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	images, err := upload.NewDiskStorage(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		return err
	}

	router := server.NewRouter(server.Deps{
		Store:    st,
		Sessions: auth.NewSessions(cfg.SessionSecret, cfg.IsProduction()),
		Images:   images,
		Defaults: model.DefaultSiteContent(),
		Demo:     cfg.DemoMode(),
		Log:      log,
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.New(cfg.Addr(), router, cfg.ShutdownTimeout, log).Run(ctx)
}

// openStore picks the database store, or the demo store when no database is
// configured. The returned func releases the store.
func openStore(cfg config.Config, log *zap.Logger) (store.Store, func(), error) {
	if cfg.DemoMode() {
		log.Warn("DATABASE_URL not configured, running in demo mode with in-memory data")
		set, err := fixtures.Default(time.Now())
		if err != nil {
			return nil, nil, err
		}
		return store.NewMemoryStore(set), func() {}, nil
	}

	db, err := database.Connect(cfg.DatabaseURL, dbOptions(cfg), log)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if err := database.Close(db); err != nil {
			log.Error("failed to close database", zap.Error(err))
		}
	}
	return store.NewGormStore(db, model.DefaultSiteContent()), closeDB, nil
}

func dbOptions(cfg config.Config) database.Options {
	return database.Options{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}
}

// requireDatabase fails for commands that make no sense in demo mode.
func requireDatabase(cfg config.Config) error {
	if cfg.DemoMode() {
		return errors.New("DATABASE_URL is not configured")
	}
	return nil
}
