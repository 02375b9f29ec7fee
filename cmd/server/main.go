package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"inventory-backend/internal/config"
	"inventory-backend/internal/database"
	"inventory-backend/internal/ledger"
	"inventory-backend/internal/logging"
	"inventory-backend/internal/reporting"
	"inventory-backend/internal/server"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

type flags struct {
	port      string
	dbDriver  string
	dsn       string
	staticDir string
}

func main() {
	var (
		f   flags
		cfg *config.Config
		log *logrus.Logger
	)

	rootCmd := &cobra.Command{
		Use:           "inventory-server",
		Short:         "Inventory ledger HTTP backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg = config.Load()
			applyFlags(cmd, f, cfg)
			log = logging.New(cfg.LogLevel, cfg.LogFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg, log)
		},
	}
	rootCmd.PersistentFlags().StringVar(&f.port, "port", "", "HTTP port (overrides HTTP_PORT)")
	rootCmd.PersistentFlags().StringVar(&f.dbDriver, "db-driver", "", "sqlite, postgres or mysql (overrides DB_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&f.dsn, "dsn", "", "database DSN (overrides DATABASE_DSN)")
	rootCmd.PersistentFlags().StringVar(&f.staticDir, "static-dir", "", "static assets directory (overrides STATIC_DIR)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openStore(cfg, log)
			if err != nil {
				return err
			}
			defer database.Close(db)
			log.Info("schema is up to date")
			return nil
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Error("inventory-server failed")
		stop()
		os.Exit(1)
	}
}

func applyFlags(cmd *cobra.Command, f flags, cfg *config.Config) {
	pf := cmd.Flags()
	if pf.Changed("port") {
		cfg.HTTPPort = f.port
	}
	if pf.Changed("db-driver") {
		cfg.Database.Driver = f.dbDriver
	}
	if pf.Changed("dsn") {
		cfg.Database.DSN = f.dsn
	}
	if pf.Changed("static-dir") {
		cfg.StaticDir = f.staticDir
	}
}

func openStore(cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	log.WithField("driver", cfg.Database.Driver).Info("database ready")
	return db, nil
}

func serve(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	db, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer database.Close(db)

	x, err := database.SQLX(db)
	if err != nil {
		return err
	}
	reports := reporting.New(x)

	app := server.New(cfg, server.Deps{
		Ledger:  ledger.New(db, log),
		Reports: reports,
		Health:  reports,
		Log:     log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.HTTPPort).Info("listening")
		errCh <- app.Listen(":" + cfg.HTTPPort)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}
