package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"prime-property/internal/config"
	"prime-property/internal/handler"
	"prime-property/internal/pkg/logger"
	"prime-property/internal/repository"
	"prime-property/internal/service"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "prime-property",
		Short:         "Prime Property marketplace API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := godotenv.Load(); err != nil {
				logrus.Debug("no .env file found, using environment variables")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or upgrade the database schema",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := setup()
				db, err := openDB(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				defer db.Close()

				logrus.Info("schema is up to date")
				return nil
			},
		},
		&cobra.Command{
			Use:   "seed-admin",
			Short: "Create the configured admin account if it does not exist",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := setup()
				db, err := openDB(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				defer db.Close()

				services := service.NewServices(repository.NewRepositories(db), nil, nil, config.DefaultPricing(), cfg)
				user, created, err := services.Auth.SeedAdmin(cmd.Context())
				if err != nil {
					return fmt.Errorf("seeding admin: %w", err)
				}
				if !created {
					logrus.WithField("email", user.Email).Info("admin account already exists")
				}
				return nil
			},
		},
	)

	return root
}

func setup() *config.Config {
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFormat, cfg.IsProduction())
	return cfg
}

func openDB(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	db, err := config.NewDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := repository.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return db, nil
}

func runServe(ctx context.Context) error {
	cfg := setup()

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		logrus.WithError(err).Warn("failed to connect to Redis, stats caching disabled")
		redis = nil
	}
	if redis != nil {
		defer redis.Close()
	}

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		logrus.WithError(err).Warn("failed to connect to MinIO, image upload disabled")
		minioClient = nil
	}

	pricing, err := config.LoadPricing(cfg.PricingFile)
	if err != nil {
		return fmt.Errorf("loading pricing: %w", err)
	}

	services := service.NewServices(repository.NewRepositories(db), redis, minioClient, pricing, cfg)
	if _, _, err := services.Auth.SeedAdmin(ctx); err != nil {
		return fmt.Errorf("seeding admin: %w", err)
	}

	app := handler.NewApp(cfg, services)

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("port", cfg.Port).Info("server starting")
		errCh <- app.Listen(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logrus.WithField("signal", sig.String()).Info("shutting down")
	}

	return app.ShutdownWithTimeout(10 * time.Second)
}
