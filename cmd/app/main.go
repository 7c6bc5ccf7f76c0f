package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/cmd"
	"storefront/internal/adapters/out/postgres/migrations"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/metrics"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app := &cli.App{
		Name:  "storefront",
		Usage: "storefront order backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "optional dotenv file loaded before reading the environment",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP API and background jobs",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "skip-migrations",
						Usage: "do not apply pending migrations on startup",
					},
				},
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "manage the database schema",
				Subcommands: []*cli.Command{
					{
						Name:  "up",
						Usage: "apply pending migrations",
						Action: func(c *cli.Context) error {
							cfg, err := cmd.LoadConfig(c.String("env-file"))
							if err != nil {
								return err
							}
							return migrations.Up(cfg.DSN())
						},
					},
					{
						Name:  "down",
						Usage: "revert every migration",
						Action: func(c *cli.Context) error {
							cfg, err := cmd.LoadConfig(c.String("env-file"))
							if err != nil {
								return err
							}
							return migrations.Down(cfg.DSN())
						},
					},
				},
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("storefront: %v", err)
	}
}

func serve(c *cli.Context) error {
	configs, err := cmd.LoadConfig(c.String("env-file"))
	if err != nil {
		return err
	}

	level, err := configs.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if !c.Bool("skip-migrations") {
		if err = migrations.Up(configs.DSN()); err != nil {
			return err
		}
	}

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		NowFunc:        clock.NewSystem().Now,
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app := cmd.NewCompositionRoot(configs, gormDB, metrics.New(registry), logger)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, err := app.CreateRouter(ctx, registry)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server listening", "address", configs.HTTPAddress())
		if err := router.Start(configs.HTTPAddress()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down HTTP server")
		return router.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
