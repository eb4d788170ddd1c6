package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zsiec/tick/internal/api"
	"github.com/zsiec/tick/internal/config"
	"github.com/zsiec/tick/internal/errors"
	"github.com/zsiec/tick/internal/health"
	"github.com/zsiec/tick/internal/logger"
	"github.com/zsiec/tick/internal/markers"
	"github.com/zsiec/tick/internal/server"
	"github.com/zsiec/tick/pkg/version"
)

const (
	logSampleInterval = time.Second
	logSampleBurst    = 20
	heapLimitBytes    = 1 << 30
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the conversion and marker HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			log, err := logger.New(&cfg.Logging)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			log.WithField("version", version.GetInfo().Short()).Info("Starting tick server")
			log.WithField("config_path", configPath).Debug("Configuration loaded")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.srv.Start(ctx); err != nil {
				log.WithError(err).Error("Server error")
				return err
			}
			log.Info("Server shutdown complete")
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Path to configuration file")
	return cmd
}

// app holds everything serve builds from a Config.
type app struct {
	srv   *server.Server
	store markers.Store
	log   *logrus.Logger
}

func newApp(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*app, error) {
	sampler := logger.NewSampledLogger(
		logger.NewLogrusAdapter(logrus.NewEntry(log)), logSampleInterval, logSampleBurst)
	errHandler := errors.NewErrorHandler(log).WithSampler(sampler)

	srv := server.New(&cfg.Server, &cfg.Metrics, log, errHandler)
	srv.RegisterHealthChecker(health.NewResolutionChecker(cfg.Timeline.DefaultFrameRate))
	srv.RegisterHealthChecker(health.NewMemoryChecker(heapLimitBytes))

	var store markers.Store
	switch cfg.Timeline.MarkerBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addresses[0],
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			MaxRetries:   cfg.Redis.MaxRetries,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.WithField("addr", cfg.Redis.Addresses[0]).Info("Connected to Redis successfully")

		store = markers.NewRedisStore(client, log, cfg.Timeline.KeyPrefix, cfg.Timeline.MarkerTTL)
		srv.RegisterHealthChecker(health.NewRedisChecker(client))
	default:
		store = markers.NewMemoryStore()
	}

	handlers := api.NewHandlers(store, errHandler,
		logger.NewLogrusAdapter(log.WithField("component", "api")), cfg.Timeline.DefaultFrameRate)
	srv.RegisterRoutes(handlers.RegisterRoutes)

	return &app{srv: srv, store: store, log: log}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.log.WithError(err).Error("Failed to close marker store")
	}
}
