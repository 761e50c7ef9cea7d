package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ProTechPh/GeoPulse/internal/api"
	"github.com/ProTechPh/GeoPulse/internal/config"
	"github.com/ProTechPh/GeoPulse/internal/mail"
	"github.com/ProTechPh/GeoPulse/internal/notify"
	"github.com/ProTechPh/GeoPulse/internal/redis"
	"github.com/ProTechPh/GeoPulse/internal/storage/postgres"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Engine     *notify.Engine
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	queue := redis.NewNotificationQueue(redisClient.Client, cfg.Dispatch.QueueKey)
	directory := redis.NewSubscriberCache(redisClient, storage.Subscriber, logger, cfg.Dispatch.SubscriberCacheTTL)

	emailChannel, err := mail.NewEmailChannel(cfg.SMTP, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init email channel: %w", err)
	}
	channels := []notify.DeliveryChannel{emailChannel}
	if cfg.Twilio.Enabled {
		channels = append(channels, mail.NewSMSChannel(cfg.Twilio, logger))
		logger.Info("SMS channel enabled")
	}

	dispatcher := notify.NewDispatcher(directory, storage.Ledger, channels, logger, notify.Options{
		Workers:             cfg.Dispatch.Workers,
		SendRatePerSec:      cfg.Dispatch.SendRatePerSec,
		SendBurst:           cfg.Dispatch.SendBurst,
		BaseURL:             cfg.Client.BaseURL,
		DefaultRadiusMeters: cfg.Dispatch.DefaultRadiusMeters,
	})

	engine := notify.NewEngine(queue, dispatcher, logger, cfg.Dispatch.QueuePollTimeout)

	httpServer := api.NewServer(cfg, logger, engine, storage.Ledger, storage.Incident)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Engine:     engine,
		Postgres:   storage,
		Redis:      redisClient,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components shut down",
		slog.Duration("latency", time.Since(start)))
}
