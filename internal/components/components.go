package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hernifleitas/sos-delivery-sub000/internal/api"
	"github.com/hernifleitas/sos-delivery-sub000/internal/config"
	"github.com/hernifleitas/sos-delivery-sub000/internal/redis"
	"github.com/hernifleitas/sos-delivery-sub000/internal/service"
	"github.com/hernifleitas/sos-delivery-sub000/internal/store"
	"github.com/hernifleitas/sos-delivery-sub000/internal/workers"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Redis      *redis.Redis
	Store      *store.PresenceStore
	Sweeper    *workers.Sweeper
	PushSender *service.PushSender // nil when push is disabled
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	presenceStore := store.New()
	clock := store.RealClock()

	var dispatcher service.Dispatcher
	var pushSender *service.PushSender
	if cfg.Push.Disabled {
		dispatcher = service.NewNoopDispatcher(logger)
	} else {
		queue := redis.NewNotifyQueue(redisClient.Client, "notify:queue")
		dispatcher = queue
		pushSender = service.NewPushSender(logger, cfg.Push, queue)
	}

	resolver := redis.NewSessionResolver(redisClient)
	notifier := service.NewNotifier(resolver, dispatcher, logger)

	ingestSvc := service.NewIngestService(presenceStore, clock, cfg.Engine, notifier, logger)
	viewSvc := service.NewViewService(presenceStore, clock, cfg.Engine)
	statsSvc := service.NewStatsService(presenceStore, viewSvc)

	srv := service.NewService(ingestSvc, viewSvc, statsSvc)

	httpServer := api.NewServer(cfg, logger, srv)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Redis:      redisClient,
		Store:      presenceStore,
		Sweeper:    workers.NewSweeper(presenceStore, clock, cfg.Engine, logger),
		PushSender: pushSender,
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

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components shut down",
		slog.Duration("latency", time.Since(start)))
}
