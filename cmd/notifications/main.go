package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/aetheris/airline-platform/internal/api/http"
	"github.com/aetheris/airline-platform/internal/api/http/handlers"
	"github.com/aetheris/airline-platform/internal/auth"
	"github.com/aetheris/airline-platform/internal/config"
	"github.com/aetheris/airline-platform/internal/observability"
	"github.com/aetheris/airline-platform/internal/persistence"
	"github.com/aetheris/airline-platform/internal/repository"
	"github.com/aetheris/airline-platform/internal/service"
	"github.com/aetheris/airline-platform/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger, persistence.NotificationsSchema); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	notificationRepo := repository.NewNotificationRepository(pg.PoolHandle())
	notificationService := service.NewNotificationService(notificationRepo)

	consumer := worker.NewConsumer(redis.Client, notificationRepo, logger)
	go consumer.Run(ctx)

	codec := auth.NewTokenCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLSeconds)
	authMiddleware := auth.NewMiddleware(codec, auth.NotificationsRules(), cfg.Auth.InternalAPIKey, logger)

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterNotificationsRoutes(app, httptransport.NotificationsRoutes{
		Health:        handlers.NewHealthHandler(pg, redis),
		Notifications: handlers.NewNotificationsHandler(notificationService),
		Auth:          authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
