package main

import (
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
	"github.com/aetheris/airline-platform/internal/gateway"
	"github.com/aetheris/airline-platform/internal/observability"
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

	metrics := observability.NewMetrics()
	codec := auth.NewTokenCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLSeconds)
	verifier := auth.NewVerifier(codec, cfg.Auth.VerifyWorkers)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(nil, nil)
	app.Get("/health/live", healthHandler.Live)
	app.Get("/health/ready", healthHandler.Ready)

	router := gateway.New(verifier, cfg.Gateway, logger, metrics)
	router.Register(app)

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
