package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/gym-portal/internal/api/http"
	"github.com/spec-kit/gym-portal/internal/api/http/handlers"
	"github.com/spec-kit/gym-portal/internal/auth"
	"github.com/spec-kit/gym-portal/internal/config"
	"github.com/spec-kit/gym-portal/internal/events"
	"github.com/spec-kit/gym-portal/internal/facade"
	"github.com/spec-kit/gym-portal/internal/observability"
	"github.com/spec-kit/gym-portal/internal/persistence"
	"github.com/spec-kit/gym-portal/internal/session"
	"github.com/spec-kit/gym-portal/internal/worker"
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

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	store := session.NewStore(redis.Client, cfg.Session.IdleTimeout(), logger)
	cookies := auth.NewCookieManager(cfg.Auth)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(dispatcher, logger)

	metrics := observability.NewMetrics()
	facades := facade.NewFactory(cfg.Upstream, dispatcher)

	// The portal's own probes sit outside the upstream-protected
	// surface, so they join the public set here.
	public := append(auth.DefaultPublicRoutes(), "/health")
	gate := auth.NewGate(store, cookies, public, logger)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	app.Use(session.Middleware(cfg.Session, store))
	app.Use(gate.Handle)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redis, metrics),
		Auth:        handlers.NewAuthHandler(facades, cookies, cfg.Session),
		Users:       handlers.NewUsersHandler(facades),
		Clients:     handlers.NewClientsHandler(facades),
		Memberships: handlers.NewMembershipsHandler(facades),
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
