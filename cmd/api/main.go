package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/erp-console/internal/api/http"
	"github.com/spec-kit/erp-console/internal/api/http/handlers"
	"github.com/spec-kit/erp-console/internal/config"
	"github.com/spec-kit/erp-console/internal/domain"
	"github.com/spec-kit/erp-console/internal/events"
	"github.com/spec-kit/erp-console/internal/observability"
	"github.com/spec-kit/erp-console/internal/persistence"
	"github.com/spec-kit/erp-console/internal/repository"
	"github.com/spec-kit/erp-console/internal/service"
	"github.com/spec-kit/erp-console/internal/ws"
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

	store, err := persistence.Open(cfg.Store, logger)
	if err != nil {
		logger.Fatal("failed to open store", zap.Error(err))
	}
	defer store.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	hub := ws.NewHub(logger)
	go hub.Run()
	for _, eventType := range []events.EventType{events.ResourceCreated, events.ResourceUpdated, events.ResourceDeleted} {
		dispatcher.Subscribe(eventType, hub.HandleResourceEvent)
		dispatcher.Subscribe(eventType, auditLog(logger))
	}

	resourceHandlers := make([]*handlers.ResourceHandler, 0, len(domain.All()))
	for _, resource := range domain.All() {
		repo := repository.NewResourceRepository(store, resource)
		svc := service.NewResourceService(resource, repo, dispatcher, logger)
		resourceHandlers = append(resourceHandlers, handlers.NewResourceHandler(svc))
	}

	dashboardService := service.NewDashboardService(repository.NewDashboardRepository(store))

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, store),
		Metrics:   handlers.NewMetricsHandler(metrics),
		Dashboard: handlers.NewDashboardHandler(dashboardService),
		Resources: resourceHandlers,
		Hub:       hub,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

// auditLog records every committed mutation.
func auditLog(logger *zap.Logger) events.EventHandler {
	return func(_ context.Context, event events.Event) error {
		logger.Info("resource changed",
			zap.String("resource", event.Resource),
			zap.String("action", event.Action()),
			zap.Int64("id", event.ID))
		return nil
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
