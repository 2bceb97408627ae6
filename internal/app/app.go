package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/insurance-backend/internal/config"
	httpserver "github.com/yungbote/insurance-backend/internal/http"
	"github.com/yungbote/insurance-backend/internal/observability"
	"github.com/yungbote/insurance-backend/internal/platform/logger"
	"github.com/yungbote/insurance-backend/internal/seed"
)

type App struct {
	Log     *logger.Logger
	Config  *config.Config
	Metrics *observability.Metrics
	Router  *gin.Engine

	server       *http.Server
	otelShutdown func(context.Context) error
}

func NewVehicle() (*App, error) { return New(config.ServiceVehicle) }

func NewInsurance() (*App, error) { return New(config.ServiceInsurance) }

// New loads configuration and seed data and wires one service. Any invalid configuration or
// seed record aborts startup.
func New(service config.Service) (*App, error) {
	cfg, err := config.Load(service)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	baseLog, err := logger.New(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	log := baseLog.With("service_name", cfg.ServiceName)

	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: cfg.ServiceName,
		Environment: cfg.Env,
		Version:     cfg.Version,
	})

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics(cfg.ServiceName)
	}

	data, err := seed.Load(cfg.SeedPath)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("load seed: %w", err)
	}

	svcs, err := wireServices(service, cfg, log, metrics, data)
	if err != nil {
		log.Sync()
		return nil, err
	}

	if cfg.Env == "prod" || cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := wireRouter(cfg, log, metrics, wireHandlers(cfg, svcs))

	return &App{
		Log:          log,
		Config:       cfg,
		Metrics:      metrics,
		Router:       router,
		server:       httpserver.NewServer(cfg, router),
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves until ctx is cancelled or the listener fails, then drains in-flight requests
// within the configured shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("HTTP server listening", "addr", a.Config.HTTP.Addr)
		errCh <- a.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		a.Log.Info("shutting down", "timeout", a.Config.HTTP.ShutdownTimeout.Duration.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.HTTP.ShutdownTimeout.Duration)
		defer cancel()
		err := a.server.Shutdown(shutdownCtx)
		a.close(shutdownCtx)
		return err
	case err := <-errCh:
		a.close(context.Background())
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (a *App) close(ctx context.Context) {
	if a.otelShutdown != nil {
		flushCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := a.otelShutdown(flushCtx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	a.Log.Sync()
}
