package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Temutjin2k/rickshaw-analytics/config"
	"github.com/Temutjin2k/rickshaw-analytics/internal/adapter/dataset"
	httpserver "github.com/Temutjin2k/rickshaw-analytics/internal/adapter/http/server"
	"github.com/Temutjin2k/rickshaw-analytics/internal/adapter/http/view"
	"github.com/Temutjin2k/rickshaw-analytics/internal/service/provider"
	"github.com/Temutjin2k/rickshaw-analytics/pkg/logger"
	wrap "github.com/Temutjin2k/rickshaw-analytics/pkg/logger/wrapper"
)

type App struct {
	provider   *provider.Provider
	httpServer *httpserver.API

	cfg config.Config
	log logger.Logger
}

// NewApplication wires the dataset source, the provider, the page renderer and the HTTP server.
// Nothing is fetched until Run.
func NewApplication(ctx context.Context, cfg config.Config, log logger.Logger) (*App, error) {
	source, err := dataset.New(cfg.Dataset.Source, &http.Client{})
	if err != nil {
		return nil, fmt.Errorf("failed to init dataset source: %w", err)
	}

	prov := provider.New(source, log)

	pages, err := view.New(
		view.WithTitle(cfg.Dashboard.Title),
		view.WithAssetsHost(cfg.Dashboard.AssetsHost),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to init page renderer: %w", err)
	}

	server, err := httpserver.New(cfg, prov, pages, log)
	if err != nil {
		return nil, fmt.Errorf("failed to init http server: %w", err)
	}

	return &App{
		provider:   prov,
		httpServer: server,
		cfg:        cfg,
		log:        log,
	}, nil
}

// Run starts the dataset retrieval and the HTTP server, then blocks until
// a shutdown signal, a server error or ctx cancellation.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		a.close(ctx)
		a.log.Info(ctx, "dashboard service closed")
	}()

	a.provider.Start(ctx)

	errCh := make(chan error, 1)
	a.httpServer.Run(ctx, errCh)

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	a.log.Info(ctx, "service started", "dataset", a.provider.Source())
	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		a.log.Info(ctx, "shuting down application", "signal", sig.String())
		return nil
	case <-ctx.Done():
		return nil
	}
}

func (a *App) close(ctx context.Context) {
	ctx = wrap.WithAction(context.WithoutCancel(ctx), "app_close")
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout+time.Second)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error(ctx, "failed to shutdown HTTP server", err)
	}
}
