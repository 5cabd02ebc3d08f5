package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Temutjin2k/rickshaw-analytics/config"
	"github.com/Temutjin2k/rickshaw-analytics/internal/adapter/http/handler"
	"github.com/Temutjin2k/rickshaw-analytics/internal/adapter/http/middleware"
	"github.com/Temutjin2k/rickshaw-analytics/pkg/logger"
	wrap "github.com/Temutjin2k/rickshaw-analytics/pkg/logger/wrapper"
)

type API struct {
	mux    *http.ServeMux
	server *http.Server
	routes *handlers // routes/handlers
	m      *middleware.Middleware

	addr string
	cfg  config.Config
	log  logger.Logger
}

type handlers struct {
	dashboard *handler.Dashboard
	api       *handler.API
	health    *handler.Health
}

func New(
	cfg config.Config,
	provider handler.DatasetProvider,
	pages handler.PageRenderer,
	logger logger.Logger,
) (*API, error) {
	if provider == nil {
		return nil, errors.New("dataset provider is required")
	}
	if pages == nil {
		return nil, errors.New("page renderer is required")
	}

	handlers := &handlers{
		dashboard: handler.NewDashboard(provider, pages, logger),
		api:       handler.NewAPI(provider, logger),
		health:    handler.NewHealth(cfg.Log.Service, provider, logger),
	}

	api := &API{
		mux:    http.NewServeMux(),
		routes: handlers,
		m:      middleware.NewMiddleware(cfg.Log.Service, logger),
		addr:   cfg.Server.Addr(),
		cfg:    cfg,
		log:    logger,
	}

	setupRoutes(api.mux, api.routes)

	api.server = &http.Server{
		Addr:         api.addr,
		Handler:      api.withMiddleware(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return api, nil
}

// Handler returns the mux with the middleware chain applied.
func (a *API) Handler() http.Handler {
	return a.server.Handler
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
	}()
}

// withMiddleware applies middlewares to the mux
func (a *API) withMiddleware() http.Handler {
	return a.m.Recover(a.m.RequestID(a.m.Logging(a.m.Metrics(a.mux))))
}
