package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Temutjin2k/rickshaw-analytics/docs"
)

// setupRoutes - setups http routes
func setupRoutes(mux *http.ServeMux, routes *handlers) {
	// System Health
	mux.HandleFunc("GET /health", routes.health.HealthCheck)

	setupSwaggerRoutes(mux)
	setupMetricsRoute(mux)
	setupDashboardRoutes(mux, routes)
	setupAPIRoutes(mux, routes)
}

// setupDashboardRoutes setups the HTML pages, one per tab
func setupDashboardRoutes(mux *http.ServeMux, routes *handlers) {
	mux.HandleFunc("GET /{$}", routes.dashboard.Index)       // Default tab (summary)
	mux.HandleFunc("GET /tabs/{tab}", routes.dashboard.Tab) // Any tab by name
}

// setupAPIRoutes setups the JSON API
func setupAPIRoutes(mux *http.ServeMux, routes *handlers) {
	mux.HandleFunc("GET /api/v1/dataset", routes.api.GetDataset)    // Loaded document
	mux.HandleFunc("GET /api/v1/views/{tab}", routes.api.GetView) // Cards and chart options of one tab
}

// setupSwaggerRoutes configures Swagger UI endpoints
func setupSwaggerRoutes(mux *http.ServeMux) {
	swaggerURL := httpSwagger.InstanceName(docs.InstanceName)
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler(swaggerURL))
}

// setupMetricsRoute configures the Prometheus metrics endpoint
func setupMetricsRoute(mux *http.ServeMux) {
	mux.Handle("GET /metrics", promhttp.Handler())
}
