package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/rickshaw-analytics/config"
	"github.com/Temutjin2k/rickshaw-analytics/internal/adapter/http/middleware"
	"github.com/Temutjin2k/rickshaw-analytics/internal/adapter/http/view"
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/models"
	"github.com/Temutjin2k/rickshaw-analytics/pkg/logger"
)

type readyProvider struct{}

func (readyProvider) State() models.State {
	return models.Ready(&models.Document{Summary: models.Summary{TotalSearches: 10, TotalQuotes: 5}})
}

func (readyProvider) Source() string { return "memory" }

func newTestAPI(t *testing.T) http.Handler {
	t.Helper()

	pages, err := view.New()
	require.NoError(t, err)

	cfg := config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 3000},
		Log:    config.LogConfig{Level: logger.LevelInfo, Service: "rickshaw-dashboard"},
	}

	api, err := New(cfg, readyProvider{}, pages, logger.Discard())
	require.NoError(t, err)
	return api.Handler()
}

func TestRoutes(t *testing.T) {
	h := newTestAPI(t)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/tabs/fare", http.StatusOK},
		{http.MethodGet, "/tabs/unknown", http.StatusNotFound},
		{http.MethodGet, "/api/v1/views/distance", http.StatusOK},
		{http.MethodGet, "/api/v1/dataset", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/swagger/doc.json", http.StatusOK},
		{http.MethodGet, "/nope", http.StatusNotFound},
		{http.MethodPost, "/", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	h := newTestAPI(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	_, err := uuid.Parse(rec.Header().Get(middleware.RequestIDHeader))
	assert.NoError(t, err)

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, id)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get(middleware.RequestIDHeader))
}

func TestSwaggerDoc(t *testing.T) {
	h := newTestAPI(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rickshaw Analytics Dashboard API")
	assert.Contains(t, rec.Body.String(), "/api/v1/views/{tab}")
}
