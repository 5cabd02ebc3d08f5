package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/rickshaw-analytics/internal/adapter/http/view"
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/models"
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"
	"github.com/Temutjin2k/rickshaw-analytics/pkg/logger"
)

type stubProvider struct {
	state models.State
}

func (s *stubProvider) State() models.State { return s.state }
func (s *stubProvider) Source() string      { return "testdata/data.json" }

func testDocument() *models.Document {
	return &models.Document{
		Summary: models.Summary{
			TotalSearches: 1000, TotalQuotes: 650, TotalRecords: 1200,
			Completed: 700, Cancelled: 300, Active: 200, OverallConversionRate: 65,
		},
		HourlyData: []models.HourlyRecord{
			{Hour: 8, Funnel: models.Funnel{TotalSearches: 100, QuotesReceived: 60, ConversionRate: 60}},
		},
		PickupDistanceData: []models.PickupBucket{
			{PickupRange: "0-500m", Funnel: models.Funnel{TotalSearches: 200, QuotesReceived: 40, ConversionRate: 55.5}},
		},
	}
}

func newMux(t *testing.T, state models.State) *http.ServeMux {
	t.Helper()

	pages, err := view.New(view.WithClock(func() time.Time {
		return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	}))
	require.NoError(t, err)

	provider := &stubProvider{state: state}
	log := logger.Discard()

	dash := NewDashboard(provider, pages, log)
	api := NewAPI(provider, log)
	health := NewHealth("rickshaw-dashboard", provider, log)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", dash.Index)
	mux.HandleFunc("GET /tabs/{tab}", dash.Tab)
	mux.HandleFunc("GET /api/v1/dataset", api.GetDataset)
	mux.HandleFunc("GET /api/v1/views/{tab}", api.GetView)
	mux.HandleFunc("GET /health", health.HealthCheck)
	return mux
}

func get(mux http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestDashboard_Ready(t *testing.T) {
	mux := newMux(t, models.Ready(testDocument()))

	rec := get(mux, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Summary Statistics")

	rec = get(mux, "/tabs/hourly")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hourly Analysis")
	assert.Contains(t, rec.Body.String(), `aria-current="page" href="/tabs/hourly"`)
}

func TestDashboard_NavigationRoundTripIsByteIdentical(t *testing.T) {
	mux := newMux(t, models.Ready(testDocument()))

	first := get(mux, "/tabs/summary").Body.Bytes()
	get(mux, "/tabs/hourly")
	again := get(mux, "/tabs/summary").Body.Bytes()

	assert.Equal(t, first, again)
	assert.Equal(t, first, get(mux, "/").Body.Bytes())
}

func TestDashboard_Failed(t *testing.T) {
	mux := newMux(t, models.Failed(types.NetworkOrStatusError, "Failed to fetch data"))

	for _, path := range []string{"/", "/tabs/hourly", "/tabs/pickup"} {
		rec := get(mux, path)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code, path)

		body := rec.Body.String()
		assert.Contains(t, body, "Error loading data")
		assert.Contains(t, body, "Failed to fetch data")
		assert.NotContains(t, body, "echarts")
		assert.NotContains(t, body, "navbar")
	}
}

func TestDashboard_Loading(t *testing.T) {
	mux := newMux(t, models.Loading())

	rec := get(mux, "/")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "Loading data...")
}

func TestDashboard_UnknownTab(t *testing.T) {
	mux := newMux(t, models.Ready(testDocument()))

	rec := get(mux, "/tabs/weekly")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestAPI_GetView(t *testing.T) {
	mux := newMux(t, models.Ready(testDocument()))

	rec := get(mux, "/api/v1/views/pickup")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		View struct {
			Tab    string `json:"tab"`
			Label  string `json:"label"`
			Panels []struct {
				ID      string          `json:"id"`
				Format  string          `json:"format"`
				Options json.RawMessage `json:"options"`
			} `json:"panels"`
			Insights []struct {
				Title string `json:"title"`
			} `json:"insights"`
		} `json:"view"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "pickup", resp.View.Tab)
	assert.Equal(t, "By Pickup Distance", resp.View.Label)
	require.Len(t, resp.View.Panels, 3)
	assert.Equal(t, "pickup-rate", resp.View.Panels[1].ID)
	assert.Equal(t, "percent", resp.View.Panels[1].Format)
	var options bytes.Buffer
	require.NoError(t, json.Compact(&options, resp.View.Panels[1].Options))
	assert.Contains(t, options.String(), `"value":20`)
	require.Len(t, resp.View.Insights, 1)
}

func TestAPI_GetViewErrors(t *testing.T) {
	rec := get(newMux(t, models.Ready(testDocument())), "/api/v1/views/weekly")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(newMux(t, models.Loading()), "/api/v1/views/summary")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("Retry-After"))
}

func TestAPI_GetDataset(t *testing.T) {
	rec := get(newMux(t, models.Ready(testDocument())), "/api/v1/dataset")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Dataset models.Document `json:"dataset"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 650, resp.Dataset.Summary.TotalQuotes)
	// stored values are served unchanged
	assert.Equal(t, 55.5, resp.Dataset.PickupDistanceData[0].ConversionRate)

	rec = get(newMux(t, models.Failed(types.ParseError, "invalid dataset document: unexpected end of JSON input")), "/api/v1/dataset")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "unexpected end of JSON input")
	assert.Contains(t, rec.Body.String(), `"kind": "parse"`)
}

func TestHealthCheck(t *testing.T) {
	rec := get(newMux(t, models.Loading()), "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status  string `json:"status"`
		Dataset struct {
			Status string `json:"status"`
			Source string `json:"source"`
		} `json:"dataset"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "available", resp.Status)
	assert.Equal(t, "loading", resp.Dataset.Status)
	assert.Equal(t, "testdata/data.json", resp.Dataset.Source)
}

func TestGetCode(t *testing.T) {
	_, err := types.ParseTab("weekly")
	assert.Equal(t, http.StatusNotFound, GetCode(err))
	assert.Equal(t, http.StatusServiceUnavailable, GetCode(types.ErrNotReady))
	assert.Equal(t, http.StatusServiceUnavailable, GetCode(types.NewParseError(assert.AnError)))
	assert.Equal(t, http.StatusInternalServerError, GetCode(assert.AnError))
}

func TestAPI_GetDatasetETag(t *testing.T) {
	state := models.Ready(testDocument())
	state.Digest = "abc123"
	mux := newMux(t, state)

	rec := get(mux, "/api/v1/dataset")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"abc123"`, rec.Header().Get("ETag"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dataset", nil)
	req.Header.Set("If-None-Match", `"abc123"`)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())
}
