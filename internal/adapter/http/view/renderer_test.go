package view

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/models"
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"
	"github.com/Temutjin2k/rickshaw-analytics/internal/service/dashboard"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
}

func newRenderer(t *testing.T, options ...Option) *Renderer {
	t.Helper()
	r, err := New(append([]Option{WithClock(fixedClock)}, options...)...)
	require.NoError(t, err)
	return r
}

func summaryView() dashboard.View {
	return dashboard.SummaryView(models.Summary{
		TotalSearches:         12345,
		TotalQuotes:           6000,
		TotalRecords:          13000,
		Completed:             5000,
		Cancelled:             800,
		Active:                200,
		OverallConversionRate: 48.6027,
	})
}

func TestRenderer_Page(t *testing.T) {
	r := newRenderer(t)

	body, err := r.Page(summaryView())
	require.NoError(t, err)
	html := string(body)

	// navigation in order, summary active
	labels := []string{"Summary", "By Hour", "By Distance", "By Fare", "By Pickup Distance"}
	last := -1
	for _, l := range labels {
		idx := strings.Index(html, ">"+l+"</a>")
		require.Greater(t, idx, last, l)
		last = idx
	}
	assert.Contains(t, html, `class="nav-link active" aria-current="page" href="/">Summary</a>`)
	assert.Contains(t, html, `href="/tabs/hourly">By Hour</a>`)

	assert.Contains(t, html, "Summary Statistics")
	assert.Contains(t, html, "12,345")
	assert.Contains(t, html, "48.60%")
	assert.Contains(t, html, `id="summary-status"`)
	assert.Contains(t, html, `id="summary-quotes"`)
	assert.Contains(t, html, "echarts.min.js")
	assert.Contains(t, html, "&copy; 2024")
}

func TestRenderer_PageIsDeterministic(t *testing.T) {
	r := newRenderer(t)
	doc := &models.Document{Summary: models.Summary{TotalSearches: 10, TotalQuotes: 4}}

	render := func(tab types.Tab) []byte {
		v, err := dashboard.Build(tab, doc)
		require.NoError(t, err)
		body, err := r.Page(v)
		require.NoError(t, err)
		return body
	}

	first := render(types.TabSummary)
	_ = render(types.TabHourly)
	assert.Equal(t, first, render(types.TabSummary))
}

func TestRenderer_Failure(t *testing.T) {
	r := newRenderer(t)

	body, err := r.Failure("Failed to fetch data")
	require.NoError(t, err)
	html := string(body)

	assert.Contains(t, html, "Error loading data")
	assert.Contains(t, html, "Failed to fetch data")
	assert.Contains(t, html, "data generation script")
	assert.NotContains(t, html, "echarts")
	assert.NotContains(t, html, `class="chart"`)
	assert.NotContains(t, html, "navbar")
}

func TestRenderer_FailureEscapesMessage(t *testing.T) {
	r := newRenderer(t)

	body, err := r.Failure("<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, string(body), "<script>alert(1)</script>")
}

func TestRenderer_Loading(t *testing.T) {
	r := newRenderer(t)

	body, err := r.Loading()
	require.NoError(t, err)
	html := string(body)

	assert.Contains(t, html, "Loading data...")
	assert.Contains(t, html, `http-equiv="refresh" content="2"`)
	assert.NotContains(t, html, "echarts")
}

func TestRenderer_StaticLinks(t *testing.T) {
	r := newRenderer(t, WithStaticLinks(), WithTitle("Rickshaw Funnel"), WithAssetsHost("assets/"))

	assert.Equal(t, "index.html", r.Href(types.TabSummary))
	assert.Equal(t, "pickup.html", r.Href(types.TabPickup))

	body, err := r.Page(summaryView())
	require.NoError(t, err)
	html := string(body)

	assert.Contains(t, html, `href="fare.html">By Fare</a>`)
	assert.Contains(t, html, `src="assets/echarts.min.js"`)
	assert.Contains(t, html, "<title>Rickshaw Funnel</title>")
}
