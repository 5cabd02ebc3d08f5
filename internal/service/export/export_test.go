package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/rickshaw-analytics/internal/adapter/http/view"
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/models"
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"
	"github.com/Temutjin2k/rickshaw-analytics/pkg/logger"
)

func newExporter(t *testing.T) *Exporter {
	t.Helper()

	pages, err := view.New(view.WithStaticLinks())
	require.NoError(t, err)

	e := New(pages, logger.Discard())
	e.now = func() time.Time { return time.Date(2024, time.May, 5, 10, 0, 0, 0, time.UTC) }
	return e
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	doc := &models.Document{
		Summary: models.Summary{TotalSearches: 200, TotalQuotes: 40},
		PickupDistanceData: []models.PickupBucket{
			{PickupRange: "0-500m", Funnel: models.Funnel{TotalSearches: 200, QuotesReceived: 40, ConversionRate: 55.5}},
		},
	}

	state := models.Ready(doc)
	state.Digest = "d1g3st"
	require.NoError(t, newExporter(t).Export(context.Background(), state, "public/data.json", dir))

	for _, tab := range types.AllTabs {
		body, err := os.ReadFile(filepath.Join(dir, FileName(tab)))
		require.NoError(t, err, tab)
		assert.Contains(t, string(body), `href="index.html"`)
	}

	raw, err := os.ReadFile(filepath.Join(dir, ChartsJSONFile))
	require.NoError(t, err)

	var out chartsFile
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.Equal(t, "public/data.json", out.Source)
	assert.Equal(t, "d1g3st", out.Digest)
	assert.Equal(t, "2024-05-05T10:00:00Z", out.LastUpdated)
	require.Len(t, out.Tabs, len(types.AllTabs))
	for i, tab := range types.AllTabs {
		assert.Equal(t, tab, out.Tabs[i].Tab)
		assert.NotEmpty(t, out.Tabs[i].Charts, tab)
	}
	assert.Equal(t, "summary-status", out.Tabs[0].Charts[0].ID)
	assert.Equal(t, types.FormatPercent, out.Tabs[4].Charts[1].Format)
}

func TestExport_NoDocument(t *testing.T) {
	err := newExporter(t).Export(context.Background(), models.Loading(), "public/data.json", t.TempDir())
	assert.ErrorIs(t, err, types.ErrNotReady)

	err = newExporter(t).Export(context.Background(), models.Failed(types.ParseError, "bad"), "public/data.json", t.TempDir())
	assert.ErrorIs(t, err, types.ErrNotReady)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "index.html", FileName(types.TabSummary))
	assert.Equal(t, "hourly.html", FileName(types.TabHourly))
}
