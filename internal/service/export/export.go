// Package export writes a static copy of the dashboard: one HTML page per tab
// and a charts.json with every chart option tree.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/models"
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"
	"github.com/Temutjin2k/rickshaw-analytics/internal/service/dashboard"
	"github.com/Temutjin2k/rickshaw-analytics/pkg/logger"
	wrap "github.com/Temutjin2k/rickshaw-analytics/pkg/logger/wrapper"
)

const (
	ChartsJSONFile  = "charts.json"
	DirPermissions  = 0o755
	FilePermissions = 0o644
)

type PageRenderer interface {
	Page(v dashboard.View) ([]byte, error)
}

type Exporter struct {
	pages PageRenderer
	log   logger.Logger
	now   func() time.Time
}

func New(pages PageRenderer, log logger.Logger) *Exporter {
	return &Exporter{
		pages: pages,
		log:   log,
		now:   time.Now,
	}
}

type chartsFile struct {
	Source      string     `json:"source"`
	Digest      string     `json:"digest,omitempty"`
	LastUpdated string     `json:"lastUpdated"`
	Tabs        []tabChart `json:"tabs"`
}

type tabChart struct {
	Tab    types.Tab    `json:"tab"`
	Label  string       `json:"label"`
	Charts []chartEntry `json:"charts"`
}

type chartEntry struct {
	ID      string            `json:"id"`
	Title   string            `json:"title"`
	Format  types.ValueFormat `json:"format"`
	Options json.RawMessage   `json:"options"`
}

// FileName is the exported page name of a tab.
func FileName(tab types.Tab) string {
	if tab == types.DefaultTab {
		return "index.html"
	}
	return tab.String() + ".html"
}

// Export writes every tab of a ready dataset into dir. The pages are written
// concurrently; charts.json is written once all views were built.
func (e *Exporter) Export(ctx context.Context, state models.State, source, dir string) error {
	ctx = wrap.WithLogCtx(ctx, wrap.LogCtx{Action: types.ActionExportDashboard, Source: source})

	if !state.IsReady() {
		return wrap.Error(ctx, types.ErrNotReady)
	}
	doc := state.Document
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return wrap.Error(ctx, fmt.Errorf("create output dir: %w", err))
	}

	tabs := make([]tabChart, len(types.AllTabs))
	eg, egCtx := errgroup.WithContext(ctx)

	for i, tab := range types.AllTabs {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			entry, err := e.exportTab(wrap.WithTab(egCtx, tab.String()), tab, doc, dir)
			if err != nil {
				return err
			}
			tabs[i] = entry
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return wrap.Error(ctx, err)
	}

	out := chartsFile{
		Source:      source,
		Digest:      state.Digest,
		LastUpdated: e.now().UTC().Format(time.RFC3339),
		Tabs:        tabs,
	}

	js, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return wrap.Error(ctx, fmt.Errorf("encode %s: %w", ChartsJSONFile, err))
	}
	if err := os.WriteFile(filepath.Join(dir, ChartsJSONFile), js, FilePermissions); err != nil {
		return wrap.Error(ctx, fmt.Errorf("write %s: %w", ChartsJSONFile, err))
	}

	e.log.Info(ctx, "dashboard exported", "dir", dir, "tabs", len(tabs))
	return nil
}

func (e *Exporter) exportTab(ctx context.Context, tab types.Tab, doc *models.Document, dir string) (tabChart, error) {
	v, err := dashboard.Build(tab, doc)
	if err != nil {
		return tabChart{}, err
	}

	entry := tabChart{Tab: tab, Label: tab.Label(), Charts: []chartEntry{}}
	for _, p := range v.Panels() {
		js, err := p.Options()
		if err != nil {
			return tabChart{}, err
		}
		entry.Charts = append(entry.Charts, chartEntry{ID: p.ID, Title: p.Title, Format: p.Format, Options: js})
	}

	page, err := e.pages.Page(v)
	if err != nil {
		return tabChart{}, err
	}

	path := filepath.Join(dir, FileName(tab))
	if err := os.WriteFile(path, page, FilePermissions); err != nil {
		return tabChart{}, fmt.Errorf("write %s: %w", path, err)
	}

	e.log.Debug(ctx, "tab exported", "file", path, "charts", len(entry.Charts))
	return entry, nil
}
