// Package view renders dashboard pages as HTML.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"
	"github.com/Temutjin2k/rickshaw-analytics/internal/service/dashboard"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	DefaultTitle      = "Chennai Auto-Rickshaw Analytics"
	DefaultBrand      = "Chennai auto-rickshaw"
	DefaultAssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

	// loadingRefresh is the meta refresh interval of the loading page, in seconds.
	loadingRefresh = 2
)

type Renderer struct {
	tmpl       *template.Template
	title      string
	brand      string
	assetsHost string
	static     bool
	now        func() time.Time
}

type Option func(*Renderer)

// WithClock replaces time.Now, used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

func WithAssetsHost(host string) Option {
	return func(r *Renderer) {
		if host != "" {
			r.assetsHost = host
		}
	}
}

// WithStaticLinks points the navigation at exported files (index.html, hourly.html, ...)
// instead of server routes.
func WithStaticLinks() Option {
	return func(r *Renderer) {
		r.static = true
	}
}

func WithTitle(title string) Option {
	return func(r *Renderer) {
		if title != "" {
			r.title = title
		}
	}
}

func New(options ...Option) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := &Renderer{
		tmpl:       tmpl,
		title:      DefaultTitle,
		brand:      DefaultBrand,
		assetsHost: DefaultAssetsHost,
		now:        time.Now,
	}
	for _, opt := range options {
		opt(r)
	}

	return r, nil
}

type page struct {
	Title      string
	Brand      string
	AssetsHost string
	Year       int
	Refresh    int
	Home       string
	Tabs       []navItem
	Loading    bool
	Failure    string
	NotFound   string
	View       *viewData
}

type navItem struct {
	Label  string
	Href   string
	Active bool
}

type viewData struct {
	Heading     string
	Description string
	Cards       []dashboard.Card
	Blocks      []dashboard.Block
	Charts      []chartScript
}

type chartScript struct {
	ID      string
	Format  types.ValueFormat
	Options template.JS
}

// Href is the page address of a tab.
func (r *Renderer) Href(tab types.Tab) string {
	switch {
	case r.static && tab == types.DefaultTab:
		return "index.html"
	case r.static:
		return tab.String() + ".html"
	case tab == types.DefaultTab:
		return "/"
	default:
		return "/tabs/" + tab.String()
	}
}

func (r *Renderer) base() page {
	return page{
		Title:      r.title,
		Brand:      r.brand,
		AssetsHost: r.assetsHost,
		Year:       r.now().Year(),
		Home:       r.Href(types.DefaultTab),
	}
}

func (r *Renderer) nav(active types.Tab) []navItem {
	items := make([]navItem, len(types.AllTabs))
	for i, tab := range types.AllTabs {
		items[i] = navItem{
			Label:  tab.Label(),
			Href:   r.Href(tab),
			Active: tab == active,
		}
	}
	return items
}

// Page renders the full dashboard with v as the active view.
func (r *Renderer) Page(v dashboard.View) ([]byte, error) {
	data := &viewData{
		Heading:     v.Heading,
		Description: v.Description,
		Cards:       v.Cards,
		Blocks:      v.Blocks,
	}

	for _, p := range v.Panels() {
		js, err := p.Options()
		if err != nil {
			return nil, err
		}
		data.Charts = append(data.Charts, chartScript{
			ID:      p.ID,
			Format:  p.Format,
			Options: template.JS(js),
		})
	}

	pg := r.base()
	pg.Tabs = r.nav(v.Tab)
	pg.View = data

	return r.execute(pg)
}

// Loading renders the placeholder shown while the dataset is being retrieved.
// The page reloads itself until the provider settles.
func (r *Renderer) Loading() ([]byte, error) {
	pg := r.base()
	pg.Loading = true
	pg.Refresh = loadingRefresh
	return r.execute(pg)
}

// Failure renders the error panel with the raw failure message. No chart content is included.
func (r *Renderer) Failure(message string) ([]byte, error) {
	pg := r.base()
	pg.Failure = message
	return r.execute(pg)
}

// NotFound renders the navigation with a notice for an unknown tab.
func (r *Renderer) NotFound(message string) ([]byte, error) {
	pg := r.base()
	pg.Tabs = r.nav("")
	pg.NotFound = message
	return r.execute(pg)
}

func (r *Renderer) execute(pg page) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "layout", pg); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}
