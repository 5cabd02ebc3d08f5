package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/models"
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"
	"github.com/Temutjin2k/rickshaw-analytics/internal/service/dashboard"
	"github.com/Temutjin2k/rickshaw-analytics/pkg/logger"
	wrap "github.com/Temutjin2k/rickshaw-analytics/pkg/logger/wrapper"
	"github.com/Temutjin2k/rickshaw-analytics/pkg/metrics"
)

// Dashboard serves the HTML pages.
type Dashboard struct {
	provider DatasetProvider
	pages    PageRenderer
	log      logger.Logger
}

func NewDashboard(provider DatasetProvider, pages PageRenderer, log logger.Logger) *Dashboard {
	return &Dashboard{
		provider: provider,
		pages:    pages,
		log:      log,
	}
}

// Index renders the default tab.
func (h *Dashboard) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "")
}

// Tab renders the tab named in the path.
func (h *Dashboard) Tab(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, r.PathValue("tab"))
}

func (h *Dashboard) render(w http.ResponseWriter, r *http.Request, selector string) {
	ctx := wrap.WithAction(r.Context(), types.ActionRenderView)

	router := dashboard.NewRouter()
	tab, err := types.ParseTab(selector)
	if err == nil {
		err = router.Select(tab)
	}
	if err != nil {
		h.log.Debug(ctx, "unknown tab requested", "selector", selector)
		h.write(ctx, w, http.StatusNotFound, nil, func() ([]byte, error) {
			return h.pages.NotFound(err.Error())
		})
		return
	}
	ctx = wrap.WithTab(ctx, tab.String())

	state := h.provider.State()
	switch state.Status {
	case models.StatusLoading:
		headers := http.Header{"Retry-After": []string{strconv.Itoa(retryAfter)}}
		h.write(ctx, w, http.StatusServiceUnavailable, headers, h.pages.Loading)
		return
	case models.StatusFailed:
		h.write(ctx, w, http.StatusServiceUnavailable, nil, func() ([]byte, error) {
			return h.pages.Failure(state.Message)
		})
		return
	}

	h.write(ctx, w, http.StatusOK, nil, func() ([]byte, error) {
		v, err := router.Render(state.Document)
		if err != nil {
			return nil, err
		}
		body, err := h.pages.Page(v)
		if err == nil {
			metrics.RecordViewRender(tab.String(), "html")
		}
		return body, err
	})
}

func (h *Dashboard) write(ctx context.Context, w http.ResponseWriter, status int, headers http.Header, render func() ([]byte, error)) {
	body, err := render()
	if err != nil {
		h.log.Error(wrap.ErrorCtx(ctx, err), "failed to render page", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	writeHTML(w, status, body, headers)
}
