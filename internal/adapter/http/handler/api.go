package handler

import (
	"net/http"

	"github.com/Temutjin2k/rickshaw-analytics/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/models"
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"
	"github.com/Temutjin2k/rickshaw-analytics/internal/service/dashboard"
	"github.com/Temutjin2k/rickshaw-analytics/pkg/hasher"
	"github.com/Temutjin2k/rickshaw-analytics/pkg/logger"
	wrap "github.com/Temutjin2k/rickshaw-analytics/pkg/logger/wrapper"
	"github.com/Temutjin2k/rickshaw-analytics/pkg/metrics"
)

// API serves the dataset and the view models as JSON.
type API struct {
	provider DatasetProvider
	log      logger.Logger
}

func NewAPI(provider DatasetProvider, log logger.Logger) *API {
	return &API{
		provider: provider,
		log:      log,
	}
}

// GetDataset godoc
// @Summary      Get dataset
// @Description  Returns the loaded dataset document unchanged
// @Tags         Dataset
// @Produce      json
// @Param        If-None-Match  header  string  false  "Digest of a previously fetched dataset"
// @Success      200  {object}  models.Document
// @Success      304
// @Failure      503  {object}  dto.DatasetState
// @Router       /api/v1/dataset [get]
func (h *API) GetDataset(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionGetDataset)

	state := h.provider.State()
	if !state.IsReady() {
		h.notReady(w, state)
		return
	}

	var headers http.Header
	if etag := hasher.ETag(state.Digest); etag != "" {
		if r.Header.Get("If-None-Match") == etag {
			w.Header().Set("ETag", etag)
			w.WriteHeader(http.StatusNotModified)
			return
		}
		headers = http.Header{"Etag": []string{etag}}
	}

	if err := writeJSON(w, http.StatusOK, envelope{"dataset": state.Document}, headers); err != nil {
		h.log.Error(ctx, "failed to write response", err)
		internalErrorResponse(w, "failed to write response")
	}
}

// GetView godoc
// @Summary      Get dashboard view
// @Description  Returns the cards, chart option trees and insights of one dashboard tab
// @Tags         Views
// @Produce      json
// @Param        tab  path      string  true  "Tab"  Enums(summary, hourly, distance, fare, pickup)
// @Success      200  {object}  dto.ViewResponse
// @Failure      404  {object}  map[string]string
// @Failure      503  {object}  dto.DatasetState
// @Router       /api/v1/views/{tab} [get]
func (h *API) GetView(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionRenderAPIView)

	tab, err := types.ParseTab(r.PathValue("tab"))
	if err != nil {
		errorResponse(w, GetCode(err), err.Error())
		return
	}
	ctx = wrap.WithTab(ctx, tab.String())

	state := h.provider.State()
	if !state.IsReady() {
		h.notReady(w, state)
		return
	}

	v, err := dashboard.Build(tab, state.Document)
	if err != nil {
		h.log.Error(wrap.ErrorCtx(ctx, err), "failed to build view", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	resp, err := dto.NewViewResponse(v)
	if err != nil {
		h.log.Error(ctx, "failed to encode charts", err)
		internalErrorResponse(w, "failed to encode charts")
		return
	}
	metrics.RecordViewRender(tab.String(), "json")

	if err := writeJSON(w, http.StatusOK, envelope{"view": resp}, nil); err != nil {
		h.log.Error(ctx, "failed to write response", err)
		internalErrorResponse(w, "failed to write response")
	}
}

func (h *API) notReady(w http.ResponseWriter, state models.State) {
	ds := dto.NewDatasetState(state, h.provider.Source())
	env := envelope{"error": types.ErrNotReady.Error(), "dataset": ds}
	if state.Status == models.StatusFailed {
		env["error"] = state.Message
	}
	notLoadedResponse(w, state.Status == models.StatusLoading, env)
}
