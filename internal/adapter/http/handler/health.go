package handler

import (
	"net/http"

	"github.com/Temutjin2k/rickshaw-analytics/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"
	"github.com/Temutjin2k/rickshaw-analytics/pkg/logger"
	wrap "github.com/Temutjin2k/rickshaw-analytics/pkg/logger/wrapper"
)

type Health struct {
	serviceName string
	provider    DatasetProvider
	log         logger.Logger
}

func NewHealth(serviceName string, provider DatasetProvider, log logger.Logger) *Health {
	return &Health{
		serviceName: serviceName,
		provider:    provider,
		log:         log,
	}
}

// HealthCheck godoc
// @Summary      Health Check
// @Description  Returns the health status of the service and the dataset provider state
// @Tags         Health
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /health [get]
// HealthCheck - returns system information.
func (a *Health) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionHealthCheck)

	response := envelope{
		"status": "available",
		"system_info": map[string]string{
			"service-name": a.serviceName,
		},
		"dataset": dto.NewDatasetState(a.provider.State(), a.provider.Source()),
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		a.log.Error(ctx, "healthcheck", err)
		return
	}
}
