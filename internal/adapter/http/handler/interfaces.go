package handler

import (
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/models"
	"github.com/Temutjin2k/rickshaw-analytics/internal/service/dashboard"
)

type (
	// DatasetProvider exposes the current provider state.
	DatasetProvider interface {
		State() models.State
		Source() string
	}

	PageRenderer interface {
		Page(v dashboard.View) ([]byte, error)
		Loading() ([]byte, error)
		Failure(message string) ([]byte, error)
		NotFound(message string) ([]byte, error)
	}
)
