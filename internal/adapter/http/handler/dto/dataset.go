package dto

import (
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/models"
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"
)

// DatasetState is the provider state as reported by the API and health check.
type DatasetState struct {
	Status models.Status     `json:"status"`
	Source string            `json:"source"`
	Digest string            `json:"digest,omitempty"`
	Error  string            `json:"error,omitempty"`
	Kind   types.FailureKind `json:"kind,omitempty"`
}

func NewDatasetState(s models.State, source string) DatasetState {
	return DatasetState{
		Status: s.Status,
		Source: source,
		Digest: s.Digest,
		Error:  s.Message,
		Kind:   s.Kind,
	}
}
