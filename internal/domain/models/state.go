package models

import "github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"

// Status is the provider lifecycle: loading -> ready | failed.
type Status string

func (s Status) String() string {
	return string(s)
}

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// State is a tagged union. Document and Digest are set only when Status is ready,
// Message and Kind only when it is failed.
type State struct {
	Status   Status
	Document *Document
	// Digest is the SHA-256 of the raw document body.
	Digest  string
	Message string
	Kind    types.FailureKind
}

func Loading() State {
	return State{Status: StatusLoading}
}

func Ready(doc *Document) State {
	return State{Status: StatusReady, Document: doc}
}

func Failed(kind types.FailureKind, message string) State {
	return State{Status: StatusFailed, Message: message, Kind: kind}
}

func (s State) IsReady() bool {
	return s.Status == StatusReady && s.Document != nil
}
