package types

import (
	"errors"
	"fmt"
)

var (
	ErrFetchFailed     = errors.New("Failed to fetch data")
	ErrInvalidDocument = errors.New("invalid dataset document")
	ErrNoSource        = errors.New("dataset source not configured")
	ErrUnknownTab      = errors.New("unknown dashboard tab")
	ErrNotReady        = errors.New("dataset is not loaded")
)

// FailureKind tells the two recognised dataset failures apart. The user only
// ever sees the message; the kind goes to logs and metrics.
type FailureKind string

func (k FailureKind) String() string {
	return string(k)
}

const (
	NetworkOrStatusError FailureKind = "network_or_status"
	ParseError           FailureKind = "parse"
)

// LoadError is returned by dataset sources and the provider.
type LoadError struct {
	Kind FailureKind
	Err  error
}

func (e *LoadError) Error() string {
	return e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewNetworkError wraps err as a retrieval failure.
func NewNetworkError(err error) *LoadError {
	return &LoadError{Kind: NetworkOrStatusError, Err: err}
}

// NewParseError wraps err as a decode failure of the document body.
func NewParseError(err error) *LoadError {
	return &LoadError{Kind: ParseError, Err: fmt.Errorf("%w: %w", ErrInvalidDocument, err)}
}

// KindOf returns the failure kind carried by err, defaulting to a network failure.
func KindOf(err error) FailureKind {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Kind
	}
	return NetworkOrStatusError
}
