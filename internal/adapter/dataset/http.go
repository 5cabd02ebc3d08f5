package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"
)

// HTTP retrieves the document with a single GET. No retries, no timeout
// beyond the caller's context.
type HTTP struct {
	url    string
	client *http.Client
}

func NewHTTP(url string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{url: url, client: client}
}

func (h *HTTP) Name() string {
	return h.url
}

func (h *HTTP) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, types.NewNetworkError(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, types.NewNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, types.NewNetworkError(&StatusError{StatusCode: resp.StatusCode})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, types.NewNetworkError(fmt.Errorf("read body: %w", err))
	}

	return body, nil
}

// StatusError is a non-success HTTP response. Its message is the generic
// fetch failure; the status code is kept for logs.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return types.ErrFetchFailed.Error()
}

func (e *StatusError) Unwrap() error {
	return types.ErrFetchFailed
}
