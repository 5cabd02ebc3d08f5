package dataset

import (
	"context"
	"net/http"
	"strings"

	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"
)

// Source retrieves the raw dataset document.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	Name() string
}

// New picks an HTTP source for http(s) URLs and a file source otherwise.
func New(location string, client *http.Client) (Source, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, types.ErrNoSource
	}

	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTP(location, client), nil
	}

	return NewFile(location), nil
}
