package dataset

import (
	"context"
	"os"

	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"
)

// File reads the document from the local filesystem.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Name() string {
	return f.path
}

func (f *File) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, types.NewNetworkError(err)
	}

	body, err := os.ReadFile(f.path)
	if err != nil {
		return nil, types.NewNetworkError(err)
	}

	return body, nil
}
