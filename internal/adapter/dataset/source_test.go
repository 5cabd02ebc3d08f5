package dataset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PicksSource(t *testing.T) {
	src, err := New("https://example.com/data.json", nil)
	require.NoError(t, err)
	assert.IsType(t, &HTTP{}, src)

	src, err = New("public/data.json", nil)
	require.NoError(t, err)
	assert.IsType(t, &File{}, src)
	assert.Equal(t, "public/data.json", src.Name())

	_, err = New("  ", nil)
	assert.ErrorIs(t, err, types.ErrNoSource)
}

func TestHTTP_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"summary":{}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	t.Run("success", func(t *testing.T) {
		body, err := NewHTTP(srv.URL+"/data.json", srv.Client()).Fetch(context.Background())
		require.NoError(t, err)
		assert.JSONEq(t, `{"summary":{}}`, string(body))
	})

	t.Run("non-success status", func(t *testing.T) {
		_, err := NewHTTP(srv.URL+"/missing.json", srv.Client()).Fetch(context.Background())
		require.Error(t, err)
		assert.Equal(t, "Failed to fetch data", err.Error())
		assert.ErrorIs(t, err, types.ErrFetchFailed)
		assert.Equal(t, types.NetworkOrStatusError, types.KindOf(err))

		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusNotFound, se.StatusCode)
	})

	t.Run("unreachable", func(t *testing.T) {
		dead := httptest.NewServer(http.NotFoundHandler())
		url := dead.URL
		dead.Close()

		_, err := NewHTTP(url, nil).Fetch(context.Background())
		require.Error(t, err)
		assert.Equal(t, types.NetworkOrStatusError, types.KindOf(err))
	})
}

func TestFile_Fetch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	body, err := NewFile(path).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(body))

	_, err = NewFile(filepath.Join(dir, "absent.json")).Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, types.NetworkOrStatusError, types.KindOf(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewFile(path).Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
