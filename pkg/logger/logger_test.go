package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	wrap "github.com/Temutjin2k/rickshaw-analytics/pkg/logger/wrapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_InjectsLogCtx(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "dashboard", LevelDebug)

	ctx := wrap.WithLogCtx(context.Background(), wrap.LogCtx{Action: "render_view", RequestID: "req-1"})
	ctx = wrap.WithTab(ctx, "hourly")
	l.Info(ctx, "rendered")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "rendered", rec["message"])
	assert.Equal(t, "render_view", rec["action"])
	assert.Equal(t, "req-1", rec["request_id"])
	assert.Equal(t, "hourly", rec["tab"])
	assert.Equal(t, "dashboard", rec["service"])
}

func TestLogger_ErrorCarriesWrappedCtx(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "dashboard", LevelDebug)

	inner := wrap.WithAction(context.Background(), "fetch_dataset")
	err := wrap.Error(inner, errors.New("boom"))

	l.Error(wrap.ErrorCtx(context.Background(), err), "load failed", err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "fetch_dataset", rec["action"])
	assert.Equal(t, map[string]any{"msg": "boom"}, rec["error"])
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "dashboard", LevelWarn)

	l.Info(context.Background(), "dropped")
	assert.Zero(t, buf.Len())

	l.Warn(context.Background(), "kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestValidateLogLevel(t *testing.T) {
	assert.True(t, ValidateLogLevel(LevelInfo))
	assert.False(t, ValidateLogLevel("TRACE"))
}
