package wrap

import (
	"context"
)

type (
	// LogCtx holds contextual information for logging
	LogCtx struct {
		Action    string
		RequestID string
		Tab       string
		Source    string
	}

	// logCtxKeyStruct is an unexported type for context keys defined in this package.
	logCtxKeyStruct struct{}
)

// LogCtxKey is the key for log context values
var LogCtxKey = &logCtxKeyStruct{}

// WithLogCtx returns a new context with the provided LogCtx merged over the existing one.
func WithLogCtx(ctx context.Context, newLc LogCtx) context.Context {
	if lc, ok := ctx.Value(LogCtxKey).(LogCtx); ok {
		if newLc.Action == "" {
			newLc.Action = lc.Action
		}
		if newLc.RequestID == "" {
			newLc.RequestID = lc.RequestID
		}
		if newLc.Tab == "" {
			newLc.Tab = lc.Tab
		}
		if newLc.Source == "" {
			newLc.Source = lc.Source
		}
	}
	return context.WithValue(ctx, LogCtxKey, newLc)
}

// FromContext returns the LogCtx stored in ctx, or an empty one.
func FromContext(ctx context.Context) LogCtx {
	lc, _ := ctx.Value(LogCtxKey).(LogCtx)
	return lc
}

// WithRequestID adds or updates the RequestID in the LogCtx within the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	lc := FromContext(ctx)
	lc.RequestID = requestID
	return context.WithValue(ctx, LogCtxKey, lc)
}

// WithTab adds or updates the dashboard tab in the LogCtx within the context
func WithTab(ctx context.Context, tab string) context.Context {
	lc := FromContext(ctx)
	lc.Tab = tab
	return context.WithValue(ctx, LogCtxKey, lc)
}

// WithSource adds or updates the dataset source in the LogCtx within the context
func WithSource(ctx context.Context, source string) context.Context {
	lc := FromContext(ctx)
	lc.Source = source
	return context.WithValue(ctx, LogCtxKey, lc)
}

// WithAction adds or updates the Action in the LogCtx within the context
func WithAction(ctx context.Context, action string) context.Context {
	lc := FromContext(ctx)
	lc.Action = action
	return context.WithValue(ctx, LogCtxKey, lc)
}
