package wrap

import (
	"context"
	"errors"
)

// errorWithLogCtx carries the LogCtx of the place where an error was first wrapped.
type errorWithLogCtx struct {
	err    error
	logCtx LogCtx
}

func (e *errorWithLogCtx) Error() string {
	return e.err.Error()
}

func (e *errorWithLogCtx) Unwrap() error {
	return e.err
}

// Error wraps an error with the current LogCtx from the context
func Error(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	// If already wrapped, just refresh the log context
	var e *errorWithLogCtx
	if errors.As(err, &e) {
		if x, ok := ctx.Value(LogCtxKey).(LogCtx); ok {
			e.logCtx = x
		}
		return err
	}

	return &errorWithLogCtx{
		err:    err,
		logCtx: FromContext(ctx),
	}
}

// ErrorCtx merges the LogCtx carried by err into ctx. Fields the error does
// not carry keep their ctx values.
func ErrorCtx(ctx context.Context, err error) context.Context {
	var e *errorWithLogCtx
	if errors.As(err, &e) && e != nil {
		return WithLogCtx(ctx, e.logCtx)
	}
	return ctx
}
