package fetch

import (
	"context"

	"github.com/msto63/fault/core/failure"
)

// Retry runs op up to attempts times, retrying only on a Server failure with
// status 500. Every other failure is re-raised unchanged on first sight; a
// retried failure that survives all attempts is returned as-is from the last
// attempt. This is the intercept-then-re-raise policy: retrying is a side
// effect, never a transformation of the failure.
func Retry(ctx context.Context, attempts int, op func(ctx context.Context) (*Result, error)) (*Result, error) {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		res, err := op(ctx)
		if err == nil {
			return res, nil
		}

		if !retryable(err) {
			return nil, err
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
	}

	return nil, lastErr
}

// retryable reports whether the failure is a Server failure with status 500
func retryable(err error) bool {
	f, ok := failure.As(err)
	if !ok || f.Kind() != failure.KindServer {
		return false
	}
	status, present := f.StatusCode()
	return present && status == 500
}
