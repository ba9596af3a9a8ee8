package mirror

import (
	"context"
	"time"

	"github.com/fwojciec/docmirror"
)

// FetchPageFunc is the signature for a per-page fetch function.
type FetchPageFunc func(ctx context.Context, path string) (*docmirror.Page, error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays fetches a page, retrying transient failures with the
// given backoff delays. Sanitization and validation failures (EINVALID,
// EUNPROCESSABLE) are not retried: the same input produces the same result.
func FetchWithRetryDelays(ctx context.Context, path string, fetch FetchPageFunc, delays []time.Duration) (*docmirror.Page, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		page, err := fetch(ctx, path)
		if err == nil {
			return page, nil
		}
		lastErr = err

		switch docmirror.ErrorCode(err) {
		case docmirror.EINVALID, docmirror.EUNPROCESSABLE:
			return nil, err
		}

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
