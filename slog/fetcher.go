package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docmirror"
)

// Ensure LoggingPageFetcher implements docmirror.PageFetcher.
var _ docmirror.PageFetcher = (*LoggingPageFetcher)(nil)

// LoggingPageFetcher wraps a PageFetcher with debug logging.
type LoggingPageFetcher struct {
	next   docmirror.PageFetcher
	logger *slog.Logger
}

// NewLoggingPageFetcher creates a new LoggingPageFetcher.
func NewLoggingPageFetcher(next docmirror.PageFetcher, logger *slog.Logger) *LoggingPageFetcher {
	return &LoggingPageFetcher{next: next, logger: logger}
}

// FetchPage delegates to the wrapped fetcher and logs the operation.
func (f *LoggingPageFetcher) FetchPage(ctx context.Context, path string) (page *docmirror.Page, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("fetch page",
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchPage(ctx, path)
}

// FetchChangelog delegates to the wrapped fetcher and logs the operation.
func (f *LoggingPageFetcher) FetchChangelog(ctx context.Context) (page *docmirror.Page, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("fetch changelog",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchChangelog(ctx)
}
