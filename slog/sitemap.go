// Package slog provides logging decorators for docmirror services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docmirror"
)

// Ensure LoggingSitemapService implements docmirror.SitemapService.
var _ docmirror.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with logging.
type LoggingSitemapService struct {
	next   docmirror.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next docmirror.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverSitemap delegates to the wrapped service and logs the operation.
func (s *LoggingSitemapService) DiscoverSitemap(ctx context.Context) (sitemapURL, baseURL string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap probe",
			"sitemap", sitemapURL,
			"base", baseURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverSitemap(ctx)
}

// DiscoverPages delegates to the wrapped service and logs the operation.
func (s *LoggingSitemapService) DiscoverPages(ctx context.Context) (paths []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("page discovery",
			"count", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverPages(ctx)
}
