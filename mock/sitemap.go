// Package mock provides function-field mock implementations of docmirror
// service interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/docmirror"
)

var _ docmirror.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of docmirror.SitemapService.
type SitemapService struct {
	DiscoverSitemapFn func(ctx context.Context) (string, string, error)
	DiscoverPagesFn   func(ctx context.Context) ([]string, error)
}

func (s *SitemapService) DiscoverSitemap(ctx context.Context) (string, string, error) {
	return s.DiscoverSitemapFn(ctx)
}

func (s *SitemapService) DiscoverPages(ctx context.Context) ([]string, error) {
	return s.DiscoverPagesFn(ctx)
}
