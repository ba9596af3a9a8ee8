package mock

import (
	"context"

	"github.com/fwojciec/docmirror"
)

var _ docmirror.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of docmirror.PageFetcher.
type PageFetcher struct {
	FetchPageFn      func(ctx context.Context, path string) (*docmirror.Page, error)
	FetchChangelogFn func(ctx context.Context) (*docmirror.Page, error)
}

func (f *PageFetcher) FetchPage(ctx context.Context, path string) (*docmirror.Page, error) {
	return f.FetchPageFn(ctx, path)
}

func (f *PageFetcher) FetchChangelog(ctx context.Context) (*docmirror.Page, error) {
	return f.FetchChangelogFn(ctx)
}
