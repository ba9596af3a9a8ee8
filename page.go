package docmirror

import "context"

// Page represents one fetched documentation page.
type Page struct {
	Path     string // documentation path as discovered, e.g. /en/docs/overview
	Filename string // sanitized on-disk filename
	Content  string // markdown
}

// SitemapService discovers documentation pages from site sitemaps.
type SitemapService interface {
	// DiscoverSitemap probes the ordered candidate sitemap locations and
	// returns the first that responds, along with the base URL
	// (scheme+host) of that response. Returns EUNAVAILABLE when no
	// candidate responds.
	DiscoverSitemap(ctx context.Context) (sitemapURL, baseURL string, err error)

	// DiscoverPages collects in-scope documentation paths from all candidate
	// sitemaps, applying the locale inclusion and junk-path exclusion
	// filters. Paths are unique and sorted.
	DiscoverPages(ctx context.Context) ([]string, error)
}

// PageFetcher retrieves markdown content for documentation pages.
type PageFetcher interface {
	// FetchPage retrieves the markdown rendering of the page at path.
	// Returns EUNAVAILABLE on a non-2xx response and EUNPROCESSABLE when
	// the payload fails markdown validation.
	FetchPage(ctx context.Context, path string) (*Page, error)

	// FetchChangelog retrieves the tool changelog from its repository.
	FetchChangelog(ctx context.Context) (*Page, error)
}
