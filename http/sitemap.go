// Package http provides HTTP-based sitemap discovery and markdown fetching
// for the documentation mirror.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/beevik/etree"

	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/bloom"
)

// Dedup filter sizing for page-path deduplication across sitemaps.
const (
	dedupExpectedPaths     = 10000
	dedupFalsePositiveRate = 0.001
)

// Ensure SitemapService implements docmirror.SitemapService.
var _ docmirror.SitemapService = (*SitemapService)(nil)

// SitemapService discovers documentation paths from the configured
// candidate sitemaps.
type SitemapService struct {
	client *http.Client
	config docmirror.Config
}

// NewSitemapService creates a SitemapService. If client is nil,
// http.DefaultClient is used.
func NewSitemapService(client *http.Client, config docmirror.Config) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client, config: config}
}

// DiscoverSitemap probes the candidate sitemap locations in order and
// returns the first that responds with 200, along with the scheme+host of
// that candidate as the base URL.
func (s *SitemapService) DiscoverSitemap(ctx context.Context) (string, string, error) {
	for _, candidate := range s.config.CandidateSitemapURLs {
		if err := ctx.Err(); err != nil {
			return "", "", err
		}
		body, err := s.fetchURL(ctx, candidate)
		if err != nil {
			continue
		}
		_ = body.Close()

		u, err := url.Parse(candidate)
		if err != nil {
			continue
		}
		return candidate, u.Scheme + "://" + u.Host, nil
	}
	return "", "", docmirror.Errorf(docmirror.EUNAVAILABLE,
		"no sitemap found at any of %d candidate locations", len(s.config.CandidateSitemapURLs))
}

// DiscoverPages walks every candidate sitemap, collecting unique in-scope
// documentation paths. A path is in scope when it contains the locale
// segment and matches no exclusion pattern. Returns EUNAVAILABLE when no
// candidate sitemap responds at all.
func (s *SitemapService) DiscoverPages(ctx context.Context) ([]string, error) {
	seen := bloom.NewDedup(dedupExpectedPaths, dedupFalsePositiveRate)
	var paths []string
	responded := 0

	for _, candidate := range s.config.CandidateSitemapURLs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		locs, err := s.processSitemap(ctx, candidate, make(map[string]bool))
		if err != nil {
			continue
		}
		responded++

		for _, loc := range locs {
			u, err := url.Parse(loc)
			if err != nil {
				continue
			}
			path := u.Path
			if !s.inScope(path) {
				continue
			}
			if seen.Seen(path) {
				continue
			}
			paths = append(paths, path)
		}
	}

	if responded == 0 {
		return nil, docmirror.Errorf(docmirror.EUNAVAILABLE,
			"sitemap discovery failed: no candidate sitemap responded")
	}

	sort.Strings(paths)
	return paths, nil
}

// inScope applies the locale inclusion and junk-path exclusion policy.
// Intentionally permissive: everything under the locale is kept except the
// enumerated junk patterns.
func (s *SitemapService) inScope(path string) bool {
	if !strings.Contains(path, s.config.LocaleSegment) {
		return false
	}
	for _, pattern := range s.config.ExcludePatterns {
		if strings.Contains(path, pattern) {
			return false
		}
	}
	return true
}

// processSitemap fetches and parses a sitemap, handling both urlset and
// sitemapindex documents. Nested sitemaps are resolved recursively; seen
// guards against reference cycles.
func (s *SitemapService) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.fetchURL(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, docmirror.Errorf(docmirror.EUNPROCESSABLE, "parsing sitemap XML at %s: %v", sitemapURL, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, docmirror.Errorf(docmirror.EUNPROCESSABLE, "empty sitemap XML at %s", sitemapURL)
	}

	if root.Tag == "sitemapindex" {
		var all []string
		for _, sm := range root.SelectElements("sitemap") {
			loc := sm.SelectElement("loc")
			if loc == nil {
				continue
			}
			nested := strings.TrimSpace(loc.Text())
			if nested == "" {
				continue
			}
			locs, err := s.processSitemap(ctx, nested, seen)
			if err != nil {
				return nil, err
			}
			all = append(all, locs...)
		}
		return all, nil
	}

	var locs []string
	for _, urlEl := range root.SelectElements("url") {
		loc := urlEl.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			locs = append(locs, u)
		}
	}
	return locs, nil
}

// fetchURL fetches a URL with the configured headers and returns the
// response body on 200.
func (s *SitemapService) fetchURL(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, docmirror.Errorf(docmirror.EINTERNAL, "creating request for %s: %v", targetURL, err)
	}
	for k, v := range s.config.Headers {
		req.Header.Set(k, v)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, docmirror.Errorf(docmirror.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, targetURL)
	}
	return resp.Body, nil
}
