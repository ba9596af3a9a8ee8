package http

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/markdown"
)

// changelogFilename is the on-disk name for the tool changelog, which is not
// discovered via sitemap.
const changelogFilename = "changelog.md"

// Ensure Fetcher implements docmirror.PageFetcher at compile time.
var _ docmirror.PageFetcher = (*Fetcher)(nil)

// Fetcher retrieves markdown renderings of documentation pages, selecting
// the origin host per path via the configured route table.
type Fetcher struct {
	client    *http.Client
	config    docmirror.Config
	hostBases map[string]string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithClient sets the HTTP client. Defaults to a client with the configured
// fetch timeout.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// WithHostBase overrides the base URL used for a routed host. Used in tests
// to point a production hostname at a local server.
func WithHostBase(host, base string) Option {
	return func(f *Fetcher) {
		f.hostBases[host] = base
	}
}

// NewFetcher creates a Fetcher with the given configuration.
func NewFetcher(config docmirror.Config, opts ...Option) *Fetcher {
	f := &Fetcher{
		config:    config,
		hostBases: make(map[string]string),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{Timeout: config.FetchTimeout}
	}
	return f
}

// FetchPage retrieves the markdown rendering of the page at path. Legacy
// path shapes are rewritten to their current fetch shape before host
// resolution; the markdown URL is the fetch path with a .md suffix.
func (f *Fetcher) FetchPage(ctx context.Context, path string) (*docmirror.Page, error) {
	filename, err := docmirror.SafeFilename(path)
	if err != nil {
		return nil, err
	}

	fetchPath := f.config.Routes.RewriteLegacyPath(path)
	host := f.config.Routes.ResolveHost(fetchPath)
	if !strings.HasSuffix(fetchPath, ".md") {
		fetchPath += ".md"
	}

	content, err := f.get(ctx, f.baseFor(host)+fetchPath)
	if err != nil {
		return nil, err
	}
	if err := markdown.Validate(content, filename); err != nil {
		return nil, err
	}

	return &docmirror.Page{
		Path:     path,
		Filename: filename,
		Content:  content,
	}, nil
}

// FetchChangelog retrieves the tool changelog from its repository raw URL.
func (f *Fetcher) FetchChangelog(ctx context.Context) (*docmirror.Page, error) {
	content, err := f.get(ctx, f.config.ChangelogRawURL)
	if err != nil {
		return nil, err
	}
	if err := markdown.Validate(content, changelogFilename); err != nil {
		return nil, err
	}

	return &docmirror.Page{
		Path:     "changelog",
		Filename: changelogFilename,
		Content:  content,
	}, nil
}

// baseFor returns the base URL for a routed host, honoring test overrides.
func (f *Fetcher) baseFor(host string) string {
	if base, ok := f.hostBases[host]; ok {
		return base
	}
	return "https://" + host
}

// get performs a GET with the configured headers and returns the body on a
// 2xx response.
func (f *Fetcher) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", docmirror.Errorf(docmirror.EINTERNAL, "creating request for %s: %v", url, err)
	}
	for k, v := range f.config.Headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", docmirror.Errorf(docmirror.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
