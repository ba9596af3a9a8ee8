package docmirror

import "time"

// Config carries the immutable run configuration shared by the discovery,
// fetch, and persistence components. Construct it with DefaultConfig and
// override fields before wiring; components never mutate it.
type Config struct {
	// Headers sent with every documentation request.
	Headers map[string]string

	// CandidateSitemapURLs is the ordered list of sitemap locations to
	// probe. The first responding candidate determines the base URL.
	CandidateSitemapURLs []string

	// FallbackBaseURL is used when no sitemap candidate responds.
	FallbackBaseURL string

	// LocaleSegment must appear in a discovered path for it to be in scope.
	LocaleSegment string

	// ExcludePatterns drop known-junk paths from discovery results.
	ExcludePatterns []string

	// RateLimitDelay is the pause between consecutive page fetches.
	RateLimitDelay time.Duration

	// FetchTimeout bounds each HTTP request.
	FetchTimeout time.Duration

	// MinExpectedPages rejects a discovery result smaller than this, which
	// signals a fetch-infrastructure break rather than a real shrink of the
	// documentation set.
	MinExpectedPages int

	// ManifestFile, PathsManifestFile, and SearchIndexFile name the JSON
	// artifacts in and next to the docs directory.
	ManifestFile      string
	PathsManifestFile string
	SearchIndexFile   string

	// DefaultAttribution is used when the GitHub environment variables are
	// unset or fail format validation.
	DefaultAttribution Attribution

	// ChangelogURL and ChangelogRawURL locate the tool changelog.
	ChangelogURL    string
	ChangelogRawURL string

	// ToolVersion is recorded in fetch metadata.
	ToolVersion string

	// Routes is the host routing policy table.
	Routes *RouteTable
}

// DefaultConfig returns the configuration for mirroring the Claude
// documentation domains.
func DefaultConfig() Config {
	return Config{
		Headers: map[string]string{
			"User-Agent":    "docmirror/" + Version + " (documentation mirror; +https://github.com/fwojciec/docmirror)",
			"Accept":        "text/markdown, text/plain, */*",
			"Cache-Control": "no-cache",
		},
		CandidateSitemapURLs: []string{
			"https://platform.claude.com/sitemap.xml",
			"https://code.claude.com/sitemap.xml",
			"https://docs.claude.com/sitemap.xml",
		},
		FallbackBaseURL:   "https://platform.claude.com",
		LocaleSegment:     "/en/",
		ExcludePatterns:   []string{"/examples/", "/legacy/"},
		RateLimitDelay:    500 * time.Millisecond,
		FetchTimeout:      10 * time.Second,
		MinExpectedPages:  100,
		ManifestFile:      "docs_manifest.json",
		PathsManifestFile: "paths_manifest.json",
		SearchIndexFile:   ".search_index.json",
		DefaultAttribution: Attribution{
			Repository: "fwojciec/claude-docs-mirror",
			Ref:        "main",
		},
		ChangelogURL:    "https://github.com/anthropics/claude-code/blob/main/CHANGELOG.md",
		ChangelogRawURL: "https://raw.githubusercontent.com/anthropics/claude-code/main/CHANGELOG.md",
		ToolVersion:     Version,
		Routes:          DefaultRouteTable(),
	}
}

// Version is the fetch tool version recorded in manifest metadata.
const Version = "3.0"
