package docmirror

import (
	"regexp"
	"sort"
	"time"
)

// Manifest is the persisted record of which documentation files are tracked,
// their provenance, and their last-known content fingerprint. A run builds a
// fresh manifest and replaces the old one wholesale; the old manifest is
// only read for change detection.
type Manifest struct {
	Files            map[string]*FileEntry `json:"files"`
	FetchMetadata    *FetchMetadata        `json:"fetch_metadata,omitempty"`
	LastUpdated      time.Time             `json:"last_updated,omitzero"`
	BaseURL          string                `json:"base_url,omitempty"`
	GitHubRepository string                `json:"github_repository,omitempty"`
	GitHubRef        string                `json:"github_ref,omitempty"`
	Description      string                `json:"description,omitempty"`
}

// NewManifest returns an empty manifest with a non-nil Files map.
func NewManifest() *Manifest {
	return &Manifest{Files: make(map[string]*FileEntry)}
}

// Entry returns the entry for filename, or nil if the file is not tracked.
func (m *Manifest) Entry(filename string) *FileEntry {
	if m == nil || m.Files == nil {
		return nil
	}
	return m.Files[filename]
}

// Filenames returns the tracked filenames in sorted order.
func (m *Manifest) Filenames() []string {
	names := make([]string, 0, len(m.Files))
	for name := range m.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FileEntry records the provenance of one mirrored file.
type FileEntry struct {
	OriginalURL    string    `json:"original_url,omitempty"`
	OriginalMDURL  string    `json:"original_md_url,omitempty"`
	OriginalRawURL string    `json:"original_raw_url,omitempty"`
	Hash           string    `json:"hash"`
	LastUpdated    time.Time `json:"last_updated"`
	Source         string    `json:"source,omitempty"`
}

// FetchMetadata summarizes one mirror run. It is embedded in the manifest so
// consumers can audit when and how completely the mirror last refreshed.
type FetchMetadata struct {
	RunID                    string    `json:"run_id"`
	LastFetchCompleted       time.Time `json:"last_fetch_completed"`
	FetchDurationSeconds     float64   `json:"fetch_duration_seconds"`
	TotalPagesDiscovered     int       `json:"total_pages_discovered"`
	PagesFetchedSuccessfully int       `json:"pages_fetched_successfully"`
	PagesFailed              int       `json:"pages_failed"`
	FailedPages              []string  `json:"failed_pages"`
	SitemapURL               string    `json:"sitemap_url,omitempty"`
	BaseURL                  string    `json:"base_url"`
	TotalFiles               int       `json:"total_files"`
	FetchToolVersion         string    `json:"fetch_tool_version"`
}

// ManifestStore loads and saves manifests for a docs directory.
type ManifestStore interface {
	// Load reads the manifest from dir. It fails soft: a missing or corrupt
	// manifest yields an empty-files manifest plus a non-nil error that the
	// caller should log as a warning, never treat as fatal.
	Load(dir string) (*Manifest, error)

	// Save stamps last_updated and repository attribution, then writes the
	// manifest to dir.
	Save(dir string, m *Manifest) error
}

// Attribution identifies the repository and ref that republish the mirrored
// files, used to compute the manifest's canonical raw-content base URL.
type Attribution struct {
	Repository string // owner/repo
	Ref        string // branch or tag name
}

var (
	repoPattern = regexp.MustCompile(`^[\w.-]+/[\w.-]+$`)
	refPattern  = regexp.MustCompile(`^[\w.-]+$`)
)

// Valid reports whether both fields match the expected owner/repo and
// ref-name patterns.
func (a Attribution) Valid() bool {
	return repoPattern.MatchString(a.Repository) && refPattern.MatchString(a.Ref)
}

// ResolveAttribution builds an Attribution from environment-style lookups,
// falling back to def for any value that is unset or fails format
// validation. lookup follows the os.LookupEnv signature.
func ResolveAttribution(lookup func(string) (string, bool), def Attribution) Attribution {
	a := def
	if repo, ok := lookup("GITHUB_REPOSITORY"); ok && repoPattern.MatchString(repo) {
		a.Repository = repo
	}
	if ref, ok := lookup("GITHUB_REF_NAME"); ok && refPattern.MatchString(ref) {
		a.Ref = ref
	}
	return a
}

// PathsManifest is the discovery-output path list, grouped by category. It
// is regenerated after each successful discovery and consumed as a fallback
// path source when sitemap discovery fails entirely.
type PathsManifest struct {
	Metadata   PathsMetadata       `json:"metadata"`
	Categories map[string][]string `json:"categories"`
}

// PathsMetadata carries path counts and optional cleaning provenance.
type PathsMetadata struct {
	TotalPaths         int       `json:"total_paths"`
	GeneratedAt        time.Time `json:"generated_at,omitzero"`
	CleanedAt          string    `json:"cleaned_at,omitempty"`
	RemovedBrokenPaths int       `json:"removed_broken_paths,omitempty"`
	OriginalTotalPaths int       `json:"original_total_paths,omitempty"`
}

// AllPaths flattens the categories into a single sorted path list.
func (p *PathsManifest) AllPaths() []string {
	var paths []string
	for _, ps := range p.Categories {
		paths = append(paths, ps...)
	}
	sort.Strings(paths)
	return paths
}

// PathsStore persists the paths manifest.
type PathsStore interface {
	Load() (*PathsManifest, error)
	Update(paths []string) error
}

// CategorizePath assigns a documentation path to a paths-manifest category
// based on its leading segments.
func CategorizePath(path string) string {
	switch {
	case hasSegmentPrefix(path, "/en/api/"):
		return "api"
	case hasSegmentPrefix(path, "/en/docs/claude-code/"), hasSegmentPrefix(path, "/docs/en/"):
		return "claude-code"
	case hasSegmentPrefix(path, "/en/docs/"):
		return "docs"
	case hasSegmentPrefix(path, "/en/resources/"):
		return "resources"
	case hasSegmentPrefix(path, "/en/release-notes/"):
		return "release-notes"
	case hasSegmentPrefix(path, "/en/prompt-library/"):
		return "prompt-library"
	default:
		return "other"
	}
}

func hasSegmentPrefix(path, prefix string) bool {
	return len(path) >= len(prefix) && path[:len(prefix)] == prefix
}
