// Package mirror orchestrates documentation mirror runs. It sequences
// sitemap discovery, per-page fetching, change detection against the
// previous manifest, disk writes, stale-file cleanup, and manifest
// regeneration.
package mirror

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fwojciec/docmirror"
)

// Mirrorer runs the mirror pipeline. Execution is strictly sequential: one
// page at a time over one HTTP session, with a pacing delay between
// fetches. The in-memory manifest is owned exclusively by the run; the new
// manifest is written only at the end, so an interrupted run leaves the old
// manifest in place.
type Mirrorer struct {
	Config    docmirror.Config
	Sitemaps  docmirror.SitemapService
	Fetcher   docmirror.PageFetcher
	Manifests docmirror.ManifestStore
	Paths     docmirror.PathsStore
	Files     docmirror.FileStore
	Limiter   *HostLimiter
	Logger    *slog.Logger

	// RetryDelays configures per-page fetch retries. Nil uses
	// DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration

	// NewRunID and Now exist for deterministic tests. They default to
	// uuid.NewString and time.Now.
	NewRunID func() string
	Now      func() time.Time
}

// Result holds the outcome of a mirror run.
type Result struct {
	Discovered  int
	Succeeded   int
	Failed      int
	Created     int
	Updated     int
	Unchanged   int
	Removed     []string
	FailedPages []string
	Duration    time.Duration
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Err       error
}

// ProgressType indicates the kind of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Run executes one full mirror pass against docsDir. Per-page errors are
// accumulated, never fatal; Run returns an error only when the context is
// canceled, when discovery fails with no fallback, or when zero pages
// succeed (in which case the previous manifest is left untouched).
func (m *Mirrorer) Run(ctx context.Context, docsDir string, progress ProgressFunc) (*Result, error) {
	start := m.now()
	logger := m.logger()

	previous, err := m.Manifests.Load(docsDir)
	if err != nil {
		logger.Warn("manifest load failed, starting from empty manifest", "err", err)
	}

	sitemapURL, baseURL, err := m.Sitemaps.DiscoverSitemap(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.Warn("sitemap discovery failed, using fallback base URL",
			"fallback", m.Config.FallbackBaseURL, "err", err)
		sitemapURL = ""
		baseURL = m.Config.FallbackBaseURL
	}

	pages, err := m.discoverPages(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Discovered:  len(pages),
		Removed:     []string{},
		FailedPages: []string{},
	}
	manifest := docmirror.NewManifest()
	fetched := make(map[string]bool)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(pages)})
	}

	for i, path := range pages {
		if err := m.pace(ctx, path, i); err != nil {
			return nil, err
		}

		page, err := m.fetchWithRetry(ctx, path)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Error("page fetch failed", "path", path, "err", err)
			result.Failed++
			result.FailedPages = append(result.FailedPages, path)
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: i + 1, Total: len(pages), Path: path, Err: err})
			}
			continue
		}

		entry, err := m.persistPage(previous, page, result, logger)
		if err != nil {
			logger.Error("page write failed", "path", path, "file", page.Filename, "err", err)
			result.Failed++
			result.FailedPages = append(result.FailedPages, path)
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: i + 1, Total: len(pages), Path: path, Err: err})
			}
			continue
		}
		entry.OriginalURL = baseURL + path
		entry.OriginalMDURL = baseURL + path + ".md"
		manifest.Files[page.Filename] = entry
		fetched[page.Filename] = true
		result.Succeeded++

		if progress != nil {
			progress(ProgressEvent{Type: ProgressCompleted, Completed: i + 1, Total: len(pages), Path: path})
		}
	}

	m.fetchChangelog(ctx, previous, manifest, fetched, result, logger)

	removed, err := m.Files.Cleanup(fetched, previous)
	if err != nil {
		logger.Warn("cleanup incomplete", "removed", len(removed), "err", err)
	}
	result.Removed = append(result.Removed, removed...)
	for _, name := range removed {
		logger.Info("removed stale file", "file", name)
	}

	result.Duration = m.now().Sub(start)

	if result.Succeeded == 0 {
		// Leave the previous manifest in place rather than replacing it
		// with an empty one.
		if progress != nil {
			progress(ProgressEvent{Type: ProgressFinished, Completed: len(pages), Total: len(pages)})
		}
		return result, docmirror.Errorf(docmirror.EUNAVAILABLE, "no pages fetched successfully")
	}

	manifest.FetchMetadata = &docmirror.FetchMetadata{
		RunID:                    m.runID(),
		LastFetchCompleted:       m.now(),
		FetchDurationSeconds:     result.Duration.Seconds(),
		TotalPagesDiscovered:     result.Discovered,
		PagesFetchedSuccessfully: result.Succeeded,
		PagesFailed:              result.Failed,
		FailedPages:              result.FailedPages,
		SitemapURL:               sitemapURL,
		BaseURL:                  baseURL,
		TotalFiles:               len(fetched),
		FetchToolVersion:         m.Config.ToolVersion,
	}

	if err := m.Manifests.Save(docsDir, manifest); err != nil {
		return result, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(pages), Total: len(pages)})
	}
	return result, nil
}

// Plan returns the paths a run would fetch, applying the same discovery
// fallbacks as Run but without writing anything.
func (m *Mirrorer) Plan(ctx context.Context) ([]string, error) {
	pages, _, err := m.plan(ctx)
	return pages, err
}

// discoverPages returns the in-scope documentation paths for this run and
// regenerates the paths manifest when discovery produced a fresh result.
func (m *Mirrorer) discoverPages(ctx context.Context) ([]string, error) {
	pages, fresh, err := m.plan(ctx)
	if err != nil {
		return nil, err
	}
	if fresh {
		if uerr := m.Paths.Update(pages); uerr != nil {
			m.logger().Warn("paths manifest regeneration failed", "err", uerr)
		}
	}
	return pages, nil
}

// plan discovers pages, falling back to the paths manifest when discovery
// fails or produces a suspiciously small result. fresh reports whether the
// paths came from live discovery rather than the fallback.
func (m *Mirrorer) plan(ctx context.Context) (pages []string, fresh bool, err error) {
	pages, err = m.Sitemaps.DiscoverPages(ctx)
	if err == nil {
		err = ValidateDiscoveryThreshold(pages, m.Config.MinExpectedPages)
	}
	if err == nil {
		return pages, true, nil
	}

	if ctx.Err() != nil {
		return nil, false, ctx.Err()
	}
	m.logger().Warn("discovery rejected, falling back to paths manifest", "err", err)

	pm, lerr := m.Paths.Load()
	if lerr != nil {
		return nil, false, docmirror.Errorf(docmirror.EUNAVAILABLE,
			"discovery failed (%s) and no paths manifest fallback (%s)",
			docmirror.ErrorMessage(err), docmirror.ErrorMessage(lerr))
	}
	return pm.AllPaths(), false, nil
}

// persistPage writes the page to disk when its content changed or the file
// is missing, and returns the manifest entry. The timestamp is carried over
// from the previous entry when the content is unchanged. A failed write
// returns an error and no entry: recording a hash for content that never
// reached disk would mark the stale file Unchanged on the next run.
func (m *Mirrorer) persistPage(previous *docmirror.Manifest, page *docmirror.Page, result *Result, logger *slog.Logger) (*docmirror.FileEntry, error) {
	hash := Hash(page.Content)
	prior := previous.Entry(page.Filename)
	exists := m.Files.Exists(page.Filename)

	lastUpdated := m.now()
	if prior != nil && prior.Hash == hash && exists {
		result.Unchanged++
		lastUpdated = prior.LastUpdated
		logger.Debug("unchanged", "file", page.Filename)
	} else {
		if werr := m.Files.WriteMarkdown(page.Filename, page.Content); werr != nil {
			return nil, werr
		}
		if exists {
			result.Updated++
			logger.Info("updated", "file", page.Filename)
		} else {
			result.Created++
			logger.Info("created", "file", page.Filename)
		}
	}

	return &docmirror.FileEntry{
		Hash:        hash,
		LastUpdated: lastUpdated,
	}, nil
}

// fetchChangelog mirrors the tool changelog alongside the sitemap pages.
// Failures count toward the failed-pages list like any other page.
func (m *Mirrorer) fetchChangelog(ctx context.Context, previous, manifest *docmirror.Manifest, fetched map[string]bool, result *Result, logger *slog.Logger) {
	page, err := m.Fetcher.FetchChangelog(ctx)
	if err != nil {
		logger.Error("changelog fetch failed", "err", err)
		result.Failed++
		result.FailedPages = append(result.FailedPages, "changelog")
		return
	}

	entry, err := m.persistPage(previous, page, result, logger)
	if err != nil {
		logger.Error("changelog write failed", "file", page.Filename, "err", err)
		result.Failed++
		result.FailedPages = append(result.FailedPages, "changelog")
		return
	}
	entry.OriginalURL = m.Config.ChangelogURL
	entry.OriginalRawURL = m.Config.ChangelogRawURL
	entry.Source = "claude-code-repository"
	manifest.Files[page.Filename] = entry
	fetched[page.Filename] = true
	result.Succeeded++
}

// pace applies the inter-request delay for the host serving path. The first
// fetch of a run is not delayed.
func (m *Mirrorer) pace(ctx context.Context, path string, index int) error {
	if m.Limiter == nil || m.Config.Routes == nil || index == 0 {
		return ctx.Err()
	}
	host := m.Config.Routes.ResolveHost(m.Config.Routes.RewriteLegacyPath(path))
	return m.Limiter.Wait(ctx, host)
}

func (m *Mirrorer) fetchWithRetry(ctx context.Context, path string) (*docmirror.Page, error) {
	delays := m.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetryDelays(ctx, path, m.Fetcher.FetchPage, delays)
}

func (m *Mirrorer) logger() *slog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return slog.Default()
}

func (m *Mirrorer) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

func (m *Mirrorer) runID() string {
	if m.NewRunID != nil {
		return m.NewRunID()
	}
	return uuid.NewString()
}
