package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/mirror"
)

// Dependencies holds the wired services and configuration for command
// execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Mirrorer *mirror.Mirrorer
	DocsDir  string
}

// MirrorCmd runs one full mirror pass, or prints the fetch plan when
// DryRun is set.
type MirrorCmd struct {
	DryRun bool
}

// Run executes the mirror command, reporting per-page progress and a final
// summary. Returns an error only when the run as a whole failed.
func (c *MirrorCmd) Run(deps *Dependencies) error {
	if c.DryRun {
		return c.runDry(deps)
	}
	progress := func(e mirror.ProgressEvent) {
		switch e.Type {
		case mirror.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Discovered %d pages\n", e.Total)
		case mirror.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "skip %s: %s\n", e.Path, docmirror.ErrorMessage(e.Err))
		case mirror.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", e.Completed, e.Total, truncatePath(e.Path, 48))
		case mirror.ProgressFinished:
			fmt.Fprintf(deps.Stdout, "\r%80s\r", "")
		}
	}

	result, err := deps.Mirrorer.Run(deps.Ctx, deps.DocsDir, progress)
	if result != nil {
		printSummary(deps.Stdout, result)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmirror.ErrorMessage(err))
		return err
	}
	return nil
}

// runDry prints the paths a run would fetch, one per line, without fetching
// or writing anything.
func (c *MirrorCmd) runDry(deps *Dependencies) error {
	pages, err := deps.Mirrorer.Plan(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docmirror.ErrorMessage(err))
		return err
	}
	for _, p := range pages {
		fmt.Fprintln(deps.Stdout, p)
	}
	fmt.Fprintf(deps.Stdout, "%d pages would be fetched\n", len(pages))
	return nil
}

func printSummary(w io.Writer, r *mirror.Result) {
	fmt.Fprintf(w, "Mirror completed in %s\n", r.Duration.Round(10*time.Millisecond))
	fmt.Fprintf(w, "  discovered: %d\n", r.Discovered)
	fmt.Fprintf(w, "  succeeded:  %d (created %d, updated %d, unchanged %d)\n",
		r.Succeeded, r.Created, r.Updated, r.Unchanged)
	fmt.Fprintf(w, "  failed:     %d\n", r.Failed)
	if len(r.Removed) > 0 {
		fmt.Fprintf(w, "  removed:    %d stale files\n", len(r.Removed))
	}
	if len(r.FailedPages) > 0 {
		fmt.Fprintln(w, "Failed pages (will retry next run):")
		for _, p := range r.FailedPages {
			fmt.Fprintf(w, "  - %s\n", p)
		}
	}
}

// truncatePath shortens a path for single-line progress display, keeping
// the end which is the informative part.
func truncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen < 4 {
		return path[:maxLen]
	}
	return "..." + path[len(path)-maxLen+3:]
}
