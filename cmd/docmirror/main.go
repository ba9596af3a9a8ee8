// Command docmirror mirrors published documentation pages to a local docs
// directory, tracking provenance and change history in a JSON manifest.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/fs"
	dmhttp "github.com/fwojciec/docmirror/http"
	"github.com/fwojciec/docmirror/mirror"
	dmslog "github.com/fwojciec/docmirror/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DocsDir  string        `short:"d" default:"docs" help:"Output directory for mirrored markdown files"`
	Delay    time.Duration `default:"500ms" help:"Minimum delay between requests to the same host"`
	Timeout  time.Duration `short:"t" default:"10s" help:"Fetch timeout per request"`
	MinPages int           `default:"100" help:"Reject discovery results smaller than this"`
	DryRun   bool          `help:"Discover and list pages without fetching or writing"`
	Verbose  bool          `short:"v" help:"Enable debug logging"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docmirror"),
		kong.Description("Mirror published documentation pages to local markdown files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	// Repository attribution may come from a local .env during development.
	_ = godotenv.Load()

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	config := docmirror.DefaultConfig()
	config.RateLimitDelay = cli.Delay
	config.FetchTimeout = cli.Timeout
	config.MinExpectedPages = cli.MinPages

	writer, err := fs.NewWriter(cli.DocsDir)
	if err != nil {
		fmt.Fprintf(stderr, "error creating docs directory: %v\n", err)
		return err
	}

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  logger,
		DocsDir: cli.DocsDir,
		Mirrorer: &mirror.Mirrorer{
			Config:    config,
			Sitemaps:  dmslog.NewLoggingSitemapService(dmhttp.NewSitemapService(nil, config), logger),
			Fetcher:   dmslog.NewLoggingPageFetcher(dmhttp.NewFetcher(config), logger),
			Manifests: fs.NewManifestStore(config),
			Paths:     fs.NewPathsStore(config.PathsManifestFile),
			Files:     writer,
			Limiter:   mirror.NewHostLimiter(config.RateLimitDelay),
			Logger:    logger,
		},
	}

	cmd := &MirrorCmd{DryRun: cli.DryRun}
	return cmd.Run(deps)
}
