package docmirror

import "strings"

// Path shapes understood by the router.
const (
	legacyCLIPrefix = "/en/docs/claude-code/"
	cliDocsPrefix   = "/docs/en/"
)

// RouteTable decides which origin host serves a documentation path and how
// legacy path shapes map to current fetch paths.
//
// The CLI page set is explicit enumerated data, not a heuristic: host
// routing directly determines fetch success (the wrong host answers with an
// HTML error page instead of markdown), so the table must be auditable and
// testable independently of code changes.
type RouteTable struct {
	// PlatformHost serves API reference, general docs, resources, release
	// notes, the prompt library, and any path the table does not recognize.
	PlatformHost string

	// CLIDocsHost serves the CLI tool documentation pages listed in CLIPages
	// under the /docs/en/ prefix.
	CLIDocsHost string

	// CLIPages enumerates the page names (relative to /docs/en/) hosted on
	// CLIDocsHost.
	CLIPages map[string]struct{}
}

// DefaultRouteTable returns the routing policy for the Claude documentation
// domains.
func DefaultRouteTable() *RouteTable {
	pages := []string{
		"overview",
		"quickstart",
		"setup",
		"memory",
		"common-workflows",
		"sub-agents",
		"output-styles",
		"hooks",
		"hooks-guide",
		"github-actions",
		"gitlab-ci-cd",
		"mcp",
		"troubleshooting",
		"third-party-integrations",
		"amazon-bedrock",
		"google-vertex-ai",
		"microsoft-foundry",
		"corporate-proxy",
		"llm-gateway",
		"devcontainer",
		"setup-in-environments",
		"iam",
		"security",
		"data-usage",
		"monitoring-usage",
		"costs",
		"analytics",
		"cli-reference",
		"interactive-mode",
		"slash-commands",
		"checkpointing",
		"settings",
		"statusline",
		"terminal-config",
		"model-config",
		"network-config",
		"vs-code",
		"jetbrains",
		"plugins",
		"plugins-reference",
		"plugin-marketplaces",
		"skills",
		"headless",
		"legal-and-compliance",
		"migration-guide",
		"sdk/migration-guide",
	}
	set := make(map[string]struct{}, len(pages))
	for _, p := range pages {
		set[p] = struct{}{}
	}
	return &RouteTable{
		PlatformHost: "platform.claude.com",
		CLIDocsHost:  "code.claude.com",
		CLIPages:     set,
	}
}

// ResolveHost returns the origin host that serves the given documentation
// path. Only enumerated CLI pages under /docs/en/ resolve to the CLI docs
// host; everything else, including legacy shapes and malformed paths,
// resolves to the platform host.
func (t *RouteTable) ResolveHost(path string) string {
	if page, ok := strings.CutPrefix(path, cliDocsPrefix); ok {
		if _, cli := t.CLIPages[page]; cli {
			return t.CLIDocsHost
		}
	}
	return t.PlatformHost
}

// RewriteLegacyPath maps a legacy /en/docs/claude-code/<page> path to its
// current /docs/en/<page> fetch shape. Every other path, including paths
// without an /en/ segment, is returned unchanged.
func (t *RouteTable) RewriteLegacyPath(path string) string {
	if page, ok := strings.CutPrefix(path, legacyCLIPrefix); ok && page != "" {
		return cliDocsPrefix + page
	}
	return path
}
