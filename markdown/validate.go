// Package markdown validates that fetched payloads look like markdown
// documentation rather than rendered HTML error pages.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/fwojciec/docmirror"
)

// Validation thresholds. The structural check is a best-effort heuristic: a
// page of completely unformatted prose would be rejected even though it is
// technically valid markdown. Documentation pages always carry at least a
// heading, so in practice the guard only fires on error pages.
const (
	// MinContentLength is the minimum plausible size of a documentation page.
	MinContentLength = 50

	// HTMLProbeWindow is how many leading characters are scanned for HTML
	// document markers.
	HTMLProbeWindow = 100
)

var htmlMarkers = []string{"<!doctype", "<html", "<head", "<body"}

// Validate checks that content is plausible markdown documentation for the
// named file. Returns EUNPROCESSABLE describing the first failed check.
func Validate(content, filename string) error {
	if len(content) < MinContentLength {
		return docmirror.Errorf(docmirror.EUNPROCESSABLE,
			"%s: content too short (%d bytes, need %d)", filename, len(content), MinContentLength)
	}

	window := strings.ToLower(content)
	if len(window) > HTMLProbeWindow {
		window = window[:HTMLProbeWindow]
	}
	for _, marker := range htmlMarkers {
		if strings.Contains(window, marker) {
			return docmirror.Errorf(docmirror.EUNPROCESSABLE,
				"%s: payload looks like an HTML document (%q)", filename, marker)
		}
	}

	if !hasStructure(content) {
		return docmirror.Errorf(docmirror.EUNPROCESSABLE,
			"%s: no markdown structure (heading, list, link, or code)", filename)
	}

	return nil
}

// hasStructure parses content and reports whether the AST contains at least
// one markdown structural element.
func hasStructure(content string) bool {
	root := goldmark.New().Parser().Parse(text.NewReader([]byte(content)))

	var found bool
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Heading, *ast.List, *ast.Link, *ast.AutoLink, *ast.Image,
			*ast.FencedCodeBlock, *ast.CodeBlock, *ast.Emphasis:
			found = true
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return found
}
