package docmirror

import (
	"regexp"
	"strings"
)

// Documentation-root prefixes stripped before filename mapping, so that
// equivalent path shapes produce the same short filename.
var filenamePrefixes = []string{
	"/en/docs/claude-code/",
	"/docs/claude-code/",
	"/claude-code/",
}

var (
	unsafeChars   = regexp.MustCompile(`[^A-Za-z0-9._-]`)
	traversalRuns = regexp.MustCompile(`\.{2,}`)
)

// SafeFilename maps a documentation path to a safe on-disk filename.
//
// The result matches ^[A-Za-z0-9._-]+\.md$ and never contains a path
// separator. Segment boundaries are preserved as "__" so the mapping stays
// human-readable. Filtering is an allow-list: any character outside
// [A-Za-z0-9._-] is dropped, which rejects null bytes, Unicode control
// characters, shell metacharacters, and markup delimiters by construction.
//
// Returns EINVALID when nothing valid survives sanitization. Two distinct
// paths may map to the same filename; collisions are accepted, not detected.
func SafeFilename(path string) (string, error) {
	for _, prefix := range filenamePrefixes {
		if strings.HasPrefix(path, prefix) {
			path = strings.TrimPrefix(path, prefix)
			break
		}
	}

	name := strings.Trim(path, "/")
	name = strings.ReplaceAll(name, "/", "__")
	name = strings.TrimSuffix(name, ".md")

	name = unsafeChars.ReplaceAllString(name, "")

	// Runs of dots could still spell a traversal sequence on a careless
	// consumer; collapse them entirely.
	name = traversalRuns.ReplaceAllString(name, "")

	if strings.ContainsAny(name, `/\`) {
		return "", Errorf(EINTERNAL, "separator survived sanitization: %q", name)
	}

	if name == "" {
		return "", Errorf(EINVALID, "empty filename")
	}
	return name + ".md", nil
}
