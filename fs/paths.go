package fs

import (
	"encoding/json"
	"os"
	"sort"
	"time"

	"github.com/fwojciec/docmirror"
)

// Ensure PathsStore implements docmirror.PathsStore at compile time.
var _ docmirror.PathsStore = (*PathsStore)(nil)

// PathsStore persists the paths manifest: the categorized list of discovered
// documentation paths, regenerated after each successful discovery and
// consumed as a fallback source when discovery fails.
type PathsStore struct {
	path string
	now  func() time.Time
}

// NewPathsStore creates a PathsStore writing to the given file path.
func NewPathsStore(path string) *PathsStore {
	return &PathsStore{path: path, now: time.Now}
}

// Load reads the paths manifest. Returns ENOTFOUND when the file does not
// exist and EUNPROCESSABLE when it cannot be parsed.
func (s *PathsStore) Load() (*docmirror.PathsManifest, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, docmirror.Errorf(docmirror.ENOTFOUND, "paths manifest %s not found", s.path)
	} else if err != nil {
		return nil, err
	}

	var pm docmirror.PathsManifest
	if err := json.Unmarshal(data, &pm); err != nil {
		return nil, docmirror.Errorf(docmirror.EUNPROCESSABLE, "corrupt paths manifest %s: %v", s.path, err)
	}
	return &pm, nil
}

// Update regenerates the paths manifest from freshly discovered paths,
// grouping them by category and stamping generation metadata.
func (s *PathsStore) Update(paths []string) error {
	categories := make(map[string][]string)
	for _, p := range paths {
		c := docmirror.CategorizePath(p)
		categories[c] = append(categories[c], p)
	}
	for _, ps := range categories {
		sort.Strings(ps)
	}

	pm := docmirror.PathsManifest{
		Metadata: docmirror.PathsMetadata{
			TotalPaths:  len(paths),
			GeneratedAt: s.now(),
		},
		Categories: categories,
	}

	data, err := json.MarshalIndent(&pm, "", "  ")
	if err != nil {
		return docmirror.Errorf(docmirror.EINTERNAL, "marshal paths manifest: %v", err)
	}
	return writeFileAtomic(s.path, data)
}
