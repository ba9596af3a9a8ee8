// Package fs provides file-based persistence for the documentation mirror:
// the docs manifest, the paths manifest, and the markdown files themselves.
package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/docmirror"
)

// Ensure ManifestStore implements docmirror.ManifestStore at compile time.
var _ docmirror.ManifestStore = (*ManifestStore)(nil)

// ManifestStore reads and writes the docs manifest JSON file.
type ManifestStore struct {
	config    docmirror.Config
	lookupEnv func(string) (string, bool)
	now       func() time.Time
}

// StoreOption configures a ManifestStore.
type StoreOption func(*ManifestStore)

// WithLookupEnv overrides the environment lookup used for repository
// attribution. Defaults to os.LookupEnv.
func WithLookupEnv(fn func(string) (string, bool)) StoreOption {
	return func(s *ManifestStore) {
		s.lookupEnv = fn
	}
}

// WithClock overrides the time source. Defaults to time.Now.
func WithClock(fn func() time.Time) StoreOption {
	return func(s *ManifestStore) {
		s.now = fn
	}
}

// NewManifestStore creates a ManifestStore.
func NewManifestStore(config docmirror.Config, opts ...StoreOption) *ManifestStore {
	s := &ManifestStore{
		config:    config,
		lookupEnv: os.LookupEnv,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the manifest from dir. A missing file yields an empty
// manifest with no error; a corrupt file yields an empty manifest plus an
// EUNPROCESSABLE error the caller should log as a warning. Load never
// returns a nil manifest.
func (s *ManifestStore) Load(dir string) (*docmirror.Manifest, error) {
	path := filepath.Join(dir, s.config.ManifestFile)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return docmirror.NewManifest(), nil
	} else if err != nil {
		return docmirror.NewManifest(), docmirror.Errorf(docmirror.EUNPROCESSABLE,
			"reading manifest %s: %v", path, err)
	}

	var m docmirror.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return docmirror.NewManifest(), docmirror.Errorf(docmirror.EUNPROCESSABLE,
			"corrupt manifest %s: %v", path, err)
	}
	if m.Files == nil {
		m.Files = make(map[string]*docmirror.FileEntry)
	}
	return &m, nil
}

// Save stamps last_updated and repository attribution on the manifest, then
// writes it to dir atomically (temp file plus rename), so a concurrent
// reader never observes a partial manifest.
func (s *ManifestStore) Save(dir string, m *docmirror.Manifest) error {
	attr := docmirror.ResolveAttribution(s.lookupEnv, s.config.DefaultAttribution)

	m.LastUpdated = s.now()
	m.GitHubRepository = attr.Repository
	m.GitHubRef = attr.Ref
	m.BaseURL = fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/docs/", attr.Repository, attr.Ref)
	m.Description = "Documentation mirror manifest. Keys are filenames; append to base_url for the full raw-content URL."

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return docmirror.Errorf(docmirror.EINTERNAL, "marshal manifest: %v", err)
	}

	path := filepath.Join(dir, s.config.ManifestFile)
	return writeFileAtomic(path, data)
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it into place.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
