package mock

import "github.com/fwojciec/docmirror"

var _ docmirror.ManifestStore = (*ManifestStore)(nil)

// ManifestStore is a mock implementation of docmirror.ManifestStore.
type ManifestStore struct {
	LoadFn func(dir string) (*docmirror.Manifest, error)
	SaveFn func(dir string, m *docmirror.Manifest) error
}

func (s *ManifestStore) Load(dir string) (*docmirror.Manifest, error) {
	return s.LoadFn(dir)
}

func (s *ManifestStore) Save(dir string, m *docmirror.Manifest) error {
	return s.SaveFn(dir, m)
}

var _ docmirror.PathsStore = (*PathsStore)(nil)

// PathsStore is a mock implementation of docmirror.PathsStore.
type PathsStore struct {
	LoadFn   func() (*docmirror.PathsManifest, error)
	UpdateFn func(paths []string) error
}

func (s *PathsStore) Load() (*docmirror.PathsManifest, error) {
	return s.LoadFn()
}

func (s *PathsStore) Update(paths []string) error {
	return s.UpdateFn(paths)
}

var _ docmirror.FileStore = (*FileStore)(nil)

// FileStore is a mock implementation of docmirror.FileStore.
type FileStore struct {
	WriteMarkdownFn      func(filename, content string) error
	ExistsFn             func(filename string) bool
	CleanupFn            func(fetched map[string]bool, previous *docmirror.Manifest) ([]string, error)
	CountMarkdownFilesFn func() (int, error)
}

func (s *FileStore) WriteMarkdown(filename, content string) error {
	return s.WriteMarkdownFn(filename, content)
}

func (s *FileStore) Exists(filename string) bool {
	return s.ExistsFn(filename)
}

func (s *FileStore) Cleanup(fetched map[string]bool, previous *docmirror.Manifest) ([]string, error) {
	return s.CleanupFn(fetched, previous)
}

func (s *FileStore) CountMarkdownFiles() (int, error) {
	return s.CountMarkdownFilesFn()
}
