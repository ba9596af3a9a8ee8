package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docmirror"
)

// Ensure Writer implements docmirror.FileStore at compile time.
var _ docmirror.FileStore = (*Writer)(nil)

// Writer persists markdown files in a flat docs directory. Filenames must
// already be sanitized; Writer never creates subdirectories.
type Writer struct {
	dir string
}

// NewWriter creates a Writer rooted at dir, creating it if needed.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Writer{dir: dir}, nil
}

// Dir returns the docs directory path.
func (w *Writer) Dir() string {
	return w.dir
}

// WriteMarkdown writes content to filename inside the docs directory.
func (w *Writer) WriteMarkdown(filename, content string) error {
	return os.WriteFile(filepath.Join(w.dir, filename), []byte(content), 0o644)
}

// Exists reports whether filename is present in the docs directory.
func (w *Writer) Exists(filename string) bool {
	_, err := os.Stat(filepath.Join(w.dir, filename))
	return err == nil
}

// Cleanup removes files that the previous manifest tracked but that were
// not fetched in the current run. Only previously-tracked files are ever
// deleted; unknown files in the directory are left alone. Returns the
// removed filenames.
func (w *Writer) Cleanup(fetched map[string]bool, previous *docmirror.Manifest) ([]string, error) {
	var removed []string
	for _, filename := range previous.Filenames() {
		if fetched[filename] {
			continue
		}
		path := filepath.Join(w.dir, filename)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := os.Remove(path); err != nil {
			return removed, err
		}
		removed = append(removed, filename)
	}
	return removed, nil
}

// CountMarkdownFiles counts the .md files in the docs directory.
func (w *Writer) CountMarkdownFiles() (int, error) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			count++
		}
	}
	return count, nil
}
