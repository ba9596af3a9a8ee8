package fs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/docmirror"
)

// SearchIndex is the externally-built search index consumed from the docs
// directory. This core never builds it; the only contract checked here is
// that its file count matches the markdown files on disk.
type SearchIndex struct {
	IndexedFiles int             `json:"indexed_files"`
	Index        json.RawMessage `json:"index"`
}

// LoadSearchIndex reads the search index file from the docs directory.
// Returns ENOTFOUND when the file does not exist.
func LoadSearchIndex(dir, filename string) (*SearchIndex, error) {
	path := filepath.Join(dir, filename)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, docmirror.Errorf(docmirror.ENOTFOUND, "search index %s not found", path)
	} else if err != nil {
		return nil, err
	}

	var idx SearchIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, docmirror.Errorf(docmirror.EUNPROCESSABLE, "corrupt search index %s: %v", path, err)
	}
	return &idx, nil
}

// VerifySearchIndex checks that the search index covers exactly the
// markdown files on disk. Returns EUNPROCESSABLE on a count mismatch.
func (w *Writer) VerifySearchIndex(filename string) error {
	idx, err := LoadSearchIndex(w.dir, filename)
	if err != nil {
		return err
	}
	count, err := w.CountMarkdownFiles()
	if err != nil {
		return err
	}
	if idx.IndexedFiles != count {
		return docmirror.Errorf(docmirror.EUNPROCESSABLE,
			"search index covers %d files but %d markdown files are on disk", idx.IndexedFiles, count)
	}
	return nil
}
