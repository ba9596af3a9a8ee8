package docmirror

// FileStore persists mirrored markdown files in a flat docs directory.
type FileStore interface {
	// WriteMarkdown writes content under the sanitized filename.
	WriteMarkdown(filename, content string) error

	// Exists reports whether filename is present on disk.
	Exists(filename string) bool

	// Cleanup removes files the previous manifest tracked but that were not
	// fetched in the current run, returning the removed filenames.
	Cleanup(fetched map[string]bool, previous *Manifest) ([]string, error)

	// CountMarkdownFiles counts the markdown files on disk.
	CountMarkdownFiles() (int, error)
}
