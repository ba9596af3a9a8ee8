package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/fs"
)

func TestWriter_WriteMarkdownAndExists(t *testing.T) {
	t.Parallel()

	w, err := fs.NewWriter(filepath.Join(t.TempDir(), "docs"))
	require.NoError(t, err)

	require.NoError(t, w.WriteMarkdown("hooks.md", "# Hooks\n"))
	assert.True(t, w.Exists("hooks.md"))
	assert.False(t, w.Exists("missing.md"))

	data, err := os.ReadFile(filepath.Join(w.Dir(), "hooks.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Hooks\n", string(data))
}

func TestWriter_Cleanup_RemovesOnlyTrackedUnfetchedFiles(t *testing.T) {
	t.Parallel()

	w, err := fs.NewWriter(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.WriteMarkdown("kept.md", "# Kept page content\n"))
	require.NoError(t, w.WriteMarkdown("stale.md", "# Stale page content\n"))
	require.NoError(t, w.WriteMarkdown("untracked.md", "# Not in any manifest\n"))

	previous := docmirror.NewManifest()
	previous.Files["kept.md"] = &docmirror.FileEntry{}
	previous.Files["stale.md"] = &docmirror.FileEntry{}
	previous.Files["gone.md"] = &docmirror.FileEntry{}

	removed, err := w.Cleanup(map[string]bool{"kept.md": true}, previous)
	require.NoError(t, err)
	assert.Equal(t, []string{"stale.md"}, removed)

	assert.True(t, w.Exists("kept.md"))
	assert.False(t, w.Exists("stale.md"))
	assert.True(t, w.Exists("untracked.md"))
}

func TestWriter_CountMarkdownFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := fs.NewWriter(dir)
	require.NoError(t, err)

	require.NoError(t, w.WriteMarkdown("a.md", "# A\n"))
	require.NoError(t, w.WriteMarkdown("b.md", "# B\n"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.md"), 0o755))

	count, err := w.CountMarkdownFiles()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
