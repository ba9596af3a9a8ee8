package docmirror_test

import (
	"regexp"
	"testing"

	"github.com/fwojciec/docmirror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var safeFilenamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+\.md$`)

func TestSafeFilename_ValidPaths(t *testing.T) {
	t.Parallel()

	paths := []string{
		"/en/docs/claude-code/overview",
		"/en/docs/claude-code/advanced/setup",
		"/en/docs/about-claude/models",
		"/en/api/messages",
		"/docs/en/hooks",
		"/en/home",
		"/en/docs/claude-code/getting-started",
	}

	for _, path := range paths {
		got, err := docmirror.SafeFilename(path)
		require.NoError(t, err, "path %s", path)
		assert.Regexp(t, safeFilenamePattern, got, "path %s", path)
		assert.NotContains(t, got, "/", "path %s", path)
	}
}

func TestSafeFilename_Idempotent(t *testing.T) {
	t.Parallel()

	first, err := docmirror.SafeFilename("/en/docs/claude-code/advanced/setup")
	require.NoError(t, err)

	second, err := docmirror.SafeFilename(first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSafeFilename_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := docmirror.SafeFilename("/en/docs/claude-code/hooks")
	require.NoError(t, err)
	b, err := docmirror.SafeFilename("/en/docs/claude-code/hooks")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSafeFilename_StripsPrefixAndJoinsSegments(t *testing.T) {
	t.Parallel()

	got, err := docmirror.SafeFilename("/en/docs/claude-code/advanced/setup")
	require.NoError(t, err)

	assert.Equal(t, "advanced__setup.md", got)
	assert.Contains(t, got, "__")
}

func TestSafeFilename_PrefixVariants(t *testing.T) {
	t.Parallel()

	for _, path := range []string{
		"/en/docs/claude-code/test",
		"/docs/claude-code/test",
		"/claude-code/test",
	} {
		got, err := docmirror.SafeFilename(path)
		require.NoError(t, err, "path %s", path)
		assert.Equal(t, "test.md", got, "path %s", path)
	}
}

func TestSafeFilename_NoDoubleExtension(t *testing.T) {
	t.Parallel()

	got, err := docmirror.SafeFilename("/en/docs/claude-code/overview.md")
	require.NoError(t, err)
	assert.Equal(t, "overview.md", got)
}

func TestSafeFilename_RemovesMarkupAndQuotes(t *testing.T) {
	t.Parallel()

	got, err := docmirror.SafeFilename("/en/docs/test<script>alert('xss')</script>")
	require.NoError(t, err)

	for _, c := range []string{"<", ">", "(", ")", "'"} {
		assert.NotContains(t, got, c)
	}
	assert.Regexp(t, safeFilenamePattern, got)
}

func TestSafeFilename_CollapsesTraversal(t *testing.T) {
	t.Parallel()

	got, err := docmirror.SafeFilename("/en/docs/../../../etc/passwd")
	require.NoError(t, err)

	assert.NotContains(t, got, "..")
	assert.NotContains(t, got, "/")
	assert.Regexp(t, safeFilenamePattern, got)
}

func TestSafeFilename_RemovesNullBytes(t *testing.T) {
	t.Parallel()

	got, err := docmirror.SafeFilename("/en/docs/test\x00malicious")
	require.NoError(t, err)
	assert.NotContains(t, got, "\x00")
	assert.Regexp(t, safeFilenamePattern, got)
}

func TestSafeFilename_RemovesShellMetacharacters(t *testing.T) {
	t.Parallel()

	got, err := docmirror.SafeFilename("/en/docs/test;rm -rf /x")
	require.NoError(t, err)
	assert.NotContains(t, got, ";")
	assert.NotContains(t, got, " ")
	assert.NotContains(t, got, "`")
}

func TestSafeFilename_RemovesBidiOverrides(t *testing.T) {
	t.Parallel()

	got, err := docmirror.SafeFilename("/en/docs/test\u202e\u202d")
	require.NoError(t, err)
	assert.NotContains(t, got, "\u202e")
	assert.NotContains(t, got, "\u202d")
	assert.Regexp(t, safeFilenamePattern, got)
}

func TestSafeFilename_RemovesWindowsReservedCharacters(t *testing.T) {
	t.Parallel()

	got, err := docmirror.SafeFilename(`/en/docs/test<>:"|?*`)
	require.NoError(t, err)
	for _, c := range `<>:"|?*` {
		assert.NotContains(t, got, string(c))
	}
}

func TestSafeFilename_EmptyAfterSanitization(t *testing.T) {
	t.Parallel()

	_, err := docmirror.SafeFilename("///<<<>>>")
	require.Error(t, err)
	assert.Equal(t, docmirror.EINVALID, docmirror.ErrorCode(err))
	assert.Contains(t, docmirror.ErrorMessage(err), "empty filename")
}

func TestSafeFilename_OnlyExtension(t *testing.T) {
	t.Parallel()

	_, err := docmirror.SafeFilename("/.md")
	require.Error(t, err)
	assert.Equal(t, docmirror.EINVALID, docmirror.ErrorCode(err))
}

func TestSafeFilename_PreservesValidCharacters(t *testing.T) {
	t.Parallel()

	got, err := docmirror.SafeFilename("/en/docs/test-file_name123")
	require.NoError(t, err)
	assert.Equal(t, "en__docs__test-file_name123.md", got)
}
