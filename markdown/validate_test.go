package markdown_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/markdown"
)

func TestValidate_AcceptsDocumentationShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{
			"heading",
			"# Getting Started\n\nInstall the tool and run it against your project directory.",
		},
		{
			"list",
			"Supported platforms and runtimes for the current release cycle:\n\n- macOS\n- Linux\n- Windows via WSL\n",
		},
		{
			"link",
			"See the [configuration reference](/docs/en/settings) for every available option and default.",
		},
		{
			"fenced code",
			"Run the following command from the repository root to get started:\n\n```\ntool init\n```\n",
		},
		{
			"emphasis",
			"The manifest is written *after* all pages have been fetched, never incrementally during a run.",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.NoError(t, markdown.Validate(tt.content, "page.md"))
		})
	}
}

func TestValidate_RejectsShortContent(t *testing.T) {
	t.Parallel()

	err := markdown.Validate("# Short", "page.md")
	require.Error(t, err)
	assert.Equal(t, docmirror.EUNPROCESSABLE, docmirror.ErrorCode(err))
	assert.Contains(t, docmirror.ErrorMessage(err), "too short")
	assert.Contains(t, docmirror.ErrorMessage(err), "page.md")
}

func TestValidate_RejectsHTMLDocuments(t *testing.T) {
	t.Parallel()

	pages := []string{
		"<!DOCTYPE html><html><body><h1>404 Not Found</h1></body></html>",
		"<html lang=\"en\"><head><title>Error</title></head><body>Oops</body></html>",
		"\n\n  <HTML><BODY>Server Error. Please try again later, or contact support.</BODY></HTML>",
	}

	for _, content := range pages {
		err := markdown.Validate(content, "page.md")
		require.Error(t, err, "content %q", content)
		assert.Equal(t, docmirror.EUNPROCESSABLE, docmirror.ErrorCode(err))
		assert.Contains(t, docmirror.ErrorMessage(err), "HTML")
	}
}

func TestValidate_HTMLProbeIsWindowed(t *testing.T) {
	t.Parallel()

	// Markdown legitimately discusses HTML tags; markers past the probe
	// window must not trigger rejection.
	content := "# Embedding\n\n" + strings.Repeat("Documentation text. ", 10) +
		"Use the `<html>` and `<body>` tags when embedding rendered output."
	assert.NoError(t, markdown.Validate(content, "page.md"))
}

func TestValidate_RejectsUnstructuredProse(t *testing.T) {
	t.Parallel()

	content := strings.Repeat("plain prose without any markdown structure at all ", 5)
	err := markdown.Validate(content, "page.md")
	require.Error(t, err)
	assert.Equal(t, docmirror.EUNPROCESSABLE, docmirror.ErrorCode(err))
	assert.Contains(t, docmirror.ErrorMessage(err), "structure")
}
