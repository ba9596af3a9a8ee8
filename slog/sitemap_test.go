package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/docmirror/mock"
	docslog "github.com/fwojciec/docmirror/slog"
)

func TestLoggingSitemapService_DiscoverSitemap(t *testing.T) {
	t.Parallel()

	t.Run("logs probe result with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			DiscoverSitemapFn: func(ctx context.Context) (string, string, error) {
				return "https://platform.claude.com/sitemap.xml", "https://platform.claude.com", nil
			},
		}

		svc := docslog.NewLoggingSitemapService(inner, logger)
		sitemapURL, baseURL, err := svc.DiscoverSitemap(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "https://platform.claude.com/sitemap.xml", sitemapURL)
		assert.Equal(t, "https://platform.claude.com", baseURL)
		output := buf.String()
		assert.Contains(t, output, "sitemap probe")
		assert.Contains(t, output, "sitemap=https://platform.claude.com/sitemap.xml")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			DiscoverSitemapFn: func(ctx context.Context) (string, string, error) {
				return "", "", errors.New("connection failed")
			},
		}

		svc := docslog.NewLoggingSitemapService(inner, logger)
		_, _, err := svc.DiscoverSitemap(context.Background())

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"connection failed\"")
	})
}

func TestLoggingSitemapService_DiscoverPages(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.SitemapService{
		DiscoverPagesFn: func(ctx context.Context) ([]string, error) {
			return []string{"/en/a", "/en/b"}, nil
		},
	}

	svc := docslog.NewLoggingSitemapService(inner, logger)
	paths, err := svc.DiscoverPages(context.Background())

	require.NoError(t, err)
	assert.Len(t, paths, 2)
	output := buf.String()
	assert.Contains(t, output, "page discovery")
	assert.Contains(t, output, "count=2")
}
