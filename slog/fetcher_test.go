package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgsdk/apischema"
	"github.com/tgsdk/apischema/mock"
	apislog "github.com/tgsdk/apischema/slog"
)

// Ensure LoggingFetcher implements apischema.Fetcher at compile time.
var _ apischema.Fetcher = (*apislog.LoggingFetcher)(nil)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	fetcher := apislog.NewLoggingFetcher(&mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return "<html>ok</html>", nil
		},
	}, logger)

	html, err := fetcher.Fetch(context.Background(), "https://core.telegram.org/bots/api")
	require.NoError(t, err)

	assert.Equal(t, "<html>ok</html>", html)
	assert.Contains(t, buf.String(), "fetched")
	assert.Contains(t, buf.String(), "core.telegram.org")
}

func TestLoggingFetcher_Fetch_Error(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	fetcher := apislog.NewLoggingFetcher(&mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return "", apischema.Errorf(apischema.EINTERNAL, "HTTP 502 for %s", url)
		},
	}, logger)

	_, err := fetcher.Fetch(context.Background(), "https://core.telegram.org/bots/api")

	require.Error(t, err)
	assert.Contains(t, buf.String(), "fetch failed")
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	closed := false
	fetcher := apislog.NewLoggingFetcher(&mock.Fetcher{
		CloseFn: func() error {
			closed = true
			return nil
		},
	}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	require.NoError(t, fetcher.Close())
	assert.True(t, closed)
}
