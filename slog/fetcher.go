// Package slog provides logging decorators for classwatch interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/classwatch"
)

// Ensure LoggingFetcher implements classwatch.Fetcher at compile time.
var _ classwatch.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a classwatch.Fetcher with fetch logging.
type LoggingFetcher struct {
	next   classwatch.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next classwatch.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher, logging the URL, duration, and
// result size or error.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch failed",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
		return "", err
	}
	f.logger.Info("fetch",
		"url", url,
		"duration", time.Since(begin),
		"bytes", len(html),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
