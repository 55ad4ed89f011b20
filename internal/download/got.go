package download

import (
	"context"
	"fmt"
	"os"

	"github.com/melbahja/got"
)

// PartialSuffix marks an in-flight chunked download
const PartialSuffix = ".part"

// GotFetcher downloads with parallel range requests via melbahja/got. Data
// lands in dest+".part" and is renamed into place once complete.
type GotFetcher struct {
	userAgent string
}

// NewGotFetcher creates a chunked fetcher
func NewGotFetcher(userAgent string) *GotFetcher {
	return &GotFetcher{userAgent: userAgent}
}

// Fetch downloads url into dest
func (g *GotFetcher) Fetch(ctx context.Context, url, dest string) error {
	if g.userAgent != "" {
		got.UserAgent = g.userAgent
	}

	part := dest + PartialSuffix
	defer os.Remove(part)

	dl := got.NewDownload(ctx, url, part)
	if err := dl.Init(); err != nil {
		return fmt.Errorf("failed to init download %s: %w", url, err)
	}
	if err := dl.Start(); err != nil {
		return fmt.Errorf("failed to download %s: %w", url, err)
	}

	if err := os.Rename(part, dest); err != nil {
		return fmt.Errorf("failed to rename partial file: %w", err)
	}
	return nil
}
