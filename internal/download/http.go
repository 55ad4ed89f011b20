package download

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/cavaliergopher/grab/v3"
	"github.com/schollz/progressbar/v3"

	"github.com/ytget/offgrid/internal/platform"
)

// HTTP defaults
const (
	DefaultHTTPTimeout = 30 * time.Minute
	DefaultUserAgent   = "offgrid/1.0 (+https://github.com/ytget/offgrid)"
	ProgressRefresh    = 200 * time.Millisecond
)

// HTTPFetcher downloads with cavaliergopher/grab. The body is buffered by
// grab and written to dest atomically, so an interrupted transfer never
// leaves a partial file.
type HTTPFetcher struct {
	client   *grab.Client
	progress bool
}

// HTTPOption configures an HTTPFetcher
type HTTPOption func(*HTTPFetcher)

// WithHTTPClient sets the client used for requests
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(f *HTTPFetcher) { f.client.HTTPClient = c }
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(ua string) HTTPOption {
	return func(f *HTTPFetcher) { f.client.UserAgent = ua }
}

// WithProgress draws a byte progress bar on stderr while downloading
func WithProgress(enabled bool) HTTPOption {
	return func(f *HTTPFetcher) { f.progress = enabled }
}

// NewHTTPFetcher creates a fetcher with default timeout and user agent
func NewHTTPFetcher(opts ...HTTPOption) *HTTPFetcher {
	client := grab.NewClient()
	client.HTTPClient = &http.Client{Timeout: DefaultHTTPTimeout}
	client.UserAgent = DefaultUserAgent

	f := &HTTPFetcher{client: client}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads url into dest. Any non-2xx status is an error.
func (f *HTTPFetcher) Fetch(ctx context.Context, url, dest string) error {
	req, err := grab.NewRequest(dest, url)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req = req.WithContext(ctx)
	req.NoStore = true

	resp := f.client.Do(req)
	if f.progress {
		trackBytes(resp, filepath.Base(dest))
	}
	if err := resp.Err(); err != nil {
		return fmt.Errorf("failed to download %s: %w", url, err)
	}

	body, err := resp.Open()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", url, err)
	}
	defer body.Close()

	return platform.WriteFileAtomic(dest, body)
}

// trackBytes renders a progress bar until resp completes
func trackBytes(resp *grab.Response, name string) {
	bar := progressbar.DefaultBytes(resp.Size(), name)
	defer bar.Close()

	ticker := time.NewTicker(ProgressRefresh)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			_ = bar.Set64(resp.BytesComplete())
		case <-resp.Done:
			_ = bar.Set64(resp.BytesComplete())
			return
		}
	}
}
