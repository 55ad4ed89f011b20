package platform

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"
)

// Timeout constants
const (
	DefaultParseTimeout = 60 * time.Second
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// PlaylistLister expands YouTube playlists into video URLs
type PlaylistLister struct {
	timeout time.Duration
}

// NewPlaylistLister creates a new playlist lister
func NewPlaylistLister() *PlaylistLister {
	return &PlaylistLister{
		timeout: DefaultParseTimeout,
	}
}

// SetTimeout sets the timeout for listing operations
func (p *PlaylistLister) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// ListVideoURLs returns the watch URLs of every item in the playlist
func (p *PlaylistLister) ListVideoURLs(ctx context.Context, playlistURL string) ([]string, error) {
	playlistID := ExtractPlaylistID(playlistURL)
	if playlistID == "" {
		return nil, fmt.Errorf("could not extract playlist ID from URL: %s", playlistURL)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	items, err := ytdlp.New().GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	urls := make([]string, 0, len(items))
	for _, it := range items {
		if it.VideoID == "" {
			continue
		}
		urls = append(urls, fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID))
	}
	return urls, nil
}

// IsPlaylistURL checks if the URL carries a playlist parameter
func IsPlaylistURL(rawURL string) bool {
	return ExtractPlaylistID(rawURL) != ""
}

// ExtractPlaylistID extracts the playlist ID from various URL formats
//   - https://www.youtube.com/playlist?list=PLAYLIST_ID
//   - https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID&index=2
func ExtractPlaylistID(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && u.RawQuery != "" {
		if id := u.Query().Get("list"); id != "" {
			return id
		}
	}

	if !strings.Contains(rawURL, PlaylistParam) {
		return ""
	}
	parts := strings.SplitN(rawURL, PlaylistParam, 2)
	id := parts[1]
	if i := strings.Index(id, ParamSeparator); i >= 0 {
		id = id[:i]
	}
	return id
}
