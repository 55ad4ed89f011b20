package download

import (
	"context"
)

// Fetcher downloads a single URL into dest
type Fetcher interface {
	Fetch(ctx context.Context, url, dest string) error
}

// VideoDownloader runs yt-dlp
type VideoDownloader interface {
	// Download fetches a single video using an yt-dlp output template
	Download(ctx context.Context, url, outputTemplate string) error

	// DownloadBundle fetches every item behind url into dir. IDs already
	// listed in archiveFile are skipped and new ones appended.
	DownloadBundle(ctx context.Context, url, dir, archiveFile string) error
}

// Cloner creates a working copy of a repository
type Cloner interface {
	Clone(ctx context.Context, repo, dest string) error
}

// PlaylistLister expands a playlist URL into video URLs
type PlaylistLister interface {
	ListVideoURLs(ctx context.Context, playlistURL string) ([]string, error)
}

// Extractor unpacks a compressed file into dir and returns the extracted paths
type Extractor interface {
	Extract(path, dir string) ([]string, error)
}
