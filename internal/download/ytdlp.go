package download

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/lrstanley/go-ytdlp"
	log "github.com/sirupsen/logrus"
)

// yt-dlp options
const (
	ProgressInterval  = 2 * time.Second
	MergeFormat       = "mp4"
	VideoFormat       = "bv*[ext=mp4]+ba[ext=m4a]/b[ext=mp4]/bv*+ba/b"
	BundleOutputName  = "%(title)s.%(ext)s"
	ProgressLogFormat = "%.1f%%"
)

// YTDLPRunner downloads videos through the yt-dlp executable
type YTDLPRunner struct {
	log log.FieldLogger
}

// NewYTDLPRunner creates a runner that reports progress to logger
func NewYTDLPRunner(logger log.FieldLogger) *YTDLPRunner {
	return &YTDLPRunner{log: logger}
}

// Download fetches a single video. Merged and pre-muxed formats both end up as mp4.
func (r *YTDLPRunner) Download(ctx context.Context, url, outputTemplate string) error {
	dl := ytdlp.New().
		NoPlaylist().
		Format(VideoFormat).
		MergeOutputFormat(MergeFormat).
		RemuxVideo(MergeFormat).
		Output(outputTemplate)
	r.trackProgress(dl, url)

	if _, err := dl.Run(ctx, url); err != nil {
		return fmt.Errorf("yt-dlp failed for %s: %w", url, err)
	}
	return nil
}

// DownloadBundle fetches every item behind url into dir
func (r *YTDLPRunner) DownloadBundle(ctx context.Context, url, dir, archiveFile string) error {
	dl := ytdlp.New().
		YesPlaylist().
		IgnoreErrors().
		RestrictFilenames().
		DownloadArchive(archiveFile).
		Output(filepath.Join(dir, BundleOutputName))
	r.trackProgress(dl, url)

	if _, err := dl.Run(ctx, url); err != nil {
		return fmt.Errorf("yt-dlp failed for %s: %w", url, err)
	}
	return nil
}

func (r *YTDLPRunner) trackProgress(dl *ytdlp.Command, url string) {
	dl.ProgressFunc(ProgressInterval, func(update ytdlp.ProgressUpdate) {
		fields := log.Fields{"url": url}
		if update.TotalBytes > 0 {
			percent := float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100
			fields["progress"] = fmt.Sprintf(ProgressLogFormat, percent)
		}
		if update.Info != nil && update.Info.Title != nil {
			fields["title"] = *update.Info.Title
		}
		r.log.WithFields(fields).Debug("yt-dlp progress")
	})
}
