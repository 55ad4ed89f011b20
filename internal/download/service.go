package download

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/lrstanley/go-ytdlp"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/offgrid/internal/model"
	"github.com/ytget/offgrid/internal/platform"
)

// File name constants
const (
	VideoExt           = ".mp4"
	VideoOutputExt     = ".%(ext)s"
	DownloadArchiveTxt = ".download-archive.txt"
	GitMetadataDir     = ".git"
)

// ErrNotProduced is recorded when a fetch succeeds without producing its destination
var ErrNotProduced = errors.New("download finished but destination is missing")

// Compressed archive.org items unpacked after a bundle download
var CompressedExts = []string{".zip", ".rar", ".7z", ".tar"}

// Service synchronizes the manifest with the base directory
type Service struct {
	baseDir  string
	manifest model.Manifest

	fetcher   Fetcher
	videos    VideoDownloader
	cloner    Cloner
	playlists PlaylistLister
	extractor Extractor
	log       log.FieldLogger

	mu       sync.Mutex
	onUpdate func(*model.SyncTask) // callback for progress reporting
}

// Option configures a Service
type Option func(*Service)

// WithFetcher sets the PDF fetch engine
func WithFetcher(f Fetcher) Option {
	return func(s *Service) { s.fetcher = f }
}

// WithVideoDownloader sets the yt-dlp runner
func WithVideoDownloader(v VideoDownloader) Option {
	return func(s *Service) { s.videos = v }
}

// WithCloner sets the repository cloner
func WithCloner(c Cloner) Option {
	return func(s *Service) { s.cloner = c }
}

// WithPlaylistLister sets the playlist expander
func WithPlaylistLister(p PlaylistLister) Option {
	return func(s *Service) { s.playlists = p }
}

// WithExtractor sets the compressed file extractor
func WithExtractor(e Extractor) Option {
	return func(s *Service) { s.extractor = e }
}

// WithLogger sets the logger
func WithLogger(l log.FieldLogger) Option {
	return func(s *Service) { s.log = l }
}

// NewService creates a synchronizer for manifest rooted at baseDir
func NewService(baseDir string, manifest model.Manifest, opts ...Option) *Service {
	s := &Service{
		baseDir:  baseDir,
		manifest: manifest.Clone(),
		log:      log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.fetcher == nil {
		s.fetcher = NewHTTPFetcher()
	}
	if s.videos == nil {
		s.videos = NewYTDLPRunner(s.log)
	}
	if s.cloner == nil {
		s.cloner = GitCloner{}
	}
	if s.playlists == nil {
		s.playlists = platform.NewPlaylistLister()
	}
	if s.extractor == nil {
		s.extractor = UnarrExtractor{}
	}
	return s
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.SyncTask)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// BaseDir returns the root of the resource tree
func (s *Service) BaseDir() string {
	return s.baseDir
}

// Manifest returns a copy of the manifest
func (s *Service) Manifest() model.Manifest {
	return s.manifest.Clone()
}

// CategoryDir returns the directory of a category
func (s *Service) CategoryDir(c model.Category) string {
	return filepath.Join(s.baseDir, c.DirName())
}

// ArchiveDir returns the archive bundle directory
func (s *Service) ArchiveDir() string {
	return filepath.Join(s.baseDir, s.manifest.ArchiveDirName())
}

// MirrorDir returns the repository mirror directory
func (s *Service) MirrorDir() string {
	return filepath.Join(s.baseDir, s.manifest.MirrorDirName())
}

// ExpectedDirs returns every directory EnsureDirectories creates
func (s *Service) ExpectedDirs() []string {
	dirs := []string{s.baseDir}
	for _, c := range s.manifest.Categories {
		dirs = append(dirs, s.CategoryDir(c))
	}
	if s.manifest.ArchiveURL != "" {
		dirs = append(dirs, s.ArchiveDir())
	}
	if s.manifest.RepositoryURL != "" {
		dirs = append(dirs, s.MirrorDir())
	}
	return dirs
}

// EnsureDirectories creates the base directory and every category,
// archive and mirror directory. It is idempotent.
func (s *Service) EnsureDirectories() error {
	for _, dir := range s.ExpectedDirs() {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// ensure is the idempotence primitive every resource goes through. When
// satisfied reports true the task is skipped and fetch is never called.
// A fetch that returns nil but leaves satisfied false is an error. Fetch
// errors are recorded on the task and logged, never returned.
func (s *Service) ensure(ctx context.Context, task *model.SyncTask, satisfied func() bool, fetch func(context.Context) error) *model.SyncTask {
	logger := s.log.WithFields(log.Fields{
		"kind":   task.Kind,
		"source": task.Source,
		"dest":   task.Destination,
	})

	if satisfied() {
		task.Finish(model.TaskStatusSkipped, nil)
		logger.Debug("already present, skipping")
		s.notifyUpdate(task)
		return task
	}

	if err := ctx.Err(); err != nil {
		task.Finish(model.TaskStatusError, err)
		s.notifyUpdate(task)
		return task
	}

	task.Status = model.TaskStatusDownloading
	s.notifyUpdate(task)
	logger.Info("downloading")

	err := fetch(ctx)
	if err == nil && !satisfied() {
		err = fmt.Errorf("%w: %s", ErrNotProduced, task.Destination)
	}
	if err != nil {
		task.Finish(model.TaskStatusError, err)
		logger.WithError(err).Error("download failed")
	} else {
		task.Finish(model.TaskStatusCompleted, nil)
		logger.WithField("took", task.Duration()).Info("download completed")
	}
	s.notifyUpdate(task)
	return task
}

// SyncPDFs downloads every manifest PDF missing from the base directory
func (s *Service) SyncPDFs(ctx context.Context) []*model.SyncTask {
	tasks := make([]*model.SyncTask, 0, len(s.manifest.PDFs))
	for _, pdf := range s.manifest.PDFs {
		dest := s.pdfPath(pdf)
		task := model.NewSyncTask(model.KindPDF, "", pdf.URL, dest)
		tasks = append(tasks, s.ensure(ctx, task,
			func() bool { return platform.FileExists(dest) },
			func(ctx context.Context) error { return s.fetcher.Fetch(ctx, pdf.URL, dest) },
		))
	}
	return tasks
}

// SyncCategoryVideos downloads every category video and playlist item
func (s *Service) SyncCategoryVideos(ctx context.Context) []*model.SyncTask {
	var tasks []*model.SyncTask
	for _, c := range s.manifest.Categories {
		dir := s.CategoryDir(c)
		for _, url := range c.Videos {
			tasks = append(tasks, s.ensureVideo(ctx, c.Name, url, dir))
		}
		for _, url := range c.Playlists {
			tasks = append(tasks, s.syncPlaylist(ctx, c, url)...)
		}
	}
	return tasks
}

func (s *Service) ensureVideo(ctx context.Context, category, url, dir string) *model.SyncTask {
	id := VideoID(url)
	dest := filepath.Join(dir, id+VideoExt)
	task := model.NewSyncTask(model.KindVideo, category, url, dest)
	return s.ensure(ctx, task,
		func() bool { return platform.FileExists(dest) },
		func(ctx context.Context) error {
			return s.videos.Download(ctx, url, filepath.Join(dir, id+VideoOutputExt))
		},
	)
}

func (s *Service) syncPlaylist(ctx context.Context, c model.Category, url string) []*model.SyncTask {
	dir := s.playlistDir(c, url)
	urls, err := s.playlists.ListVideoURLs(ctx, url)
	if err != nil {
		task := model.NewSyncTask(model.KindVideo, c.Name, url, dir)
		task.Finish(model.TaskStatusError, err)
		s.log.WithFields(log.Fields{"category": c.Name, "playlist": url}).WithError(err).Error("failed to expand playlist")
		s.notifyUpdate(task)
		return []*model.SyncTask{task}
	}

	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		task := model.NewSyncTask(model.KindVideo, c.Name, url, dir)
		task.Finish(model.TaskStatusError, err)
		s.notifyUpdate(task)
		return []*model.SyncTask{task}
	}

	tasks := make([]*model.SyncTask, 0, len(urls))
	for _, videoURL := range urls {
		tasks = append(tasks, s.ensureVideo(ctx, c.Name, videoURL, dir))
	}
	return tasks
}

// SyncArchiveBundle downloads the archive bundle when its directory holds no
// files, unpacks compressed items and moves files whose name contains a
// category name into that category.
func (s *Service) SyncArchiveBundle(ctx context.Context) []*model.SyncTask {
	if s.manifest.ArchiveURL == "" {
		return nil
	}

	dir := s.ArchiveDir()
	task := model.NewSyncTask(model.KindArchive, "", s.manifest.ArchiveURL, dir)
	s.ensure(ctx, task,
		func() bool { return platform.DirHasFiles(dir) },
		func(ctx context.Context) error {
			archiveFile := filepath.Join(dir, DownloadArchiveTxt)
			if err := s.videos.DownloadBundle(ctx, s.manifest.ArchiveURL, dir, archiveFile); err != nil {
				return err
			}
			s.unpackCompressed(dir)
			return s.classifyArchive(dir)
		},
	)
	return []*model.SyncTask{task}
}

// unpackCompressed extracts compressed items in place and removes the originals
func (s *Service) unpackCompressed(dir string) {
	files, err := platform.ListFiles(dir)
	if err != nil {
		s.log.WithError(err).Warn("failed to scan archive directory")
		return
	}
	for _, path := range files {
		if !isCompressed(path) {
			continue
		}
		logger := s.log.WithField("file", path)
		extracted, err := s.extractor.Extract(path, filepath.Dir(path))
		if err != nil {
			logger.WithError(err).Warn("failed to unpack")
			continue
		}
		if err := os.Remove(path); err != nil {
			logger.WithError(err).Warn("failed to remove unpacked file")
		}
		logger.WithField("files", len(extracted)).Info("unpacked")
	}
}

// classifyArchive moves each file whose name contains a category name into
// that category. The first matching category in manifest order wins.
func (s *Service) classifyArchive(dir string) error {
	files, err := platform.ListFiles(dir)
	if err != nil {
		return err
	}

	var errs []error
	for _, path := range files {
		name := filepath.Base(path)
		if strings.HasPrefix(name, ".") {
			continue
		}
		c, ok := ClassifyName(name, s.manifest.Categories)
		if !ok {
			continue
		}
		dest := filepath.Join(s.CategoryDir(c), name)
		if err := platform.MoveFile(path, dest); err != nil {
			errs = append(errs, err)
			continue
		}
		s.log.WithFields(log.Fields{"file": name, "category": c.Name}).Info("classified archive item")
	}
	return errors.Join(errs...)
}

// ClassifyName returns the first category whose name occurs in name, case-insensitively
func ClassifyName(name string, categories []model.Category) (model.Category, bool) {
	lower := strings.ToLower(name)
	for _, c := range categories {
		if strings.Contains(lower, strings.ToLower(c.Name)) {
			return c, true
		}
	}
	return model.Category{}, false
}

// SyncRepositoryMirror clones the repository into the mirror directory when
// it is empty and copies the working tree into the base directory.
func (s *Service) SyncRepositoryMirror(ctx context.Context) []*model.SyncTask {
	if s.manifest.RepositoryURL == "" {
		return nil
	}

	dir := s.MirrorDir()
	task := model.NewSyncTask(model.KindMirror, "", s.manifest.RepositoryURL, dir)
	s.ensure(ctx, task,
		s.mirrorSatisfied,
		func(ctx context.Context) error {
			if !platform.DirHasFiles(dir) {
				// git refuses to clone into a non-empty directory
				if err := os.RemoveAll(dir); err != nil {
					return err
				}
				if err := s.cloner.Clone(ctx, s.manifest.RepositoryURL, dir); err != nil {
					return err
				}
			}
			copied, err := platform.CopyTree(dir, s.baseDir, GitMetadataDir)
			if err != nil {
				return err
			}
			s.log.WithField("files", len(copied)).Info("copied mirror into base directory")
			return nil
		},
	)
	return []*model.SyncTask{task}
}

// mirrorSatisfied reports whether the mirror holds files and every one of
// them is present at the same relative path under the base directory.
func (s *Service) mirrorSatisfied() bool {
	dir := s.MirrorDir()
	if !platform.DirHasFiles(dir) {
		return false
	}
	files, err := mirroredFiles(dir)
	if err != nil {
		return false
	}
	for _, rel := range files {
		if !platform.FileExists(filepath.Join(s.baseDir, rel)) {
			return false
		}
	}
	return true
}

// mirroredFiles lists the mirror's regular files relative to dir, without git metadata
func mirroredFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && d.Name() == GitMetadataDir {
			return fs.SkipDir
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	return files, err
}

// AllSatisfied re-derives every expected path and reports whether all exist
func (s *Service) AllSatisfied() bool {
	return len(s.Missing()) == 0
}

// Missing returns every expected path that is absent. Playlist, archive and
// mirror directories count as missing while they hold no files.
func (s *Service) Missing() []string {
	var missing []string
	for _, pdf := range s.manifest.PDFs {
		if path := s.pdfPath(pdf); !platform.FileExists(path) {
			missing = append(missing, path)
		}
	}
	for _, c := range s.manifest.Categories {
		for _, url := range c.Videos {
			if path := filepath.Join(s.CategoryDir(c), VideoID(url)+VideoExt); !platform.FileExists(path) {
				missing = append(missing, path)
			}
		}
		for _, url := range c.Playlists {
			if dir := s.playlistDir(c, url); !platform.DirHasFiles(dir) {
				missing = append(missing, dir)
			}
		}
	}
	if s.manifest.ArchiveURL != "" && !platform.DirHasFiles(s.ArchiveDir()) {
		missing = append(missing, s.ArchiveDir())
	}
	if s.manifest.RepositoryURL != "" && !s.mirrorSatisfied() {
		missing = append(missing, s.MirrorDir())
	}
	return missing
}

// Run performs one full synchronization pass
func (s *Service) Run(ctx context.Context) (*model.Report, error) {
	report := model.NewReport()
	logger := s.log.WithFields(log.Fields{"run": report.RunID, "base": s.baseDir})

	if err := s.EnsureDirectories(); err != nil {
		return report, err
	}

	if s.AllSatisfied() {
		logger.Info("all resources already present")
		return report, nil
	}

	steps := []func(context.Context) []*model.SyncTask{
		s.SyncPDFs,
		s.SyncCategoryVideos,
		s.SyncArchiveBundle,
		s.SyncRepositoryMirror,
	}
	for _, step := range steps {
		for _, task := range step(ctx) {
			report.Add(task)
		}
	}

	logger.Info(report.Summary())
	return report, ctx.Err()
}

// InstallTooling resolves yt-dlp and git, installing them when missing.
// Results are logged, not returned.
func (s *Service) InstallTooling(ctx context.Context) {
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		s.log.WithError(err).Warn("failed to install yt-dlp")
	} else {
		s.log.Info("yt-dlp is available")
	}

	if platform.CommandExists(platform.GitCommand) {
		s.log.Info("git is available")
		return
	}
	if err := platform.InstallPackage(ctx, platform.GitCommand); err != nil {
		s.log.WithError(err).Warn("failed to install git")
		return
	}
	s.log.Info("git installed")
}

func (s *Service) pdfPath(pdf model.PDFResource) string {
	return filepath.Join(s.baseDir, pdf.Filename)
}

func (s *Service) playlistDir(c model.Category, url string) string {
	id := platform.ExtractPlaylistID(url)
	if id == "" {
		id = VideoID(url)
	}
	return filepath.Join(s.CategoryDir(c), id)
}

func isCompressed(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range CompressedExts {
		if ext == e {
			return true
		}
	}
	return false
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.SyncTask) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()
	if callback != nil {
		callback(task)
	}
}
