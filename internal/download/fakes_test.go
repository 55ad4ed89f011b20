package download

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/ytget/offgrid/internal/model"
)

type fakeFetcher struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]error
}

func (f *fakeFetcher) Fetch(_ context.Context, url, dest string) error {
	f.mu.Lock()
	f.calls = append(f.calls, url)
	err := f.fail[url]
	f.mu.Unlock()
	if err != nil {
		return err
	}
	return os.WriteFile(dest, []byte("%PDF-1.4 "+url), 0644)
}

func (f *fakeFetcher) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type fakeVideos struct {
	downloads   []string
	bundles     []string
	bundleFiles []string
	ext         string
	fail        map[string]error
}

func (v *fakeVideos) Download(_ context.Context, url, outputTemplate string) error {
	v.downloads = append(v.downloads, url)
	if err := v.fail[url]; err != nil {
		return err
	}
	ext := v.ext
	if ext == "" {
		ext = "mp4"
	}
	return os.WriteFile(strings.Replace(outputTemplate, "%(ext)s", ext, 1), []byte("video"), 0644)
}

func (v *fakeVideos) DownloadBundle(_ context.Context, url, dir, archiveFile string) error {
	v.bundles = append(v.bundles, url)
	if err := v.fail[url]; err != nil {
		return err
	}
	for _, name := range v.bundleFiles {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("item"), 0644); err != nil {
			return err
		}
	}
	return os.WriteFile(archiveFile, []byte("archiveorg item\n"), 0644)
}

type fakeCloner struct {
	clones int
	files  map[string]string
}

func (c *fakeCloner) Clone(_ context.Context, _, dest string) error {
	c.clones++
	for rel, content := range c.files {
		path := filepath.Join(dest, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

type fakeLister struct {
	items map[string][]string
}

func (l fakeLister) ListVideoURLs(_ context.Context, url string) ([]string, error) {
	items, ok := l.items[url]
	if !ok {
		return nil, errors.New("playlist unavailable")
	}
	return items, nil
}

type fakeExtractor struct {
	extracted []string
}

func (e *fakeExtractor) Extract(path, dir string) ([]string, error) {
	e.extracted = append(e.extracted, path)
	out := filepath.Join(dir, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))+".mp4")
	return []string{out}, os.WriteFile(out, []byte("unpacked"), 0644)
}

type fixture struct {
	base      string
	service   *Service
	fetcher   *fakeFetcher
	videos    *fakeVideos
	cloner    *fakeCloner
	extractor *fakeExtractor
	logs      *test.Hook
}

func newFixture(t *testing.T, manifest model.Manifest) *fixture {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)

	f := &fixture{
		base:      filepath.Join(t.TempDir(), "resources"),
		fetcher:   &fakeFetcher{fail: map[string]error{}},
		videos:    &fakeVideos{fail: map[string]error{}},
		cloner:    &fakeCloner{files: map[string]string{}},
		extractor: &fakeExtractor{},
		logs:      hook,
	}
	f.service = NewService(f.base, manifest,
		WithFetcher(f.fetcher),
		WithVideoDownloader(f.videos),
		WithCloner(f.cloner),
		WithPlaylistLister(fakeLister{items: map[string][]string{}}),
		WithExtractor(f.extractor),
		WithLogger(logger),
	)
	return f
}

func testManifest() model.Manifest {
	return model.Manifest{
		Categories: []model.Category{
			{Name: "Medical", Videos: []string{"https://www.youtube.com/watch?v=med1"}},
			{Name: "Hunting", Videos: []string{"https://youtu.be/hunt1", "https://www.youtube.com/shorts/hunt2"}},
		},
		PDFs: []model.PDFResource{
			{URL: "https://example.org/a.pdf", Filename: "a.pdf"},
			{URL: "https://example.org/b.pdf", Filename: "b.pdf"},
		},
	}
}
