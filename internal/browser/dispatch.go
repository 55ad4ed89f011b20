package browser

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"time"
)

// ViewKind tells the UI how a file was opened
type ViewKind int

const (
	// ViewPDF carries rendered pages for the embedded viewer
	ViewPDF ViewKind = iota
	// ViewVideo means an external player was started
	ViewVideo
	// ViewExternal means the OS default application was asked to open the file
	ViewExternal
)

// String returns the string representation of ViewKind
func (k ViewKind) String() string {
	switch k {
	case ViewPDF:
		return "pdf"
	case ViewVideo:
		return "video"
	default:
		return "external"
	}
}

// File extensions with a dedicated handler
const PDFExt = ".pdf"

// VideoExts are played with the video player
var VideoExts = []string{".mp4", ".avi", ".mov"}

// View is the result of opening a file
type View struct {
	Kind  ViewKind
	Path  string
	Pages []image.Image // rendered pages, PDF only
	Info  string        // short description for the status line
}

// PDFRenderer rasterizes a PDF into page images
type PDFRenderer interface {
	Render(path string) ([]image.Image, error)
}

// VideoPlayer starts playback of a video file
type VideoPlayer interface {
	Play(path string) error
}

// DurationProber reads the length of a media file
type DurationProber interface {
	Duration(ctx context.Context, path string) (time.Duration, error)
}

// Dispatcher opens files with the handler registered for their extension
type Dispatcher struct {
	renderer PDFRenderer
	player   VideoPlayer
	open     func(path string) error
	prober   DurationProber
	format   func(time.Duration) string
}

// NewDispatcher creates a dispatcher. open is the OS default-open function.
func NewDispatcher(renderer PDFRenderer, player VideoPlayer, open func(path string) error) *Dispatcher {
	return &Dispatcher{
		renderer: renderer,
		player:   player,
		open:     open,
		format:   func(d time.Duration) string { return d.Round(time.Second).String() },
	}
}

// SetProber enables duration lookup for videos
func (d *Dispatcher) SetProber(p DurationProber, format func(time.Duration) string) {
	d.prober = p
	if format != nil {
		d.format = format
	}
}

// KindOf returns the handler kind for path, by case-insensitive extension
func KindOf(path string) ViewKind {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == PDFExt {
		return ViewPDF
	}
	for _, v := range VideoExts {
		if ext == v {
			return ViewVideo
		}
	}
	return ViewExternal
}

// Open dispatches path to the PDF renderer, the video player or the OS
// default application.
func (d *Dispatcher) Open(path string) (View, error) {
	view := View{Kind: KindOf(path), Path: path}

	switch view.Kind {
	case ViewPDF:
		pages, err := d.renderer.Render(path)
		if err != nil {
			return View{}, err
		}
		view.Pages = pages
		view.Info = fmt.Sprintf("%d pages", len(pages))

	case ViewVideo:
		if err := d.player.Play(path); err != nil {
			return View{}, err
		}
		view.Info = filepath.Base(path)
		if d.prober != nil {
			if dur, err := d.prober.Duration(context.Background(), path); err == nil {
				view.Info = fmt.Sprintf("%s (%s)", view.Info, d.format(dur))
			}
		}

	default:
		if err := d.open(path); err != nil {
			return View{}, err
		}
		view.Info = filepath.Base(path)
	}
	return view, nil
}
