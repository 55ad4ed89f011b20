package media

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// Rendering defaults
const (
	DefaultDPI      = 96.0
	DefaultMaxPages = 0 // no limit
)

// PDFRenderer rasterizes every page of a PDF
type PDFRenderer struct {
	dpi      float64
	maxPages int
}

// NewPDFRenderer creates a renderer at DefaultDPI
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{dpi: DefaultDPI, maxPages: DefaultMaxPages}
}

// SetDPI sets the rasterizing resolution
func (r *PDFRenderer) SetDPI(dpi float64) {
	if dpi > 0 {
		r.dpi = dpi
	}
}

// SetMaxPages limits how many pages are rendered, zero renders all
func (r *PDFRenderer) SetMaxPages(n int) {
	if n >= 0 {
		r.maxPages = n
	}
}

// Render returns one image per page, in page order
func (r *PDFRenderer) Render(path string) ([]image.Image, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf %s: %w", path, err)
	}
	defer doc.Close()

	count := doc.NumPage()
	if r.maxPages > 0 && count > r.maxPages {
		count = r.maxPages
	}

	pages := make([]image.Image, 0, count)
	for n := 0; n < count; n++ {
		img, err := doc.ImageDPI(n, r.dpi)
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d of %s: %w", n+1, path, err)
		}
		pages = append(pages, img)
	}
	return pages, nil
}
