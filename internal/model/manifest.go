package model

import (
	"fmt"
	"strings"
)

// Default directory names for the bulk resources
const (
	DefaultArchiveDir = "Archive_Videos"
	DefaultMirrorDir  = "HOME"
)

// Category maps a name to a directory under the base directory and the
// videos that belong in it.
type Category struct {
	Name      string   `yaml:"name"`
	Dir       string   `yaml:"dir,omitempty"`
	Videos    []string `yaml:"videos,omitempty"`
	Playlists []string `yaml:"playlists,omitempty"`
}

// DirName returns the category directory relative to the base directory
func (c Category) DirName() string {
	if c.Dir != "" {
		return c.Dir
	}
	return c.Name
}

// PDFResource is a direct-download manifest entry
type PDFResource struct {
	URL      string `yaml:"url"`
	Filename string `yaml:"filename"`
}

// Manifest declares every resource the synchronizer is responsible for.
type Manifest struct {
	Categories    []Category    `yaml:"categories"`
	PDFs          []PDFResource `yaml:"pdfs"`
	ArchiveURL    string        `yaml:"archive_url,omitempty"`
	ArchiveDir    string        `yaml:"archive_dir,omitempty"`
	RepositoryURL string        `yaml:"repository_url,omitempty"`
	MirrorDir     string        `yaml:"mirror_dir,omitempty"`
}

// BrowseCategory is a named directory shown by the browser
type BrowseCategory struct {
	Name string
	Dir  string
}

// Clone returns a deep copy so callers cannot mutate a shared manifest
func (m Manifest) Clone() Manifest {
	out := m
	out.Categories = make([]Category, len(m.Categories))
	for i, c := range m.Categories {
		c.Videos = append([]string(nil), c.Videos...)
		c.Playlists = append([]string(nil), c.Playlists...)
		out.Categories[i] = c
	}
	out.PDFs = append([]PDFResource(nil), m.PDFs...)
	return out
}

// ArchiveDirName returns the archive bundle directory name
func (m Manifest) ArchiveDirName() string {
	if m.ArchiveDir != "" {
		return m.ArchiveDir
	}
	return DefaultArchiveDir
}

// MirrorDirName returns the repository mirror directory name
func (m Manifest) MirrorDirName() string {
	if m.MirrorDir != "" {
		return m.MirrorDir
	}
	return DefaultMirrorDir
}

// BrowseCategories returns the categories followed by the archive and
// mirror directories, in manifest order.
func (m Manifest) BrowseCategories() []BrowseCategory {
	out := make([]BrowseCategory, 0, len(m.Categories)+2)
	for _, c := range m.Categories {
		out = append(out, BrowseCategory{Name: c.Name, Dir: c.DirName()})
	}
	if m.ArchiveURL != "" {
		out = append(out, BrowseCategory{Name: m.ArchiveDirName(), Dir: m.ArchiveDirName()})
	}
	if m.RepositoryURL != "" {
		out = append(out, BrowseCategory{Name: m.MirrorDirName(), Dir: m.MirrorDirName()})
	}
	return out
}

// Validate checks names, filenames and URLs for obvious mistakes
func (m Manifest) Validate() error {
	seen := make(map[string]bool)
	for i, c := range m.Categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return fmt.Errorf("category %d has an empty name", i)
		}
		if seen[strings.ToLower(name)] {
			return fmt.Errorf("duplicate category: %s", name)
		}
		seen[strings.ToLower(name)] = true

		if !isPathElement(c.DirName()) {
			return fmt.Errorf("category %s: directory must be a single path element: %q", name, c.DirName())
		}
		for _, u := range append(append([]string(nil), c.Videos...), c.Playlists...) {
			if strings.TrimSpace(u) == "" {
				return fmt.Errorf("category %s has an empty URL", name)
			}
		}
	}

	filenames := make(map[string]bool)
	for i, pdf := range m.PDFs {
		if strings.TrimSpace(pdf.URL) == "" {
			return fmt.Errorf("pdf %d has an empty URL", i)
		}
		if !isPathElement(pdf.Filename) {
			return fmt.Errorf("pdf %d: invalid filename: %q", i, pdf.Filename)
		}
		if filenames[pdf.Filename] {
			return fmt.Errorf("duplicate pdf filename: %s", pdf.Filename)
		}
		filenames[pdf.Filename] = true
	}

	for _, dir := range []string{m.ArchiveDirName(), m.MirrorDirName()} {
		if !isPathElement(dir) {
			return fmt.Errorf("bulk directory must be a single path element: %q", dir)
		}
	}
	if m.ArchiveDirName() == m.MirrorDirName() {
		return fmt.Errorf("archive and mirror directories must differ: %s", m.ArchiveDirName())
	}
	return nil
}

// isPathElement reports whether name names one entry directly below the base directory
func isPathElement(name string) bool {
	trimmed := strings.TrimSpace(name)
	return trimmed != "" && trimmed != "." && trimmed != ".." && !strings.ContainsAny(name, `/\`)
}
