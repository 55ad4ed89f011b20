package browser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ytget/offgrid/internal/model"
	"github.com/ytget/offgrid/internal/platform"
)

// PreferredCategory is selected on first start when present
const PreferredCategory = "Medical"

// ErrUnknownCategory is returned for names that are not in the catalog
var ErrUnknownCategory = errors.New("unknown category")

// Catalog maps category names to directories under the base directory
type Catalog struct {
	baseDir    string
	categories []model.BrowseCategory
}

// NewCatalog creates a catalog for baseDir
func NewCatalog(baseDir string, categories []model.BrowseCategory) *Catalog {
	return &Catalog{
		baseDir:    baseDir,
		categories: append([]model.BrowseCategory(nil), categories...),
	}
}

// BaseDir returns the root of the resource tree
func (c *Catalog) BaseDir() string {
	return c.baseDir
}

// Categories returns category names in manifest order
func (c *Catalog) Categories() []string {
	names := make([]string, 0, len(c.categories))
	for _, cat := range c.categories {
		names = append(names, cat.Name)
	}
	return names
}

// Dir returns the directory of the named category
func (c *Catalog) Dir(name string) (string, error) {
	for _, cat := range c.categories {
		if cat.Name == name {
			return filepath.Join(c.baseDir, cat.Dir), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownCategory, name)
}

// ListFiles returns every regular file below the category directory, in
// walk order. A category whose directory does not exist yet is empty.
func (c *Catalog) ListFiles(category string) ([]string, error) {
	dir, err := c.Dir(category)
	if err != nil {
		return nil, err
	}
	return platform.ListFiles(dir)
}

// InitialCategory picks the category shown at startup: last if it still
// exists, else PreferredCategory, else the first one.
func (c *Catalog) InitialCategory(last string) string {
	names := c.Categories()
	if len(names) == 0 {
		return ""
	}
	for _, candidate := range []string{last, PreferredCategory} {
		for _, name := range names {
			if candidate != "" && strings.EqualFold(name, candidate) {
				return name
			}
		}
	}
	return names[0]
}
