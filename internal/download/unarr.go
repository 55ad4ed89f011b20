package download

import (
	"fmt"

	"github.com/gen2brain/go-unarr"
)

// UnarrExtractor unpacks zip, rar, 7z and tar files with libunarr
type UnarrExtractor struct{}

// Extract unpacks path into dir
func (UnarrExtractor) Extract(path, dir string) ([]string, error) {
	a, err := unarr.NewArchive(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", path, err)
	}
	defer a.Close()

	files, err := a.Extract(dir)
	if err != nil {
		return files, fmt.Errorf("failed to extract %s: %w", path, err)
	}
	return files, nil
}
