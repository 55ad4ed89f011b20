//go:build !windows

package platform

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// WriteFileAtomic streams r into path. The destination either keeps its old
// content or receives the complete new content; partial writes are discarded.
func WriteFileAtomic(path string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPermissions); err != nil {
		return err
	}

	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(DefaultFilePermissions))
	if err != nil {
		return fmt.Errorf("failed to create pending file: %w", err)
	}
	defer func() { _ = pf.Cleanup() }()

	if _, err := io.Copy(pf, r); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
