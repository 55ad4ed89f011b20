package download

import (
	"context"

	"github.com/ytget/offgrid/internal/platform"
)

// GitCloner clones with the git executable
type GitCloner struct{}

// Clone runs git clone
func (GitCloner) Clone(ctx context.Context, repo, dest string) error {
	return platform.GitClone(ctx, repo, dest)
}
