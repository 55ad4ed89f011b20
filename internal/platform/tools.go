package platform

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// External tool names
const (
	GitCommand    = "git"
	YTDLPCommand  = "yt-dlp"
	FFmpegCommand = "ffmpeg"
)

// lookPath is replaced in tests
var lookPath = exec.LookPath

// CommandExists reports whether name resolves on PATH
func CommandExists(name string) bool {
	_, err := lookPath(name)
	return err == nil
}

// InstallCommand returns the package manager invocation that installs pkg on goos
func InstallCommand(goos, pkg string) ([]string, error) {
	switch goos {
	case OSWindows:
		return []string{"choco", "install", "-y", pkg}, nil
	case OSDarwin:
		return []string{"brew", "install", pkg}, nil
	case OSLinux:
		return []string{"sudo", "apt-get", "install", "-y", pkg}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, goos)
	}
}

// InstallPackage installs pkg with the platform package manager. Output is
// forwarded to the terminal so password prompts stay visible.
func InstallPackage(ctx context.Context, pkg string) error {
	args, err := InstallCommand(runtime.GOOS, pkg)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to install %s: %w", pkg, err)
	}
	return nil
}

// GitClone clones repo into dest
func GitClone(ctx context.Context, repo, dest string) error {
	cmd := exec.CommandContext(ctx, GitCommand, "clone", "--depth", "1", repo, dest)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git clone %s: %w: %s", repo, err, string(out))
	}
	return nil
}
