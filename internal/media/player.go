package media

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
)

// ErrNoPlayer is returned when none of the known players is installed
var ErrNoPlayer = errors.New("no video player found (install ffplay, mpv or vlc)")

// Known players in order of preference
const (
	FFplayCommand = "ffplay"
	MPVCommand    = "mpv"
	VLCCommand    = "vlc"
)

// DefaultPlayers is the search order used by NewExternalPlayer
var DefaultPlayers = []string{FFplayCommand, MPVCommand, VLCCommand}

// ExternalPlayer plays videos in a separate player process
type ExternalPlayer struct {
	players  []string
	lookPath func(string) (string, error)
	start    func(*exec.Cmd) error
}

// NewExternalPlayer creates a player that searches DefaultPlayers on PATH
func NewExternalPlayer() *ExternalPlayer {
	return &ExternalPlayer{
		players:  DefaultPlayers,
		lookPath: exec.LookPath,
		start:    startDetached,
	}
}

// Available returns the resolved path of the first installed player
func (p *ExternalPlayer) Available() (string, string, error) {
	for _, name := range p.players {
		if path, err := p.lookPath(name); err == nil {
			return name, path, nil
		}
	}
	return "", "", ErrNoPlayer
}

// Play starts playback of path and returns once the player is running
func (p *ExternalPlayer) Play(path string) error {
	name, bin, err := p.Available()
	if err != nil {
		return err
	}

	cmd := exec.Command(bin, BuildPlayerArgs(name, path)...)
	if err := p.start(cmd); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	return nil
}

// BuildPlayerArgs builds the arguments for the named player
func BuildPlayerArgs(name, path string) []string {
	switch name {
	case FFplayCommand:
		return []string{"-autoexit", "-window_title", filepath.Base(path), path}
	case MPVCommand:
		return []string{"--force-window=yes", "--title=" + filepath.Base(path), path}
	case VLCCommand:
		return []string{"--play-and-exit", path}
	default:
		return []string{path}
	}
}

// startDetached starts cmd and reaps it in the background
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
