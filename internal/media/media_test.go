package media

import (
	"errors"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

func TestBuildPlayerArgs(t *testing.T) {
	path := filepath.Join("videos", "knots.mp4")

	tests := []struct {
		player string
		first  string
	}{
		{FFplayCommand, "-autoexit"},
		{MPVCommand, "--force-window=yes"},
		{VLCCommand, "--play-and-exit"},
		{"other", path},
	}

	for _, tt := range tests {
		t.Run(tt.player, func(t *testing.T) {
			args := BuildPlayerArgs(tt.player, path)
			if args[0] != tt.first {
				t.Errorf("Expected first argument %q, got %q", tt.first, args[0])
			}
			if args[len(args)-1] != path {
				t.Errorf("Expected path as last argument, got %v", args)
			}
		})
	}
}

func TestExternalPlayer_NoPlayer(t *testing.T) {
	p := NewExternalPlayer()
	p.lookPath = func(string) (string, error) { return "", exec.ErrNotFound }

	err := p.Play("clip.mp4")
	if !errors.Is(err, ErrNoPlayer) {
		t.Errorf("Expected ErrNoPlayer, got %v", err)
	}
}

func TestExternalPlayer_PrefersFirstAvailable(t *testing.T) {
	p := NewExternalPlayer()
	p.lookPath = func(name string) (string, error) {
		if name == MPVCommand || name == VLCCommand {
			return "/usr/bin/" + name, nil
		}
		return "", exec.ErrNotFound
	}

	var started *exec.Cmd
	p.start = func(cmd *exec.Cmd) error {
		started = cmd
		return nil
	}

	if err := p.Play("clip.mp4"); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if started == nil {
		t.Fatal("Expected player to be started")
	}
	if started.Path != "/usr/bin/mpv" {
		t.Errorf("Expected mpv to be used, got %s", started.Path)
	}
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration("125.500000\n")
	if err != nil {
		t.Fatalf("ParseDuration failed: %v", err)
	}
	if d != 125500*time.Millisecond {
		t.Errorf("Expected 2m5.5s, got %v", d)
	}

	if _, err := ParseDuration("N/A"); err == nil {
		t.Error("Expected error for non-numeric duration")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{45 * time.Second, "00:45"},
		{2*time.Minute + 5*time.Second, "02:05"},
		{time.Hour + 2*time.Minute + 3*time.Second, "01:02:03"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.expected {
			t.Errorf("FormatDuration(%v) = %q, expected %q", tt.d, got, tt.expected)
		}
	}
}

func TestBuildFFprobeArgs(t *testing.T) {
	args := BuildFFprobeArgs("clip.mp4")
	expected := []string{"-v", "error", "-show_entries", "format=duration", "-of", "csv=p=0", "clip.mp4"}
	if len(args) != len(expected) {
		t.Fatalf("Expected %d args, got %d", len(expected), len(args))
	}
	for i := range expected {
		if args[i] != expected[i] {
			t.Errorf("Arg %d: expected %q, got %q", i, expected[i], args[i])
		}
	}
}

func TestPDFRenderer_MissingFile(t *testing.T) {
	r := NewPDFRenderer()
	if _, err := r.Render(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Error("Expected error for missing pdf")
	}
}

func TestPDFRenderer_Settings(t *testing.T) {
	r := NewPDFRenderer()
	r.SetDPI(150)
	r.SetDPI(-1)
	if r.dpi != 150 {
		t.Errorf("Expected dpi 150, got %v", r.dpi)
	}
	r.SetMaxPages(3)
	if r.maxPages != 3 {
		t.Errorf("Expected max pages 3, got %d", r.maxPages)
	}
}
