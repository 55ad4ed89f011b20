package media

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// ffprobe constants
const (
	FFprobeCommand      = "ffprobe"
	FFprobeLogLevel     = "error"
	FFprobeShowEntries  = "format=duration"
	FFprobeOutputFormat = "csv=p=0"
	DefaultProbeTimeout = 10 * time.Second
)

// Prober reads container metadata with ffprobe
type Prober struct {
	timeout time.Duration
}

// NewProber creates a prober with the default timeout
func NewProber() *Prober {
	return &Prober{timeout: DefaultProbeTimeout}
}

// BuildFFprobeArgs builds the ffprobe arguments that print the duration in seconds
func BuildFFprobeArgs(path string) []string {
	return []string{
		"-v", FFprobeLogLevel,
		"-show_entries", FFprobeShowEntries,
		"-of", FFprobeOutputFormat,
		path,
	}
}

// Duration returns the length of the media file at path
func (p *Prober) Duration(ctx context.Context, path string) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	output, err := exec.CommandContext(ctx, FFprobeCommand, BuildFFprobeArgs(path)...).Output()
	if err != nil {
		return 0, fmt.Errorf("failed to get video duration: %w", err)
	}
	return ParseDuration(string(output))
}

// ParseDuration converts ffprobe's seconds output into a time.Duration
func ParseDuration(output string) (time.Duration, error) {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(output), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

// FormatDuration formats d as HH:MM:SS, or MM:SS under an hour
func FormatDuration(d time.Duration) string {
	total := int(d.Round(time.Second).Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
