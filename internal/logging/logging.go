// Package logging configures the logrus logger shared by the CLI and the browser.
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// DefaultLevel is used when no level is configured
const DefaultLevel = "info"

// New returns a text logger writing to stdout at the given level
func New(level string) (*log.Logger, error) {
	return NewWithOutput(level, os.Stdout)
}

// NewWithOutput returns a text logger writing to out at the given level
func NewWithOutput(level string, out io.Writer) (*log.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := log.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	return logger, nil
}
