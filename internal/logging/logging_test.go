package logging

import (
	"bytes"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithOutput("debug", &buf)
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	logger.WithField("file", "a.pdf").Info("downloaded")
	assert.Contains(t, buf.String(), "msg=downloaded")
	assert.Contains(t, buf.String(), "file=a.pdf")
}

func TestNew_DefaultLevel(t *testing.T) {
	logger, err := New("")
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud")
	assert.Error(t, err)
}
