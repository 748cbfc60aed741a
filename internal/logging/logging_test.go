package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/menta2k/brand-assets/internal/config"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("wrote asset", zap.String("name", "logo"))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "wrote asset", entry["msg"])
	assert.Equal(t, "logo", entry["name"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewConsoleDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LogConfig{Level: "debug", Format: "console"}, &buf)
	require.NoError(t, err)

	logger.Debug("crop box")
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "crop box")
}

func TestNewInvalid(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud", Format: "console"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = New(config.LogConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}
