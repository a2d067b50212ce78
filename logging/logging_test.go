package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_ConsoleLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Console: &buf})

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("failed to load plugin", zap.String("path", "/tmp/x.so"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "failed to load plugin")
	assert.Contains(t, out, "/tmp/x.so")
}

func TestNew_DebugShowsEverything(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Console: &buf, Debug: true})

	logger.Debug("loaded plugin")

	assert.Contains(t, buf.String(), "loaded plugin")
}

func TestNew_FileReceivesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gofetch.log")
	var buf bytes.Buffer
	logger := New(Options{Console: &buf, File: path})

	logger.Info("fetch finished", zap.Int("lines", 4))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"fetch finished"`)
	assert.Contains(t, string(data), `"lines":4`)
	assert.Empty(t, buf.String(), "info stays off the console")
}
