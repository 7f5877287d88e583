package iologger_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/imgset/oiprep/internal/iologger"
	"github.com/imgset/oiprep/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}

	require.NoError(t, iologger.Init(dir, cfg, false))
	slog.Info("hello", "key", "value")

	logPath := filepath.Join(dir, "oiprep.log")
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"key":"value"`)
}

func TestInitAppend(t *testing.T) {
	dir := t.TempDir()
	cfg := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}

	require.NoError(t, iologger.Init(dir, cfg, false))
	slog.Info("first")

	require.NoError(t, iologger.Init(dir, cfg, true))
	slog.Info("second")

	data, err := os.ReadFile(filepath.Join(dir, "oiprep.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestInitTruncate(t *testing.T) {
	dir := t.TempDir()
	cfg := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}

	require.NoError(t, iologger.Init(dir, cfg, false))
	slog.Info("first")

	require.NoError(t, iologger.Init(dir, cfg, false))
	slog.Info("second")

	data, err := os.ReadFile(filepath.Join(dir, "oiprep.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestInitLevel(t *testing.T) {
	dir := t.TempDir()
	cfg := config.LogConfig{
		Format:      "text",
		Level:       "warn",
		Destination: "file",
	}

	require.NoError(t, iologger.Init(dir, cfg, false))
	slog.Info("quiet")
	slog.Warn("loud")

	data, err := os.ReadFile(filepath.Join(dir, "oiprep.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "quiet")
	assert.Contains(t, string(data), "loud")
}

func TestInitBadDir(t *testing.T) {
	cfg := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	err := iologger.Init(
		filepath.Join(t.TempDir(), "does", "not", "exist"), cfg, false,
	)
	require.Error(t, err)
}
