package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/valvenet/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "valvenet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "AA", cfg.Start)
	assert.Equal(t, uint32(30), cfg.Minutes)
	assert.Equal(t, uint32(26), cfg.DualMinutes)
	assert.True(t, cfg.Prune)
	assert.Equal(t, slog.LevelWarn, cfg.Level())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, "start: ZZ\ndual_minutes: 20\nlog_level: debug\nprune: false\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ZZ", cfg.Start)
	assert.Equal(t, uint32(30), cfg.Minutes)
	assert.Equal(t, uint32(20), cfg.DualMinutes)
	assert.False(t, cfg.Prune)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "colour: blue\n"))
	require.Error(t, err)

	_, err = config.Load(writeFile(t, "format: json\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "log_level: loud\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "start: \"\"\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLevel_Fallback(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "nonsense"
	assert.Equal(t, slog.LevelWarn, cfg.Level())
	cfg.LogLevel = "ERROR"
	assert.Equal(t, slog.LevelError, cfg.Level())
}
