package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"fastrank-go/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fastrank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "ties: max\nmax_values: 10\n")

	cfg, err := loadConfig([]string{"--ties", "min", "--config", path, "--access-log"})
	require.NoError(t, err)
	require.Equal(t, "min", cfg.Ties)
	require.Equal(t, 10, cfg.MaxValues)
	require.True(t, cfg.AccessLog)

	cfg, err = loadConfig([]string{"--config", path, "--max-values=5"})
	require.NoError(t, err)
	require.Equal(t, "max", cfg.Ties)
	require.Equal(t, 5, cfg.MaxValues)
}

func TestLoadConfigFileOnly(t *testing.T) {
	path := writeConfig(t, "ties: max\nmax_values: 10\nlisten: \"localhost:9090\"\n")

	cfg, err := loadConfig([]string{"--config=" + path})
	require.NoError(t, err)
	require.Equal(t, "max", cfg.Ties)
	require.Equal(t, 10, cfg.MaxValues)
	require.Equal(t, "localhost:9090", cfg.Listen)
	require.Equal(t, config.Default().Strategy, cfg.Strategy)
	require.False(t, cfg.AccessLog)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)

	path := writeConfig(t, "ties: first\nstrategy: quicksort\n")
	_, err = loadConfig([]string{"--config", path})
	require.ErrorIs(t, err, config.ErrInvalidConfiguration)
}
