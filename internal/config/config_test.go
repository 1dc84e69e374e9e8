package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = os.Stat(filepath.Join(dir, "config.toml"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "db"))
	assert.NoError(t, err)
}

func TestLoadReadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)

	content := "language = \"en\"\ncurrency = \"USD\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "USD", cfg.Currency)
	// missing keys keep their defaults
	assert.Equal(t, "02/01/2006", cfg.DateLayout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestPathsFollowHomeOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)

	dbPath, err := DatabasePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "db", "appart.sqlite"), dbPath)

	logPath, err := LogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "appart.log"), logPath)
}
