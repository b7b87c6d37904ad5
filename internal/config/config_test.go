package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, "file", cfg.Session.Backend)
	assert.Equal(t, 500, cfg.Demo.DelayMs)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("api:\n  base_url: https://portal.sanagustin.mx\noutput:\n  format: json\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://portal.sanagustin.mx", cfg.API.BaseURL)
	assert.Equal(t, "json", cfg.Output.Format)
	// Незаданные поля остаются со значениями по умолчанию
	assert.Equal(t, 30, cfg.API.Timeout)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Path = path
	cfg.Session.Backend = "redis"
	cfg.Session.Redis.Addr = "redis:6379"
	require.NoError(t, cfg.Save())

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "redis", loaded.Session.Backend)
	assert.Equal(t, "redis:6379", loaded.Session.Redis.Addr)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Output.Format = "xml"
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Session.Backend = "memcached"
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.API.Timeout = 0
	require.Error(t, cfg.Validate())
}

func TestGetConfigPathHomeOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SANAGUSTIN_HOME", home)

	path, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".sanagustin", "config.yaml"), path)
}
