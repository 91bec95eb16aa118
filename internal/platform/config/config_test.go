package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "shelter-pet-tracker", cfg.AppName)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, BackendJSON, cfg.Storage.Backend)
	assert.Equal(t, "", cfg.Storage.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SHELTER_STORAGE_BACKEND", "SQLite")
	t.Setenv("SHELTER_STORAGE_PATH", "/data/shelter.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "9090")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/data/shelter.db", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
}

func TestLoad_ExplicitAddrWinsOverPort(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SHELTER_ADDR", "0.0.0.0:7000")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:7000", cfg.Addr)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelter.yaml")
	content := "storage:\n  backend: memory\nlog:\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("SHELTER_STORAGE_BACKEND", "postgres")
	_, err := Load(viper.New(), "")
	assert.ErrorContains(t, err, "storage.backend")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
