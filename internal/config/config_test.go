package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "litshelf", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "http://localhost:3001/api", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.OTel.Enabled)
	assert.Equal(t, "0.0.0.0:3001", cfg.Mock.Addr())
	assert.Equal(t, time.Hour, cfg.Mock.TokenTTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/v1")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MOCK_PORT", "8080")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/v1", cfg.API.BaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 8080, cfg.Mock.Port)
}

func TestLoad_MissingDotEnvIsFine(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load()
	require.NoError(t, err)
}

func TestLoad_UnreadableDotEnvFails(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL"), 0o600))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			App:  AppConfig{Name: "litshelf", Environment: "development"},
			API:  APIConfig{BaseURL: "http://localhost:3001/api"},
			Mock: MockConfig{Port: 3001, JWTSecret: "dev-secret-change-me"},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("missing base URL", func(t *testing.T) {
		cfg := base()
		cfg.API.BaseURL = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-http base URL", func(t *testing.T) {
		cfg := base()
		cfg.API.BaseURL = "ftp://example.com"
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad mock port", func(t *testing.T) {
		cfg := base()
		cfg.Mock.Port = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("default secret in production", func(t *testing.T) {
		cfg := base()
		cfg.App.Environment = "production"
		assert.Error(t, cfg.Validate())
	})
}

func TestStateDir_Explicit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "litshelf-state")
	cfg := &Config{App: AppConfig{Name: "litshelf"}, State: StateConfig{Dir: dir}}

	got, err := cfg.StateDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)
	assert.DirExists(t, got)
}
