package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultParallelism, cfg.Parallelism)
	assert.Equal(t, 15*time.Second, cfg.Timeout())
	assert.Zero(t, cfg.RateLimit())
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := DefaultConfig()
	cfg.BaseURL = "http://localhost:9999"
	cfg.RateLimitMillis = 250
	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", loaded.BaseURL)
	assert.Equal(t, 250*time.Millisecond, loaded.RateLimit())
	assert.Equal(t, cfg.Credentials, loaded.Credentials)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://env.test")
	t.Setenv(EnvListenAddr, ":7000")
	t.Setenv("TUNESCOUT_DEBUG", "true")

	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv(filepath.Join(t.TempDir(), "none.env")))
	assert.Equal(t, "http://env.test", cfg.BaseURL)
	assert.Equal(t, ":7000", cfg.ListenAddr)
	assert.True(t, cfg.Debug)
}

func TestApplyEnvLoadsDotEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TUNESCOUT_DB=/tmp/from-dotenv.db\n"), 0644))
	t.Cleanup(func() { os.Unsetenv(EnvDatabase) })

	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv(envFile))
	assert.Equal(t, "/tmp/from-dotenv.db", cfg.DatabasePath)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.BaseURL = ""
	assert.Error(t, cfg.Validate())
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
