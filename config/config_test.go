package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Config reads, restoring them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"COMBAT_LOG_LEVEL", "COMBAT_LOG_FORMAT", "COMBAT_MAX_DEPTH"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestParseEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 0, cfg.MaxDepth)
}

func TestParseEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("COMBAT_LOG_LEVEL", "debug")
	t.Setenv("COMBAT_LOG_FORMAT", "json")
	t.Setenv("COMBAT_MAX_DEPTH", "12")

	cfg, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "debug", LogFormat: "json", MaxDepth: 12}, cfg)
}

func TestParseEnvInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("COMBAT_MAX_DEPTH", "deep")
	_, err := ParseEnv()
	assert.Error(t, err)

	t.Setenv("COMBAT_MAX_DEPTH", "-1")
	_, err = ParseEnv()
	assert.Error(t, err)
}

func TestLoadDotenv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("COMBAT_LOG_FORMAT=json\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadMissingDotenv(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}
