package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ',', cfg.Delimiter())
	assert.Equal(t, "groq", cfg.AI.Provider)
	assert.Equal(t, "rules.yaml", cfg.Rules.File)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CARTOLA_LOG_LEVEL", "debug")
	t.Setenv("CARTOLA_AI_PROVIDER", "gemini")
	t.Setenv("GROQ_API_KEY", "gsk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, "gsk-test", cfg.AI.APIKey)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "log:\n  level: warn\ncsv:\n  delimiter: \";\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, ';', cfg.Delimiter())
}

func TestLoad_InvalidValues(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("CARTOLA_LOG_LEVEL", "verbose")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("CARTOLA_LOG_LEVEL", "info")
	t.Setenv("CARTOLA_AI_PROVIDER", "openai")
	_, err = Load()
	assert.Error(t, err)
}
