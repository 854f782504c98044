package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.AI.BaseURL)
	assert.Equal(t, "anthropic/claude-3.5-sonnet", cfg.AI.Model)
	assert.InDelta(t, 0.7, cfg.AI.Temperature, 1e-9)
	assert.Equal(t, 30000, cfg.AI.TimeoutMs)
	assert.Equal(t, "./data/stride.db", cfg.Storage.DBPath)
	assert.Equal(t, "info", cfg.App.LogLevel)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stride.yaml")
	content := []byte(`
app:
  log_level: debug
storage:
  db_path: /var/lib/stride/stride.db
ai:
  model: anthropic/claude-3.7-sonnet
  temperature: 0.3
  api_key: ${STRIDE_TEST_KEY}
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	t.Setenv("STRIDE_TEST_KEY", "sk-from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "/var/lib/stride/stride.db", cfg.Storage.DBPath)
	assert.Equal(t, "anthropic/claude-3.7-sonnet", cfg.AI.Model)
	assert.InDelta(t, 0.3, cfg.AI.Temperature, 1e-9)
	assert.Equal(t, "sk-from-env", cfg.AI.APIKey)
	// Untouched keys keep their defaults.
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.AI.BaseURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STRIDE_AI_MODEL", "meta-llama/llama-3-70b")
	t.Setenv("STRIDE_AI_API_KEY", "sk-direct")
	t.Setenv("STRIDE_STORAGE_DB_PATH", "/tmp/override.db")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "meta-llama/llama-3-70b", cfg.AI.Model)
	assert.Equal(t, "sk-direct", cfg.AI.APIKey)
	assert.Equal(t, "/tmp/override.db", cfg.Storage.DBPath)
}

func TestConfig_LLMMapping(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.AI.APIKey = "sk-test"
	cfg.AI.Referer = "https://stride.app"

	llmCfg := cfg.LLM()
	assert.Equal(t, cfg.AI.BaseURL, llmCfg.BaseURL)
	assert.Equal(t, "sk-test", llmCfg.APIKey)
	assert.Equal(t, "https://stride.app", llmCfg.Referer)
	assert.Equal(t, cfg.AI.TimeoutMs, llmCfg.TimeoutMs)
}

func TestNewLogger_RejectsUnknownLevel(t *testing.T) {
	_, err := NewLogger("verbose")
	assert.Error(t, err)

	log, err := NewLogger("warn")
	require.NoError(t, err)
	require.NotNil(t, log)
}
