package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "model:\n  model: qwen2\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "qwen2", cfg.Model.Model)
	assert.Equal(t, "http://localhost:11434/v1", cfg.Model.BaseURL)
	assert.Equal(t, 60, cfg.Model.TimeoutSeconds)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.True(t, cfg.Log.Enabled)
	assert.Equal(t, "signals_log.csv", cfg.Log.Path)
}

func TestLoadValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"empty model", "model:\n  model: \"\"\n"},
		{"bad temperature", "model:\n  temperature: 5\n"},
		{"bad timeout", "model:\n  timeout_seconds: 0\n"},
		{"log enabled without path", "log:\n  enabled: true\n  path: \"\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "llama3", cfg.Model.Model)
	assert.True(t, cfg.Log.Enabled)
	require.NoError(t, validate(cfg))
}
