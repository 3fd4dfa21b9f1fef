package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
database:
  dsn: "file:test.db"
feedback:
  max_message_length: 1000
  default_limit: 20
  max_limit: 100
  reclassify_on_start: true
  workers: 2
llm:
  endpoint: http://localhost:11434/v1
  model: llama3
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "file:test.db", cfg.Database.DSN)
		assert.Equal(t, 1000, cfg.Feedback.MaxMessageLength)
		assert.Equal(t, 20, cfg.Feedback.DefaultLimit)
		assert.Equal(t, 100, cfg.Feedback.MaxLimit)
		assert.True(t, cfg.Feedback.ReclassifyOnStart)
		assert.Equal(t, 2, cfg.Feedback.Workers)
		assert.True(t, cfg.LLM.Enabled())
		assert.Equal(t, "llama3", cfg.LLM.Model)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  listen: \":8081\"\n"))
		require.NoError(t, err)

		assert.Equal(t, ":8081", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "file:feedback.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5000, cfg.Feedback.MaxMessageLength)
		assert.Equal(t, 50, cfg.Feedback.DefaultLimit)
		assert.Equal(t, 500, cfg.Feedback.MaxLimit)
		assert.Equal(t, 4, cfg.Feedback.Workers)
		assert.False(t, cfg.LLM.Enabled())
		assert.InDelta(t, 0.3, cfg.LLM.Temperature, 0.0001)
		assert.Equal(t, 50, cfg.LLM.MaxFeedback)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("FEEDBACK_TEST_KEY", "secret-key")
		cfg, err := Load(writeConfig(t, `
llm:
  endpoint: http://localhost/v1
  model: gpt-4o-mini
  api_key: ${FEEDBACK_TEST_KEY}
`))
		require.NoError(t, err)
		assert.Equal(t, "secret-key", cfg.LLM.APIKey)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "invalid: yaml: content: ["))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "short server timeout", content: "server:\n  timeout: 100ms\n", errMsg: "server timeout must be at least 1 second"},
		{name: "llm without model", content: "llm:\n  endpoint: http://localhost/v1\n", errMsg: "llm.model is required"},
		{name: "llm bad temperature", content: "llm:\n  endpoint: http://localhost/v1\n  model: m\n  temperature: 3\n", errMsg: "llm.temperature must be between 0 and 2"},
		{name: "default above max", content: "feedback:\n  default_limit: 100\n  max_limit: 10\n", errMsg: "feedback.default_limit must not exceed"},
		{name: "negative workers", content: "feedback:\n  workers: -1\n", errMsg: "feedback.workers must be at least 1"},
		{name: "negative message length", content: "feedback:\n  max_message_length: -5\n", errMsg: "max_message_length must be non-negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, validate(cfg))
	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":8080", listen)
	assert.Equal(t, 30*time.Second, timeout)
	assert.Equal(t, cfg.Feedback, cfg.GetFeedbackConfig())
	assert.Equal(t, cfg.LLM, cfg.GetLLMConfig())
}
