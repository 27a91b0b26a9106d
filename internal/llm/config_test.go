package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_TurnUsesGlobalTimeout(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskTurn))
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SCENARIOGEN_LLM_ENABLED", "true")
	t.Setenv("SCENARIOGEN_LLM_ENDPOINT", "https://api.example.test/v1")
	t.Setenv("SCENARIOGEN_LLM_MODEL", "writer-small")
	t.Setenv("SCENARIOGEN_LLM_API_KEY", "secret")
	t.Setenv("SCENARIOGEN_LLM_TIMEOUT_MS", "9000")
	t.Setenv("SCENARIOGEN_LLM_TURN_TIMEOUT_MS", "15000")
	t.Setenv("SCENARIOGEN_LLM_TURN_TEMPERATURE", "0.4")
	t.Setenv("SCENARIOGEN_LLM_TURN_MAX_TOKENS", "800")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "https://api.example.test/v1", cfg.Endpoint)
	assert.Equal(t, "writer-small", cfg.Model)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 15000, cfg.TaskTimeout(TaskTurn))
	assert.InDelta(t, 0.4, cfg.Tasks[TaskTurn].Temperature, 1e-9)
	assert.Equal(t, 800, cfg.Tasks[TaskTurn].MaxTokens)
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("SCENARIOGEN_LLM_TURN_TIMEOUT_MS", "not-a-number")
	t.Setenv("SCENARIOGEN_LLM_TURN_TEMPERATURE", "9")
	t.Setenv("SCENARIOGEN_LLM_MAX_RETRIES", "-1")

	cfg := LoadConfig()
	def := DefaultConfig()

	assert.Equal(t, def.TimeoutMs, cfg.TaskTimeout(TaskTurn))
	assert.Equal(t, def.Tasks[TaskTurn].Temperature, cfg.Tasks[TaskTurn].Temperature)
	assert.Equal(t, def.MaxRetries, cfg.MaxRetries)
}
