package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	// TaskTurn continues a session transcript for one turn.
	TaskTurn TaskType = "turn"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled  bool
	LogCalls bool
	// Endpoint is the base URL of an OpenAI-compatible API, including the
	// version path.
	Endpoint   string
	Model      string
	APIKey     string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig pointed at a local Ollama server's
// OpenAI-compatible API. LLM is disabled by default.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434/v1",
		Model:      "llama3.2",
		APIKey:     "ollama",
		TimeoutMs:  60000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskTurn: {Temperature: 0.8, MaxTokens: 400},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("SCENARIOGEN_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SCENARIOGEN_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SCENARIOGEN_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("SCENARIOGEN_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("SCENARIOGEN_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("SCENARIOGEN_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("SCENARIOGEN_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskTurn, "SCENARIOGEN_LLM_TURN_TIMEOUT_MS")
	applyTaskEnv(&cfg, TaskTurn, "SCENARIOGEN_LLM_TURN_TEMPERATURE", "SCENARIOGEN_LLM_TURN_MAX_TOKENS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}

func applyTaskEnv(cfg *LLMConfig, task TaskType, temperatureEnv, maxTokensEnv string) {
	tc := cfg.Tasks[task]
	if v := os.Getenv(temperatureEnv); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			tc.Temperature = f
		}
	}
	if v := os.Getenv(maxTokensEnv); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			tc.MaxTokens = n
		}
	}
	cfg.Tasks[task] = tc
}
