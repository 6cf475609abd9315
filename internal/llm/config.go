package llm

import (
	"os"
	"strconv"
)

// Config holds all configuration for the recommendation subsystem.
type Config struct {
	Enabled     bool
	LogCalls    bool
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	TimeoutMs   int
	MaxRetries  int
}

// DefaultConfig returns a Config with sensible defaults. Generation is
// disabled by default; the deterministic fallback text is used instead.
func DefaultConfig() Config {
	return Config{
		Enabled:     false,
		LogCalls:    false,
		BaseURL:     "https://api.openai.com/v1",
		Model:       "gpt-4o-mini",
		Temperature: 0.3,
		MaxTokens:   1024,
		TimeoutMs:   30000,
		MaxRetries:  2,
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ALACARTE_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ALACARTE_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ALACARTE_LLM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("ALACARTE_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("ALACARTE_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("ALACARTE_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("ALACARTE_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}
