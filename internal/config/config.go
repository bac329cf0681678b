// Package config loads the process configuration once at startup.
package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"io/fs"
	"mapfuture/pkg/utils"
	"os"
	"strings"
	"time"
)

const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// providerDefaults holds the credential variable, model and base URL used
// when LLM_MODEL / LLM_BASE_URL are not set.
var providerDefaults = map[string]struct {
	keyEnv  string
	model   string
	baseURL string
}{
	ProviderGroq:   {keyEnv: "GROQ_API_KEY", model: "llama-3.3-70b-versatile", baseURL: "https://api.groq.com/openai/v1"},
	ProviderOpenAI: {keyEnv: "OPENAI_API_KEY", model: "gpt-4o-mini"},
	ProviderGemini: {keyEnv: "GEMINI_API_KEY", model: "gemini-1.5-flash"},
}

type LLMConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	// Timeout of zero leaves the HTTP client without a deadline.
	Timeout  time.Duration
}

type Config struct {
	Port       string
	GinMode    string
	LogLevel   string
	PromptPath string
	LLM        LLMConfig

	// SystemPrompt, when set, is used instead of the prompt file.
	SystemPrompt string
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads .env (if present) and the process environment. Variables already
// set in the environment take precedence over the file.
func Load() (Config, error) {
	return LoadFrom(".env")
}

func LoadFrom(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: read %s: %v", utils.ErrInvalidConfig, f, err)
		}
	}

	var cfg Config
	cfg.Port = getEnvWithDefault("PORT", "8000")
	cfg.GinMode = os.Getenv("GIN_MODE")
	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	cfg.PromptPath = getEnvWithDefault("PROMPT_PATH", "travel_prompt.txt")
	cfg.SystemPrompt = os.Getenv("SYSTEM_PROMPT")

	llm, err := loadLLM()
	if err != nil {
		return Config{}, err
	}
	cfg.LLM = llm

	return cfg, nil
}

func loadLLM() (LLMConfig, error) {
	provider := strings.ToLower(getEnvWithDefault("LLM_PROVIDER", ProviderGroq))
	defaults, ok := providerDefaults[provider]
	if !ok {
		return LLMConfig{}, fmt.Errorf("%w: %q (use groq, openai or gemini)", utils.ErrUnsupportedProvider, provider)
	}

	apiKey := strings.TrimSpace(os.Getenv(defaults.keyEnv))
	if apiKey == "" {
		return LLMConfig{}, fmt.Errorf("%w: %s environment variable not set", utils.ErrMissingCredential, defaults.keyEnv)
	}

	var timeout time.Duration
	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return LLMConfig{}, fmt.Errorf("%w: LLM_TIMEOUT %q", utils.ErrInvalidConfig, v)
		}
		timeout = d
	}

	return LLMConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    getEnvWithDefault("LLM_MODEL", defaults.model),
		BaseURL:  getEnvWithDefault("LLM_BASE_URL", defaults.baseURL),
		Timeout:  timeout,
	}, nil
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
