package config

import (
	"errors"
	"mapfuture/pkg/utils"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var envKeys = []string{
	"PORT", "GIN_MODE", "LOG_LEVEL", "PROMPT_PATH", "SYSTEM_PROMPT",
	"LLM_PROVIDER", "LLM_MODEL", "LLM_BASE_URL", "LLM_TIMEOUT",
	"GROQ_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY",
}

// clearEnv unsets every variable Load reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaultsToGroq(t *testing.T) {
	clearEnv(t)
	t.Setenv("GROQ_API_KEY", "gsk-test")

	cfg, err := LoadFrom()
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Addr() != ":8000" {
		t.Errorf("expected :8000, got %s", cfg.Addr())
	}
	if cfg.PromptPath != "travel_prompt.txt" {
		t.Errorf("unexpected prompt path %q", cfg.PromptPath)
	}
	if cfg.LLM.Provider != ProviderGroq || cfg.LLM.APIKey != "gsk-test" {
		t.Errorf("unexpected llm config %+v", cfg.LLM)
	}
	if cfg.LLM.Model != "llama-3.3-70b-versatile" {
		t.Errorf("unexpected model %q", cfg.LLM.Model)
	}
	if cfg.LLM.BaseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("unexpected base url %q", cfg.LLM.BaseURL)
	}
	if cfg.LLM.Timeout != 0 {
		t.Errorf("expected no timeout, got %s", cfg.LLM.Timeout)
	}
}

func TestLoadMissingCredential(t *testing.T) {
	clearEnv(t)

	_, err := LoadFrom()
	if !errors.Is(err, utils.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
}

func TestLoadCredentialFollowsProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("GROQ_API_KEY", "gsk-test")

	if _, err := LoadFrom(); !errors.Is(err, utils.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential without GEMINI_API_KEY, got %v", err)
	}

	t.Setenv("GEMINI_API_KEY", "gem-test")
	cfg, err := LoadFrom()
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.LLM.Provider != ProviderGemini || cfg.LLM.Model != "gemini-1.5-flash" || cfg.LLM.BaseURL != "" {
		t.Errorf("unexpected llm config %+v", cfg.LLM)
	}
}

func TestLoadUnsupportedProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "cohere")

	if _, err := LoadFrom(); !errors.Is(err, utils.ErrUnsupportedProvider) {
		t.Fatalf("expected ErrUnsupportedProvider, got %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("LLM_MODEL", "gpt-4.1")
	t.Setenv("LLM_BASE_URL", "http://localhost:1234/v1")
	t.Setenv("LLM_TIMEOUT", "45s")
	t.Setenv("PORT", "9090")

	cfg, err := LoadFrom()
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.LLM.Model != "gpt-4.1" || cfg.LLM.BaseURL != "http://localhost:1234/v1" {
		t.Errorf("overrides not applied: %+v", cfg.LLM)
	}
	if cfg.LLM.Timeout != 45*time.Second {
		t.Errorf("expected 45s timeout, got %s", cfg.LLM.Timeout)
	}
	if cfg.Addr() != ":9090" {
		t.Errorf("expected :9090, got %s", cfg.Addr())
	}
}

func TestLoadInvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("LLM_TIMEOUT", "soon")

	if _, err := LoadFrom(); !errors.Is(err, utils.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")

	path := filepath.Join(t.TempDir(), ".env")
	content := "GROQ_API_KEY=from-file\nPORT=1111\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := LoadFrom(path, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.LLM.APIKey != "from-file" {
		t.Errorf("expected key from env file, got %q", cfg.LLM.APIKey)
	}
	if cfg.Port != "7000" {
		t.Errorf("process env should win over env file, got port %q", cfg.Port)
	}
}
