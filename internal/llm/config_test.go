package llm

import (
	"testing"
	"time"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("PREPCORE_LLM_PROVIDER", "anthropic")
	t.Setenv("PREPCORE_LLM_API_KEY", "sk-test")
	t.Setenv("PREPCORE_LLM_MODEL", "claude-haiku")
	t.Setenv("PREPCORE_LLM_TIMEOUT", "90s")
	t.Setenv("PREPCORE_LLM_TEMPERATURE", "0.7")

	cfg := ConfigFromEnv()

	if cfg.Provider != "anthropic" {
		t.Errorf("Provider = %q", cfg.Provider)
	}
	if cfg.APIKey != "sk-test" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.Model != "claude-haiku" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("Temperature = %v", cfg.Temperature)
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("PREPCORE_LLM_PROVIDER", "")
	t.Setenv("PREPCORE_LLM_TIMEOUT", "")

	cfg := ConfigFromEnv()

	if cfg.Provider != "mock" {
		t.Errorf("default Provider = %q, want mock", cfg.Provider)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("default Timeout = %v, want 60s", cfg.Timeout)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("default Retry.MaxAttempts = %d, want 3", cfg.Retry.MaxAttempts)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"mock needs nothing", Config{Provider: "mock"}, false},
		{"openai with key", Config{Provider: "openai", APIKey: "k"}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"azure needs base url", Config{Provider: "azure", APIKey: "k"}, true},
		{"azure complete", Config{Provider: "azure", APIKey: "k", BaseURL: "https://r.openai.azure.com"}, false},
		{"unknown provider", Config{Provider: "cohere"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
