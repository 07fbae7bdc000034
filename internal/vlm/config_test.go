package vlm

import (
	"testing"
	"time"
)

func TestConfigFromEnv_Defaults(t *testing.T) {
	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Fatalf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.Model != "qwen-vl" {
		t.Fatalf("model = %q, want qwen-vl", cfg.OpenAI.Model)
	}
	if cfg.Timeout != 60*time.Second {
		t.Fatalf("timeout = %s, want 60s", cfg.Timeout)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("PROBANK_VLM_PROVIDER", "gemini")
	t.Setenv("PROBANK_GEMINI_API_KEY", "g-key")
	t.Setenv("PROBANK_GEMINI_MODEL", "gemini-pro")
	t.Setenv("PROBANK_VLM_TIMEOUT", "90s")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Fatalf("provider = %q", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "g-key" || cfg.Gemini.Model != "gemini-pro" {
		t.Fatalf("gemini config = %+v", cfg.Gemini)
	}
	if cfg.Timeout != 90*time.Second {
		t.Fatalf("timeout = %s", cfg.Timeout)
	}
}

func TestDiscoverConfig_Priority(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "o-key")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("ANTHROPIC_API_KEY", "a-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "openai" {
		t.Fatalf("provider = %q, OpenAI key should win", cfg.Provider)
	}

	t.Setenv("OPENAI_API_KEY", "")
	cfg, ok = DiscoverConfig()
	if !ok || cfg.Provider != "gemini" {
		t.Fatalf("provider = %q, want gemini", cfg.Provider)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing API key")
	}

	cfg.OpenAI.APIKey = "key"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mock needs no key: %v", err)
	}

	cfg.Provider = "llama"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
