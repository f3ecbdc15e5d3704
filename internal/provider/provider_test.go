package provider

import (
	"strings"
	"testing"

	"airename/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("claude requires an API key", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Provider = config.ProviderClaude
		if _, err := New(cfg); err == nil {
			t.Error("New() error = nil, want missing API key error")
		}
	})

	t.Run("openai requires an API key", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Provider = config.ProviderOpenAI
		if _, err := New(cfg); err == nil {
			t.Error("New() error = nil, want missing API key error")
		}
	})

	t.Run("local providers need no key", func(t *testing.T) {
		for _, name := range []string{config.ProviderOllama, config.ProviderLMStudio} {
			cfg := config.DefaultConfig()
			cfg.Provider = name
			p, err := New(cfg)
			if err != nil {
				t.Errorf("New(%s) error = %v", name, err)
				continue
			}
			if p.Name() == "" {
				t.Errorf("New(%s).Name() is empty", name)
			}
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Provider = "bard"
		_, err := New(cfg)
		if err == nil || !strings.Contains(err.Error(), "unsupported AI provider") {
			t.Errorf("New() error = %v, want unsupported provider error", err)
		}
	})
}
