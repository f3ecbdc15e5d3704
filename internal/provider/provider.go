// Package provider implements the AI provider capability: cloud services
// (claude, openai) that require an API key, and local services (ollama,
// lmstudio) reachable over plain HTTP.
package provider

import (
	"context"
	"fmt"

	"airename/internal/config"
	"airename/internal/renamer"
)

// New creates an AIProvider implementation for the configured provider.
// Cloud providers fail here when no API key is configured.
func New(cfg *config.Config) (renamer.AIProvider, error) {
	switch cfg.Provider {
	case config.ProviderClaude:
		return NewClaude(cfg.APIKey)
	case config.ProviderOpenAI:
		return NewOpenAI(cfg.APIKey)
	case config.ProviderOllama:
		return NewOllama(cfg.LocalLLM.BaseURL, cfg.LocalLLM.Model), nil
	case config.ProviderLMStudio:
		return NewLMStudio(cfg.LocalLLM.BaseURL, cfg.LocalLLM.Model), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %q", cfg.Provider)
	}
}

// ListModels lists the models a local provider has available. Cloud
// providers do not support listing.
func ListModels(ctx context.Context, cfg *config.Config) ([]string, error) {
	switch cfg.Provider {
	case config.ProviderOllama:
		return NewOllama(cfg.LocalLLM.BaseURL, cfg.LocalLLM.Model).ListModels(ctx)
	case config.ProviderLMStudio:
		return NewLMStudio(cfg.LocalLLM.BaseURL, cfg.LocalLLM.Model).ListModels(ctx)
	default:
		return nil, fmt.Errorf("provider %q does not support model listing", cfg.Provider)
	}
}

// visionContentNote replaces the document excerpt in prompts when the
// content is an attached image rather than text.
const visionContentNote = "The document could not be read as text; analyze the attached image of the document instead."
