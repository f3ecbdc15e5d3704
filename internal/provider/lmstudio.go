package provider

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"airename/internal/prompt"
	"airename/internal/renamer"
)

const (
	lmStudioDefaultBaseURL = "http://localhost:1234"
	lmStudioDefaultModel   = "local-model"
)

// LMStudio talks to a local LM Studio server through its OpenAI-compatible
// endpoint. No vision support: scanned content falls back to the original
// filename.
type LMStudio struct {
	client *openai.Client
	model  string
}

func NewLMStudio(baseURL, model string) *LMStudio {
	if baseURL == "" {
		baseURL = lmStudioDefaultBaseURL
	}
	if model == "" {
		model = lmStudioDefaultModel
	}

	// LM Studio ignores the API key but the client requires one.
	cfg := openai.DefaultConfig("lm-studio")
	base := strings.TrimRight(baseURL, "/")
	if !strings.HasSuffix(base, "/v1") {
		base += "/v1"
	}
	cfg.BaseURL = base

	return &LMStudio{client: openai.NewClientWithConfig(cfg), model: model}
}

func (l *LMStudio) Name() string { return "LMStudio" }

func (l *LMStudio) GenerateFileName(ctx context.Context, req renamer.GenerateRequest) (string, error) {
	if renamer.IsScannedContent(req.Content) {
		return fallbackFromFilename(req.OriginalName), nil
	}

	resp, err := l.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: l.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.System},
			{Role: openai.ChatMessageRoleUser, Content: prompt.Build(prompt.Context{
				Content:      req.Content,
				OriginalName: req.OriginalName,
				Convention:   req.Convention,
				Category:     req.Category,
				FileInfo:     req.FileInfo,
			})},
		},
		MaxTokens:   100,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("lmstudio api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from LM Studio")
	}

	name := SanitizeResponse(resp.Choices[0].Message.Content)
	if name == "" {
		return "", fmt.Errorf("empty response from LM Studio")
	}
	return name, nil
}

// ListModels queries the server's /v1/models endpoint.
func (l *LMStudio) ListModels(ctx context.Context) ([]string, error) {
	list, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("lmstudio api error: %w", err)
	}
	names := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		names = append(names, m.ID)
	}
	return names, nil
}
