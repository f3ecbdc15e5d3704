package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"airename/internal/prompt"
	"airename/internal/renamer"
)

const (
	ollamaDefaultBaseURL = "http://localhost:11434"
	ollamaDefaultModel   = "llama3.1"
)

// Ollama generates filenames through a local Ollama server's chat API.
// No vision support: scanned content falls back to the original filename.
type Ollama struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewOllama(baseURL, model string) *Ollama {
	if baseURL == "" {
		baseURL = ollamaDefaultBaseURL
	}
	if model == "" {
		model = ollamaDefaultModel
	}
	return &Ollama{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: 2 * time.Minute},
	}
}

func (o *Ollama) Name() string { return "Ollama" }

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
}

func (o *Ollama) GenerateFileName(ctx context.Context, req renamer.GenerateRequest) (string, error) {
	if renamer.IsScannedContent(req.Content) {
		return fallbackFromFilename(req.OriginalName), nil
	}

	body, err := json.Marshal(ollamaChatRequest{
		Model: o.model,
		Messages: []ollamaMessage{
			{Role: "system", Content: prompt.System},
			{Role: "user", Content: prompt.Build(prompt.Context{
				Content:      req.Content,
				OriginalName: req.OriginalName,
				Convention:   req.Convention,
				Category:     req.Category,
				FileInfo:     req.FileInfo,
			})},
		},
	})
	if err != nil {
		return "", fmt.Errorf("encoding ollama request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var chat ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return "", fmt.Errorf("decoding ollama response: %w", err)
	}

	name := SanitizeResponse(chat.Message.Content)
	if name == "" {
		return "", fmt.Errorf("empty response from Ollama")
	}
	return name, nil
}

type ollamaTagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// ListModels queries the local server for installed models.
func (o *Ollama) ListModels(ctx context.Context) ([]string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, err
	}

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}

	var tags ollamaTagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, fmt.Errorf("decoding ollama response: %w", err)
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return names, nil
}
