package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"airename/internal/prompt"
	"airename/internal/renamer"
)

const claudeModel = "claude-3-haiku-20240307"

// Claude generates filenames through the Anthropic Messages API. Scanned
// images are forwarded as vision input.
type Claude struct {
	client anthropic.Client
	model  string
}

func NewClaude(apiKey string) (*Claude, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("claude provider requires an API key")
	}
	return &Claude{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  claudeModel,
	}, nil
}

func (c *Claude) Name() string { return "Claude" }

func (c *Claude) GenerateFileName(ctx context.Context, req renamer.GenerateRequest) (string, error) {
	pctx := prompt.Context{
		Content:      req.Content,
		OriginalName: req.OriginalName,
		Convention:   req.Convention,
		Category:     req.Category,
		FileInfo:     req.FileInfo,
	}

	var blocks []anthropic.ContentBlockParamUnion
	if mediaType, data, ok := renamer.DecodeScannedImage(req.Content); ok {
		pctx.Content = visionContentNote
		blocks = append(blocks,
			anthropic.NewImageBlockBase64(mediaType, data),
			anthropic.NewTextBlock(prompt.Build(pctx)),
		)
	} else if renamer.IsScannedDocument(req.Content) {
		// Scanned PDF without an embedded image; nothing useful to send.
		return fallbackFromFilename(req.OriginalName), nil
	} else {
		blocks = append(blocks, anthropic.NewTextBlock(prompt.Build(pctx)))
	}

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: 100,
		System:    []anthropic.TextBlockParam{{Text: prompt.System}},
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(blocks...)},
	})
	if err != nil {
		return "", fmt.Errorf("claude api error: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	name := SanitizeResponse(text.String())
	if name == "" {
		return "", fmt.Errorf("empty response from Claude")
	}
	return name, nil
}
