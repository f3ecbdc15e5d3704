package provider

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"airename/internal/prompt"
	"airename/internal/renamer"
)

const (
	openAIModel       = "gpt-3.5-turbo"
	openAIVisionModel = "gpt-4o"
)

// OpenAI generates filenames through the Chat Completions API. Scanned
// images are sent as data URLs to the vision model.
type OpenAI struct {
	client      *openai.Client
	model       string
	visionModel string
}

func NewOpenAI(apiKey string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai provider requires an API key")
	}
	return &OpenAI{
		client:      openai.NewClient(apiKey),
		model:       openAIModel,
		visionModel: openAIVisionModel,
	}, nil
}

func (o *OpenAI) Name() string { return "OpenAI" }

func (o *OpenAI) GenerateFileName(ctx context.Context, req renamer.GenerateRequest) (string, error) {
	pctx := prompt.Context{
		Content:      req.Content,
		OriginalName: req.OriginalName,
		Convention:   req.Convention,
		Category:     req.Category,
		FileInfo:     req.FileInfo,
	}

	model := o.model
	var userMsg openai.ChatCompletionMessage
	if mediaType, data, ok := renamer.DecodeScannedImage(req.Content); ok {
		pctx.Content = visionContentNote
		model = o.visionModel
		userMsg = openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: prompt.Build(pctx)},
				{
					Type: openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{
						URL: fmt.Sprintf("data:%s;base64,%s", mediaType, data),
					},
				},
			},
		}
	} else if renamer.IsScannedDocument(req.Content) {
		return fallbackFromFilename(req.OriginalName), nil
	} else {
		userMsg = openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt.Build(pctx),
		}
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.System},
			userMsg,
		},
		MaxTokens:   100,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenAI")
	}

	name := SanitizeResponse(resp.Choices[0].Message.Content)
	if name == "" {
		return "", fmt.Errorf("empty response from OpenAI")
	}
	return name, nil
}
