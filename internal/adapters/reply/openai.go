package reply

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/tradeinbox/inquiry-triage/internal/core"
)

// OpenAIDrafter generates reply drafts with an OpenAI chat model, falling
// back to templates when the API call fails.
type OpenAIDrafter struct {
	client      *openai.Client
	modelName   string
	maxTokens   int
	temperature float32
	topP        float32
	maxBodySize int
	fallback    *TemplateDrafter
	logger      *zap.Logger
}

// NewOpenAIDrafter creates a new OpenAI-backed reply drafter.
func NewOpenAIDrafter(
	apiKey string,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	maxBodySize int,
	logger *zap.Logger,
) (*OpenAIDrafter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	return &OpenAIDrafter{
		client:      openai.NewClient(apiKey),
		modelName:   modelName,
		maxTokens:   maxTokens,
		temperature: temperature,
		topP:        topP,
		maxBodySize: maxBodySize,
		fallback:    NewTemplateDrafter(logger),
		logger:      logger,
	}, nil
}

// Draft generates a reply draft for the message.
func (d *OpenAIDrafter) Draft(ctx context.Context, msg *core.InquiryMessage, language core.Language) (*core.ReplyDraft, error) {
	senderName := ExtractSenderName(msg.Sender)
	prompt := buildPrompt(msg, language, senderName, d.maxBodySize)

	resp, err := d.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: d.modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   d.maxTokens,
		Temperature: d.temperature,
		TopP:        d.topP,
	})
	if err != nil {
		d.logger.Error("OpenAI reply generation failed, using template", zap.Error(err))
		return d.fallback.Draft(ctx, msg, language)
	}
	if len(resp.Choices) == 0 {
		d.logger.Error("Empty response from OpenAI, using template")
		return d.fallback.Draft(ctx, msg, language)
	}

	return &core.ReplyDraft{
		Subject:    "Re: " + msg.Subject,
		Body:       strings.TrimSpace(resp.Choices[0].Message.Content),
		Language:   language,
		SenderName: senderName,
		Intent:     DetectIntent(msg.Subject, msg.Text()),
		Tone:       "formal",
	}, nil
}
