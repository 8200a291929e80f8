package reply

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/tradeinbox/inquiry-triage/internal/core"
)

// GeminiDrafter generates reply drafts with Google Gemini, falling back to
// templates when the API call fails.
type GeminiDrafter struct {
	client      *genai.Client
	model       *genai.GenerativeModel
	maxBodySize int
	fallback    *TemplateDrafter
	logger      *zap.Logger
}

// NewGeminiDrafter creates a new Gemini-backed reply drafter.
func NewGeminiDrafter(
	apiKey string,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	maxBodySize int,
	logger *zap.Logger,
) (*GeminiDrafter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(temperature)
	model.SetTopP(topP)
	model.SetMaxOutputTokens(int32(maxTokens))

	return &GeminiDrafter{
		client:      client,
		model:       model,
		maxBodySize: maxBodySize,
		fallback:    NewTemplateDrafter(logger),
		logger:      logger,
	}, nil
}

// Close closes the underlying Gemini client.
func (d *GeminiDrafter) Close() error {
	if d.client != nil {
		return d.client.Close()
	}
	return nil
}

// Draft generates a reply draft for the message.
func (d *GeminiDrafter) Draft(ctx context.Context, msg *core.InquiryMessage, language core.Language) (*core.ReplyDraft, error) {
	senderName := ExtractSenderName(msg.Sender)
	prompt := buildPrompt(msg, language, senderName, d.maxBodySize)

	resp, err := d.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		d.logger.Error("Gemini reply generation failed, using template", zap.Error(err))
		return d.fallback.Draft(ctx, msg, language)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		d.logger.Error("Empty response from Gemini, using template")
		return d.fallback.Draft(ctx, msg, language)
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		d.logger.Error("Unexpected part type from Gemini, using template")
		return d.fallback.Draft(ctx, msg, language)
	}

	return &core.ReplyDraft{
		Subject:    "Re: " + msg.Subject,
		Body:       strings.TrimSpace(string(text)),
		Language:   language,
		SenderName: senderName,
		Intent:     DetectIntent(msg.Subject, msg.Text()),
		Tone:       "formal",
	}, nil
}
