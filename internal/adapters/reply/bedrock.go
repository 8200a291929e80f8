package reply

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"go.uber.org/zap"

	"github.com/tradeinbox/inquiry-triage/internal/core"
)

// BedrockDrafter generates reply drafts with Amazon Bedrock, falling back to
// templates when the API call fails.
type BedrockDrafter struct {
	client      *bedrockruntime.Client
	modelID     string
	maxTokens   int
	temperature float32
	topP        float32
	maxBodySize int
	fallback    *TemplateDrafter
	logger      *zap.Logger
}

// NewBedrockDrafter creates a new Bedrock-backed reply drafter.
func NewBedrockDrafter(
	region string,
	modelID string,
	maxTokens int,
	temperature float32,
	topP float32,
	maxBodySize int,
	logger *zap.Logger,
) (*BedrockDrafter, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &BedrockDrafter{
		client:      bedrockruntime.NewFromConfig(awsCfg),
		modelID:     modelID,
		maxTokens:   maxTokens,
		temperature: temperature,
		topP:        topP,
		maxBodySize: maxBodySize,
		fallback:    NewTemplateDrafter(logger),
		logger:      logger,
	}, nil
}

func (d *BedrockDrafter) isAnthropicModel() bool {
	return strings.Contains(d.modelID, "anthropic")
}

func (d *BedrockDrafter) isAmazonTitanModel() bool {
	return strings.Contains(d.modelID, "amazon.titan")
}

// Draft generates a reply draft for the message.
func (d *BedrockDrafter) Draft(ctx context.Context, msg *core.InquiryMessage, language core.Language) (*core.ReplyDraft, error) {
	senderName := ExtractSenderName(msg.Sender)
	prompt := buildPrompt(msg, language, senderName, d.maxBodySize)

	var payload []byte
	var err error
	switch {
	case d.isAnthropicModel():
		payload, err = json.Marshal(map[string]interface{}{
			"prompt":               prompt,
			"max_tokens_to_sample": d.maxTokens,
			"temperature":          d.temperature,
			"top_p":                d.topP,
		})
	case d.isAmazonTitanModel():
		payload, err = json.Marshal(map[string]interface{}{
			"inputText": prompt,
			"textGenerationConfig": map[string]interface{}{
				"maxTokenCount": d.maxTokens,
				"temperature":   d.temperature,
				"topP":          d.topP,
			},
		})
	default:
		payload, err = json.Marshal(map[string]interface{}{
			"prompt":      prompt,
			"max_tokens":  d.maxTokens,
			"temperature": d.temperature,
			"top_p":       d.topP,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	resp, err := d.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     &d.modelID,
		Body:        payload,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		d.logger.Error("Bedrock reply generation failed, using template", zap.Error(err))
		return d.fallback.Draft(ctx, msg, language)
	}

	body, err := d.extractText(resp.Body)
	if err != nil {
		d.logger.Error("Failed to parse Bedrock response, using template", zap.Error(err))
		return d.fallback.Draft(ctx, msg, language)
	}

	return &core.ReplyDraft{
		Subject:    "Re: " + msg.Subject,
		Body:       strings.TrimSpace(body),
		Language:   language,
		SenderName: senderName,
		Intent:     DetectIntent(msg.Subject, msg.Text()),
		Tone:       "formal",
	}, nil
}

// extractText pulls the generated text out of the model-specific response body.
func (d *BedrockDrafter) extractText(raw []byte) (string, error) {
	if d.isAmazonTitanModel() {
		var titanResp struct {
			Results []struct {
				OutputText string `json:"outputText"`
			} `json:"results"`
		}
		if err := json.Unmarshal(raw, &titanResp); err != nil {
			return "", fmt.Errorf("failed to unmarshal Titan response: %w", err)
		}
		if len(titanResp.Results) == 0 {
			return "", fmt.Errorf("empty Titan response")
		}
		return titanResp.Results[0].OutputText, nil
	}

	var claudeResp struct {
		Completion string `json:"completion"`
	}
	if err := json.Unmarshal(raw, &claudeResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal model response: %w", err)
	}
	return claudeResp.Completion, nil
}
