package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tradeinbox/inquiry-triage/internal/adapters/reply"
	"github.com/tradeinbox/inquiry-triage/internal/config"
	"github.com/tradeinbox/inquiry-triage/internal/core"
)

// ReplyFactory creates reply drafters based on configuration
type ReplyFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewReplyFactory creates a new reply drafter factory
func NewReplyFactory(cfg *config.Config, logger *zap.Logger) *ReplyFactory {
	return &ReplyFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateReplyDrafter creates a reply drafter for the configured provider. The
// variant is chosen once here and never switched afterwards.
func (f *ReplyFactory) CreateReplyDrafter() (core.ReplyDrafter, error) {
	provider := f.cfg.GetReply().Provider

	switch provider {
	case "template":
		return reply.NewTemplateDrafter(f.logger), nil
	case "openai":
		c := f.cfg.GetOpenAI()
		return reply.NewOpenAIDrafter(c.APIKey, c.ModelName, c.MaxTokens, c.Temperature, c.TopP, c.MaxBodySize, f.logger)
	case "gemini":
		c := f.cfg.GetGemini()
		return reply.NewGeminiDrafter(c.APIKey, c.ModelName, c.MaxTokens, c.Temperature, c.TopP, c.MaxBodySize, f.logger)
	case "bedrock":
		c := f.cfg.GetBedrock()
		return reply.NewBedrockDrafter(c.Region, c.ModelID, c.MaxTokens, c.Temperature, c.TopP, c.MaxBodySize, f.logger)
	default:
		return nil, fmt.Errorf("unsupported reply provider: %s", provider)
	}
}
