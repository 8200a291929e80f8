package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/tradeinbox/inquiry-triage/internal/config"
	"github.com/tradeinbox/inquiry-triage/internal/factory"
	"github.com/tradeinbox/inquiry-triage/internal/logging"
	"github.com/tradeinbox/inquiry-triage/internal/mailparse"
)

var (
	// Analyzer flags
	keywordsPath = flag.String("keywords", "configs/keywords.json", "Path to keyword config JSON")
	jargonPath   = flag.String("jargon", "configs/jargon_map.json", "Path to Korean jargon map JSON")

	// Reply drafting flags
	draftReply      = flag.Bool("draft-reply", false, "Also generate a reply draft")
	replyProvider   = flag.String("reply-provider", "template", "Reply provider (template, openai, gemini, bedrock)")
	openaiAPIKey    = flag.String("openai-api-key", "", "API key for OpenAI")
	openaiModelName = flag.String("openai-model", "gpt-3.5-turbo", "OpenAI model name")
	geminiAPIKey    = flag.String("gemini-api-key", "", "API key for Google Gemini")
	geminiModelName = flag.String("gemini-model", "gemini-pro", "Gemini model name")
	bedrockRegion   = flag.String("bedrock-region", "us-east-1", "AWS region for Bedrock")
	bedrockModelID  = flag.String("bedrock-model", "anthropic.claude-v2", "Bedrock model ID")

	// Input flags
	inputFile  = flag.String("file", "", "Input email file (use stdin if not specified)")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog    = flag.Bool("json-log", false, "Output logs in JSON format")
	configFile = flag.String("config", "", "Path to config file (overrides command line flags)")
)

func main() {
	flag.Parse()

	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var cfg *config.Config
	if *configFile != "" {
		cfg, err = config.New()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
	} else {
		cfg = createConfigFromFlags()
	}

	// Build the analyzer
	analyzerFactory := factory.NewAnalyzerFactory(cfg, logger)
	inquiryAnalyzer := analyzerFactory.CreateAnalyzer()

	// Read the email from file or stdin
	var emailReader io.Reader
	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			logger.Fatal("Failed to open input file", zap.Error(err), zap.String("file", *inputFile))
		}
		defer file.Close()
		emailReader = file
		logger.Info("Reading email from file", zap.String("file", *inputFile))
	} else {
		emailReader = os.Stdin
		logger.Info("Reading email from stdin")
	}

	msg, err := mailparse.Parse(emailReader)
	if err != nil {
		logger.Fatal("Failed to parse email", zap.Error(err))
	}

	breakdown := inquiryAnalyzer.CalculateScore(msg)

	fmt.Printf("\n=== Inquiry Summary ===\n")
	fmt.Printf("From: %s\n", msg.Sender)
	fmt.Printf("Subject: %s\n", msg.Subject)
	fmt.Printf("Body length: %d bytes\n", len(msg.Body))

	fmt.Printf("\n=== Score Breakdown ===\n")
	fmt.Printf("Language: %s\n", breakdown.Language)
	fmt.Printf("Is spam: %t\n", breakdown.IsSpam)
	fmt.Printf("Total: %.1f\n", breakdown.Total)
	fmt.Printf("Clarity: %.1f  Intent: %.1f  Terms: %.1f\n",
		breakdown.Clarity, breakdown.Intent, breakdown.Terms)
	fmt.Printf("Reason: %s\n", breakdown.Reason)
	if breakdown.Keywords != "" {
		fmt.Printf("Keywords: %s\n", breakdown.Keywords)
	}

	if !*draftReply || breakdown.IsSpam {
		return
	}

	drafter, err := factory.NewReplyFactory(cfg, logger).CreateReplyDrafter()
	if err != nil {
		logger.Fatal("Failed to create reply drafter", zap.Error(err))
	}
	draft, err := drafter.Draft(context.Background(), msg, breakdown.Language)
	if err != nil {
		logger.Fatal("Failed to draft reply", zap.Error(err))
	}

	fmt.Printf("\n=== Reply Draft (%s, %s) ===\n", draft.Intent, draft.Language)
	fmt.Printf("Subject: %s\n\n%s\n", draft.Subject, draft.Body)
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags() *config.Config {
	v := config.NewEmptyViper()

	v.Set("analyzer.keywords_path", *keywordsPath)
	v.Set("analyzer.jargon_path", *jargonPath)

	v.Set("reply.provider", *replyProvider)
	switch *replyProvider {
	case "openai":
		v.Set("openai.api_key", *openaiAPIKey)
		v.Set("openai.model_name", *openaiModelName)
	case "gemini":
		v.Set("gemini.api_key", *geminiAPIKey)
		v.Set("gemini.model_name", *geminiModelName)
	case "bedrock":
		v.Set("bedrock.region", *bedrockRegion)
		v.Set("bedrock.model_id", *bedrockModelID)
	}

	return config.NewFromViper(v)
}
