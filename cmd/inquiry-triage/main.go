package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/tradeinbox/inquiry-triage/internal/analyzer"
	"github.com/tradeinbox/inquiry-triage/internal/core"
	"github.com/tradeinbox/inquiry-triage/internal/di"
)

var (
	inputFile = flag.String("input", "", "JSON file with an array of inquiry messages")
	topN      = flag.Int("top", 10, "Number of top inquiries to print after processing")
)

func main() {
	flag.Parse()

	if *inputFile == "" {
		fmt.Println("Usage: inquiry-triage -input messages.json [-top N]")
		os.Exit(1)
	}

	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(logger *zap.Logger, pool *analyzer.Pool, repo core.InquiryRepository) error {
	defer logger.Sync()
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("Failed to close repository", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	msgs, err := loadMessages(*inputFile)
	if err != nil {
		logger.Error("Failed to load input messages", zap.Error(err))
		return err
	}
	logger.Info("Scoring inquiries", zap.Int("count", len(msgs)), zap.String("file", *inputFile))

	results, err := pool.AnalyzeBatch(ctx, msgs)
	if err != nil {
		logger.Error("Batch scoring aborted", zap.Error(err))
		return err
	}

	for i, msg := range msgs {
		if err := repo.Save(ctx, msg, &results[i]); err != nil {
			logger.Error("Failed to save inquiry",
				zap.String("id", msg.ID), zap.Error(err))
			return err
		}
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		return err
	}
	logger.Info("Batch complete",
		zap.Int("total", stats.Total),
		zap.Int("spam", stats.Spam),
		zap.Int("high_intent", stats.HighIntent),
		zap.Float64("avg_score", stats.AvgScore))

	top, err := repo.TopInquiries(ctx, *topN)
	if err != nil {
		return err
	}

	fmt.Printf("\n=== Top Inquiries ===\n")
	for i, e := range top {
		fmt.Printf("%2d. [%5.1f] %s (%s)\n    %s\n",
			i+1, e.Breakdown.Total, e.Message.Subject, e.Message.SenderEmail, e.Breakdown.Reason)
	}
	return nil
}

// loadMessages reads a JSON array of inquiry messages.
func loadMessages(path string) ([]*core.InquiryMessage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var msgs []*core.InquiryMessage
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return msgs, nil
}
