package di

import (
	"go.uber.org/dig"

	"github.com/tradeinbox/inquiry-triage/internal/analyzer"
	"github.com/tradeinbox/inquiry-triage/internal/config"
	"github.com/tradeinbox/inquiry-triage/internal/core"
	"github.com/tradeinbox/inquiry-triage/internal/factory"
	"github.com/tradeinbox/inquiry-triage/internal/logging"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewAnalyzerFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewStoreFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewReplyFactory); err != nil {
		return nil, err
	}

	// Register analyzer and worker pool
	if err := container.Provide(func(f *factory.AnalyzerFactory) *analyzer.Analyzer {
		return f.CreateAnalyzer()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.AnalyzerFactory, a *analyzer.Analyzer) *analyzer.Pool {
		return f.CreatePool(a)
	}); err != nil {
		return nil, err
	}

	// Register inquiry repository
	if err := container.Provide(func(f *factory.StoreFactory) (core.InquiryRepository, error) {
		return f.CreateRepository()
	}); err != nil {
		return nil, err
	}

	// Register reply drafter
	if err := container.Provide(func(f *factory.ReplyFactory) (core.ReplyDrafter, error) {
		return f.CreateReplyDrafter()
	}); err != nil {
		return nil, err
	}

	return container, nil
}
