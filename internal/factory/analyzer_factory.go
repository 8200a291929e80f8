package factory

import (
	"go.uber.org/zap"

	"github.com/tradeinbox/inquiry-triage/internal/analyzer"
	"github.com/tradeinbox/inquiry-triage/internal/config"
)

// AnalyzerFactory creates analyzers from configuration
type AnalyzerFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewAnalyzerFactory creates a new analyzer factory
func NewAnalyzerFactory(cfg *config.Config, logger *zap.Logger) *AnalyzerFactory {
	return &AnalyzerFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateAnalyzer loads the keyword and jargon tables and builds the analyzer.
// Missing table files degrade to empty tables rather than failing.
func (f *AnalyzerFactory) CreateAnalyzer() *analyzer.Analyzer {
	analyzerCfg := f.cfg.GetAnalyzer()
	keywords := analyzer.LoadKeywordConfig(analyzerCfg.KeywordsPath, f.logger)
	jargon := analyzer.LoadJargonMap(analyzerCfg.JargonPath, f.logger)
	return analyzer.New(keywords, jargon, f.logger)
}

// CreatePool wraps the analyzer in a bounded worker pool.
func (f *AnalyzerFactory) CreatePool(a *analyzer.Analyzer) *analyzer.Pool {
	return analyzer.NewPool(a, f.cfg.GetAnalyzer().PoolSize)
}
