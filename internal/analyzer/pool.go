package analyzer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tradeinbox/inquiry-triage/internal/core"
)

// DefaultPoolSize is the worker-pool capacity used when none is configured.
const DefaultPoolSize = 5

// Pool bounds how many scoring runs execute at once. The pipeline itself is
// pure and CPU-bound, so the pool exists only to keep bulk callers from
// monopolizing the process.
type Pool struct {
	analyzer *Analyzer
	slots    chan struct{}
}

// NewPool creates a pool of the given capacity around the analyzer.
// Non-positive sizes fall back to DefaultPoolSize.
func NewPool(a *Analyzer, size int) *Pool {
	if size <= 0 {
		size = DefaultPoolSize
	}
	return &Pool{
		analyzer: a,
		slots:    make(chan struct{}, size),
	}
}

// Analyze submits one message to the pool and blocks until a worker slot is
// available and the run completes. The only error is context cancellation
// while waiting for a slot.
func (p *Pool) Analyze(ctx context.Context, msg *core.InquiryMessage) (core.ScoreBreakdown, error) {
	select {
	case p.slots <- struct{}{}:
	case <-ctx.Done():
		return core.ScoreBreakdown{}, ctx.Err()
	}
	defer func() { <-p.slots }()

	return p.analyzer.CalculateScore(msg), nil
}

// AnalyzeBatch fans out one submission per message and joins on all of them.
// The result slice is index-aligned with msgs regardless of completion order.
// The join is all-or-nothing: if any submission fails, no partial results are
// returned.
func (p *Pool) AnalyzeBatch(ctx context.Context, msgs []*core.InquiryMessage) ([]core.ScoreBreakdown, error) {
	results := make([]core.ScoreBreakdown, len(msgs))

	g, ctx := errgroup.WithContext(ctx)
	for i, msg := range msgs {
		g.Go(func() error {
			res, err := p.Analyze(ctx, msg)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
