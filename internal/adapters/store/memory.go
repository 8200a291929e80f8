package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tradeinbox/inquiry-triage/internal/core"
)

// ErrNotFound is returned when a stored inquiry does not exist.
var ErrNotFound = errors.New("inquiry not found")

// StatusActive is the initial workflow status of a stored inquiry.
const StatusActive = "active"

// MemoryStore is an in-memory implementation of the InquiryRepository
// interface, used by the CLI and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]core.StoredInquiry
	logger  *zap.Logger
}

// NewMemoryStore creates a new in-memory inquiry store.
func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]core.StoredInquiry),
		logger:  logger,
	}
}

// Save stores a message with its breakdown, replacing any row with the same ID.
func (s *MemoryStore) Save(_ context.Context, msg *core.InquiryMessage, breakdown *core.ScoreBreakdown) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := core.StoredInquiry{
		Message:   *msg,
		Breakdown: *breakdown,
		Status:    StatusActive,
		CreatedAt: time.Now(),
	}
	if stored.Message.ID == "" {
		stored.Message.ID = uuid.NewString()
	}
	s.entries[stored.Message.ID] = stored
	return nil
}

// TopInquiries returns active non-spam inquiries ordered by total score.
func (s *MemoryStore) TopInquiries(_ context.Context, limit int) ([]core.StoredInquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.StoredInquiry
	for _, e := range s.entries {
		if e.Status == StatusActive && !e.Breakdown.IsSpam {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Breakdown.Total > out[j].Breakdown.Total
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// UpdateStatus changes the workflow status of a stored inquiry.
func (s *MemoryStore) UpdateStatus(_ context.Context, id string, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return ErrNotFound
	}
	e.Status = status
	s.entries[id] = e
	return nil
}

// Stats returns aggregate counts over the stored inquiries.
func (s *MemoryStore) Stats(_ context.Context) (*core.RepositoryStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &core.RepositoryStats{}
	var sum float64
	for _, e := range s.entries {
		stats.Total++
		if e.Breakdown.IsSpam {
			stats.Spam++
			continue
		}
		if e.Breakdown.Intent >= 70 {
			stats.HighIntent++
		}
		sum += e.Breakdown.Total
	}
	if nonSpam := stats.Total - stats.Spam; nonSpam > 0 {
		stats.AvgScore = sum / float64(nonSpam)
	}
	return stats, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
