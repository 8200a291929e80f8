package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tradeinbox/inquiry-triage/internal/core"
)

func saveInquiry(t *testing.T, s *MemoryStore, id string, total, intent float64, isSpam bool) {
	t.Helper()
	err := s.Save(context.Background(), &core.InquiryMessage{
		ID:      id,
		Subject: "subject " + id,
	}, &core.ScoreBreakdown{
		Total:    total,
		Intent:   intent,
		IsSpam:   isSpam,
		Language: core.LanguageEnglish,
	})
	require.NoError(t, err)
}

func TestMemoryStoreSaveAndTop(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	saveInquiry(t, s, "low", 20, 10, false)
	saveInquiry(t, s, "high", 80, 90, false)
	saveInquiry(t, s, "mid", 50, 40, false)
	saveInquiry(t, s, "spam", 0, 0, true)

	top, err := s.TopInquiries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "high", top[0].Message.ID)
	assert.Equal(t, "mid", top[1].Message.ID)
	assert.Equal(t, "low", top[2].Message.ID)

	top, err = s.TopInquiries(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, top, 2)
}

func TestMemoryStoreSaveGeneratesID(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &core.InquiryMessage{Subject: "no id"}, &core.ScoreBreakdown{Total: 10}))

	top, err := s.TopInquiries(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.NotEmpty(t, top[0].Message.ID)
	assert.Equal(t, StatusActive, top[0].Status)
}

func TestMemoryStoreSaveReplacesByID(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	saveInquiry(t, s, "x", 10, 10, false)
	saveInquiry(t, s, "x", 60, 10, false)

	top, err := s.TopInquiries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 60.0, top[0].Breakdown.Total)
}

func TestMemoryStoreUpdateStatus(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	saveInquiry(t, s, "x", 50, 40, false)

	require.NoError(t, s.UpdateStatus(ctx, "x", "archived"))

	// Archived inquiries leave the top list.
	top, err := s.TopInquiries(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, top)

	assert.ErrorIs(t, s.UpdateStatus(ctx, "missing", "archived"), ErrNotFound)
}

func TestMemoryStoreStats(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	saveInquiry(t, s, "a", 40, 80, false)
	saveInquiry(t, s, "b", 60, 30, false)
	saveInquiry(t, s, "c", 0, 0, true)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Spam)
	assert.Equal(t, 1, stats.HighIntent)
	assert.InDelta(t, 50.0, stats.AvgScore, 1e-9)
}

func TestMemoryStoreStatsEmpty(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.AvgScore)
}
