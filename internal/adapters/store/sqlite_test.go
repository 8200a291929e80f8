package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tradeinbox/inquiry-triage/internal/core"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	msg := &core.InquiryMessage{
		ID:            "msg-1",
		Subject:       "Purchase Order for LED Bulbs",
		Sender:        "John Smith <john@acme.com>",
		SenderEmail:   "john@acme.com",
		Body:          "Please quote 500 pcs FOB Busan.",
		HasAttachment: true,
	}
	bd := &core.ScoreBreakdown{
		Total:    62.5,
		Clarity:  30,
		Intent:   75,
		Terms:    50,
		Reason:   "strong purchase intent | some trade terms mentioned",
		Keywords: "order, quotation, fob",
		Language: core.LanguageEnglish,
	}
	require.NoError(t, s.Save(ctx, msg, bd))

	top, err := s.TopInquiries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)

	got := top[0]
	assert.Equal(t, *msg, got.Message)
	assert.Equal(t, *bd, got.Breakdown)
	assert.Equal(t, StatusActive, got.Status)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestSQLiteStoreSaveReplacesByID(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	msg := &core.InquiryMessage{ID: "msg-1", Subject: "first"}
	require.NoError(t, s.Save(ctx, msg, &core.ScoreBreakdown{Total: 10, Language: core.LanguageEnglish}))
	require.NoError(t, s.Save(ctx, msg, &core.ScoreBreakdown{Total: 60, Language: core.LanguageEnglish}))

	top, err := s.TopInquiries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 60.0, top[0].Breakdown.Total)
}

func TestSQLiteStoreTopExcludesSpamAndInactive(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &core.InquiryMessage{ID: "good"}, &core.ScoreBreakdown{Total: 40, Language: core.LanguageEnglish}))
	require.NoError(t, s.Save(ctx, &core.InquiryMessage{ID: "spam"}, &core.ScoreBreakdown{IsSpam: true, Language: core.LanguageEnglish}))
	require.NoError(t, s.Save(ctx, &core.InquiryMessage{ID: "done"}, &core.ScoreBreakdown{Total: 90, Language: core.LanguageEnglish}))
	require.NoError(t, s.UpdateStatus(ctx, "done", "archived"))

	top, err := s.TopInquiries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "good", top[0].Message.ID)
}

func TestSQLiteStoreUpdateStatusMissing(t *testing.T) {
	s := newTestSQLiteStore(t)
	assert.ErrorIs(t, s.UpdateStatus(context.Background(), "missing", "archived"), ErrNotFound)
}

func TestSQLiteStoreStats(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &core.InquiryMessage{ID: "a"}, &core.ScoreBreakdown{Total: 40, Intent: 80, Language: core.LanguageEnglish}))
	require.NoError(t, s.Save(ctx, &core.InquiryMessage{ID: "b"}, &core.ScoreBreakdown{Total: 60, Intent: 30, Language: core.LanguageEnglish}))
	require.NoError(t, s.Save(ctx, &core.InquiryMessage{ID: "c"}, &core.ScoreBreakdown{IsSpam: true, Language: core.LanguageEnglish}))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Spam)
	assert.Equal(t, 1, stats.HighIntent)
	assert.InDelta(t, 50.0, stats.AvgScore, 1e-9)
}
