package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/tradeinbox/inquiry-triage/internal/core"
)

// SQLiteStore is a SQLite implementation of the InquiryRepository interface.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS inquiries (
	id TEXT PRIMARY KEY,
	subject TEXT,
	sender TEXT,
	sender_email TEXT,
	snippet TEXT,
	body_text TEXT,

	score REAL DEFAULT 0,
	clarity_score REAL DEFAULT 0,
	intent_score REAL DEFAULT 0,
	terms_score REAL DEFAULT 0,

	reason TEXT,
	keywords TEXT,
	language TEXT DEFAULT 'EN',

	is_spam INTEGER DEFAULT 0,
	has_attachment INTEGER DEFAULT 0,

	status TEXT DEFAULT 'active',
	created_at TIMESTAMP
)`

// NewSQLiteStore opens (and if needed initializes) a SQLite inquiry store.
func NewSQLiteStore(dbPath string, logger *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create inquiries table: %w", err)
	}
	for _, stmt := range []string{
		`CREATE INDEX IF NOT EXISTS idx_score ON inquiries(score DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_spam ON inquiries(is_spam)`,
		`CREATE INDEX IF NOT EXISTS idx_status ON inquiries(status)`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create index: %w", err)
		}
	}

	logger.Info("SQLite inquiry store initialized", zap.String("path", dbPath))
	return &SQLiteStore{db: db, logger: logger}, nil
}

// Save stores a message with its breakdown, replacing any row with the same ID.
func (s *SQLiteStore) Save(ctx context.Context, msg *core.InquiryMessage, breakdown *core.ScoreBreakdown) error {
	id := msg.ID
	if id == "" {
		id = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO inquiries
		(id, subject, sender, sender_email, snippet, body_text,
		 score, clarity_score, intent_score, terms_score,
		 reason, keywords, language, is_spam, has_attachment, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, msg.Subject, msg.Sender, msg.SenderEmail, msg.Snippet, msg.Body,
		breakdown.Total, breakdown.Clarity, breakdown.Intent, breakdown.Terms,
		breakdown.Reason, breakdown.Keywords, string(breakdown.Language),
		breakdown.IsSpam, msg.HasAttachment, StatusActive, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save inquiry: %w", err)
	}
	return nil
}

// TopInquiries returns active non-spam inquiries ordered by total score.
func (s *SQLiteStore) TopInquiries(ctx context.Context, limit int) ([]core.StoredInquiry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, subject, sender, sender_email, snippet, body_text,
		       score, clarity_score, intent_score, terms_score,
		       reason, keywords, language, is_spam, has_attachment, status, created_at
		FROM inquiries
		WHERE status = ? AND is_spam = 0
		ORDER BY score DESC
		LIMIT ?`, StatusActive, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query inquiries: %w", err)
	}
	defer rows.Close()

	return scanInquiries(rows)
}

// UpdateStatus changes the workflow status of a stored inquiry.
func (s *SQLiteStore) UpdateStatus(ctx context.Context, id string, status string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE inquiries SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats returns aggregate counts over the stored inquiries.
func (s *SQLiteStore) Stats(ctx context.Context) (*core.RepositoryStats, error) {
	stats := &core.RepositoryStats{}
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(is_spam), 0),
		       COALESCE(SUM(CASE WHEN is_spam = 0 AND intent_score >= 70 THEN 1 ELSE 0 END), 0),
		       COALESCE(AVG(CASE WHEN is_spam = 0 THEN score END), 0)
		FROM inquiries`,
	).Scan(&stats.Total, &stats.Spam, &stats.HighIntent, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return stats, nil
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// scanInquiries converts result rows to StoredInquiry values. Shared with the
// MySQL store, whose column layout is identical.
func scanInquiries(rows *sql.Rows) ([]core.StoredInquiry, error) {
	var out []core.StoredInquiry
	for rows.Next() {
		var e core.StoredInquiry
		var lang string
		if err := rows.Scan(
			&e.Message.ID, &e.Message.Subject, &e.Message.Sender, &e.Message.SenderEmail,
			&e.Message.Snippet, &e.Message.Body,
			&e.Breakdown.Total, &e.Breakdown.Clarity, &e.Breakdown.Intent, &e.Breakdown.Terms,
			&e.Breakdown.Reason, &e.Breakdown.Keywords, &lang,
			&e.Breakdown.IsSpam, &e.Message.HasAttachment, &e.Status, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan inquiry row: %w", err)
		}
		e.Breakdown.Language = core.Language(lang)
		out = append(out, e)
	}
	return out, rows.Err()
}
