package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tradeinbox/inquiry-triage/internal/core"
)

// MySQLStore is a MySQL implementation of the InquiryRepository interface.
type MySQLStore struct {
	db     *sql.DB
	logger *zap.Logger
}

const mysqlSchema = `
CREATE TABLE IF NOT EXISTS inquiries (
	id VARCHAR(191) PRIMARY KEY,
	subject TEXT,
	sender TEXT,
	sender_email VARCHAR(255),
	snippet TEXT,
	body_text MEDIUMTEXT,

	score DOUBLE DEFAULT 0,
	clarity_score DOUBLE DEFAULT 0,
	intent_score DOUBLE DEFAULT 0,
	terms_score DOUBLE DEFAULT 0,

	reason TEXT,
	keywords TEXT,
	language VARCHAR(8) DEFAULT 'EN',

	is_spam BOOLEAN DEFAULT FALSE,
	has_attachment BOOLEAN DEFAULT FALSE,

	status VARCHAR(32) DEFAULT 'active',
	created_at DATETIME,

	INDEX idx_score (score),
	INDEX idx_spam (is_spam),
	INDEX idx_status (status)
)`

// NewMySQLStore opens (and if needed initializes) a MySQL inquiry store.
// The DSN must include parseTime=true so DATETIME columns scan into time.Time.
func NewMySQLStore(dsn string, logger *zap.Logger) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}

	if _, err := db.Exec(mysqlSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create inquiries table: %w", err)
	}

	logger.Info("MySQL inquiry store initialized")
	return &MySQLStore{db: db, logger: logger}, nil
}

// Save stores a message with its breakdown, replacing any row with the same ID.
func (s *MySQLStore) Save(ctx context.Context, msg *core.InquiryMessage, breakdown *core.ScoreBreakdown) error {
	id := msg.ID
	if id == "" {
		id = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx, `
		REPLACE INTO inquiries
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
func (s *MySQLStore) TopInquiries(ctx context.Context, limit int) ([]core.StoredInquiry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, subject, sender, sender_email, snippet, body_text,
		       score, clarity_score, intent_score, terms_score,
		       reason, keywords, language, is_spam, has_attachment, status, created_at
		FROM inquiries
		WHERE status = ? AND is_spam = FALSE
		ORDER BY score DESC
		LIMIT ?`, StatusActive, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query inquiries: %w", err)
	}
	defer rows.Close()

	return scanInquiries(rows)
}

// UpdateStatus changes the workflow status of a stored inquiry.
func (s *MySQLStore) UpdateStatus(ctx context.Context, id string, status string) error {
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
func (s *MySQLStore) Stats(ctx context.Context) (*core.RepositoryStats, error) {
	stats := &core.RepositoryStats{}
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(is_spam), 0),
		       COALESCE(SUM(CASE WHEN is_spam = FALSE AND intent_score >= 70 THEN 1 ELSE 0 END), 0),
		       COALESCE(AVG(CASE WHEN is_spam = FALSE THEN score END), 0)
		FROM inquiries`,
	).Scan(&stats.Total, &stats.Spam, &stats.HighIntent, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return stats, nil
}

// Close closes the underlying database handle.
func (s *MySQLStore) Close() error {
	return s.db.Close()
}
