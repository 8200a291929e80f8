package core

import (
	"context"
)

// ReplyDrafter generates a reply draft for an inquiry. Implementations either
// call an external generation service or fill in fixed templates; the variant
// is selected once at construction and never switched mid-run.
type ReplyDrafter interface {
	// Draft produces a reply draft for the given message in the given language.
	Draft(ctx context.Context, msg *InquiryMessage, language Language) (*ReplyDraft, error)
}

// InquiryRepository persists scored inquiries.
type InquiryRepository interface {
	// Save stores a message together with its score breakdown, replacing any
	// existing row with the same message ID.
	Save(ctx context.Context, msg *InquiryMessage, breakdown *ScoreBreakdown) error

	// TopInquiries returns active non-spam inquiries ordered by total score.
	TopInquiries(ctx context.Context, limit int) ([]StoredInquiry, error)

	// UpdateStatus changes the workflow status of a stored inquiry.
	UpdateStatus(ctx context.Context, id string, status string) error

	// Stats returns aggregate counts over the stored inquiries.
	Stats(ctx context.Context) (*RepositoryStats, error)

	// Close releases any resources held by the repository.
	Close() error
}
