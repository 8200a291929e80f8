package core

import (
	"time"
)

// Language is the detected language class of a message.
type Language string

const (
	LanguageKorean  Language = "KO"
	LanguageEnglish Language = "EN"
	LanguageOther   Language = "OTHER"
)

// InquiryMessage represents an inbound business inquiry email.
// All fields are optional; absent fields are treated as empty/false.
type InquiryMessage struct {
	ID            string `json:"id,omitempty"`
	Subject       string `json:"subject,omitempty"`
	Sender        string `json:"sender,omitempty"` // display form, e.g. "John Smith <john@acme.com>"
	SenderEmail   string `json:"sender_email,omitempty"`
	Body          string `json:"body,omitempty"`
	Snippet       string `json:"snippet,omitempty"` // fallback when Body is empty
	HasAttachment bool   `json:"has_attachment,omitempty"`
}

// Text returns the message body, falling back to the snippet.
func (m *InquiryMessage) Text() string {
	if m.Body != "" {
		return m.Body
	}
	return m.Snippet
}

// DetectionResult is the shared output shape of the gibberish and spam
// detectors. Flagged is Score >= the detector's threshold.
type DetectionResult struct {
	Score   int
	Reasons []string
	Flagged bool
}

// ScoreBreakdown is the result of scoring a single inquiry.
// Invariant: when IsSpam is true every score is zero and Keywords is empty.
type ScoreBreakdown struct {
	Total    float64  `json:"total"`
	Clarity  float64  `json:"clarity"`
	Intent   float64  `json:"intent"`
	Terms    float64  `json:"terms"`
	Reason   string   `json:"reason"`
	Keywords string   `json:"keywords"`
	IsSpam   bool     `json:"is_spam"`
	Language Language `json:"language"`
}

// ReplyDraft is a generated reply suggestion for an inquiry.
type ReplyDraft struct {
	Subject    string
	Body       string
	Language   Language
	SenderName string
	Intent     string // order, quotation or inquiry
	Tone       string
}

// StoredInquiry is a scored message as kept by an InquiryRepository.
type StoredInquiry struct {
	Message   InquiryMessage
	Breakdown ScoreBreakdown
	Status    string
	CreatedAt time.Time
}

// RepositoryStats summarizes the contents of an InquiryRepository.
type RepositoryStats struct {
	Total      int
	Spam       int
	HighIntent int     // intent score >= 70
	AvgScore   float64 // average total over non-spam rows
}
