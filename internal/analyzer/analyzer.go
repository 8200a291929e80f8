package analyzer

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/tradeinbox/inquiry-triage/internal/core"
)

// Category weights for the total score. They must sum to exactly 1.0.
const (
	weightClarity = 0.15
	weightIntent  = 0.50
	weightTerms   = 0.35
)

const fallbackReason = "needs further review"

// Analyzer scores inbound trade inquiries. It holds only read-only
// configuration loaded at construction, so a single instance is safe to use
// from any number of goroutines.
type Analyzer struct {
	keywords  *KeywordConfig
	gibberish *GibberishDetector
	spam      *SpamDetector
	jargon    *JargonNormalizer
	scorer    *KeywordScorer
	logger    *zap.Logger
}

// New creates an analyzer over the given keyword and jargon tables.
func New(keywords *KeywordConfig, jargon *JargonMap, logger *zap.Logger) *Analyzer {
	if keywords == nil {
		keywords = emptyKeywordConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		keywords:  keywords,
		gibberish: NewGibberishDetector(),
		spam:      NewSpamDetector(),
		jargon:    NewJargonNormalizer(jargon),
		scorer:    NewKeywordScorer(keywords),
		logger:    logger,
	}
}

// CalculateScore runs the full pipeline over one message. It always returns a
// valid breakdown, never an error, for any input value.
func (a *Analyzer) CalculateScore(msg *core.InquiryMessage) core.ScoreBreakdown {
	if msg == nil {
		msg = &core.InquiryMessage{}
	}
	fullText := msg.Subject + "\n" + msg.Text()

	language := DetectLanguage(fullText)
	if language == core.LanguageOther {
		return core.ScoreBreakdown{
			Reason:   "unsupported language (only EN and KO are supported)",
			Language: language,
		}
	}

	gib := a.gibberish.Detect(fullText)
	if gib.Flagged {
		a.logger.Debug("Message flagged as gibberish",
			zap.String("id", msg.ID),
			zap.Int("score", gib.Score),
			zap.Strings("reasons", gib.Reasons))
		return core.ScoreBreakdown{
			Reason:   "meaningless content: " + strings.Join(gib.Reasons, ", "),
			IsSpam:   true,
			Language: language,
		}
	}

	analysisText := fullText
	if language == core.LanguageKorean {
		analysisText = a.jargon.Normalize(fullText)
	}

	spam := a.spam.Detect(msg, analysisText, gib.Score)
	if spam.Flagged {
		a.logger.Debug("Message flagged as spam",
			zap.String("id", msg.ID),
			zap.Int("score", spam.Score),
			zap.Strings("reasons", spam.Reasons))
		tags := spam.Reasons
		if len(tags) > 3 {
			tags = tags[:3]
		}
		return core.ScoreBreakdown{
			Reason:   "flagged as spam: " + strings.Join(tags, ", "),
			IsSpam:   true,
			Language: language,
		}
	}

	scores, matched := a.scorer.Score(analysisText)

	subjectLower := strings.ToLower(msg.Subject)
	if strings.HasPrefix(subjectLower, "re:") || strings.HasPrefix(subjectLower, "fwd:") {
		scores.Intent += a.keywords.Bonus.ThreadReply
	}
	if msg.HasAttachment {
		scores.Intent += a.keywords.Bonus.HasAttachment
	}

	clarity := clamp(float64(scores.Clarity))
	intent := clamp(float64(scores.Intent))
	terms := clamp(float64(scores.Terms))

	total := round1(clarity*weightClarity + intent*weightIntent + terms*weightTerms)

	return core.ScoreBreakdown{
		Total:    total,
		Clarity:  clarity,
		Intent:   intent,
		Terms:    terms,
		Reason:   buildReason(clarity, intent, terms, matched),
		Keywords: joinKeywords(matched, 10),
		Language: language,
	}
}

// buildReason assembles the human-readable justification from tiered
// fragments joined with " | ".
func buildReason(clarity, intent, terms float64, matched []string) string {
	var parts []string

	switch {
	case intent >= 70:
		parts = append(parts, "strong purchase intent")
	case intent >= 40:
		parts = append(parts, "moderate purchase intent")
	default:
		parts = append(parts, "unclear intent")
	}

	switch {
	case terms >= 60:
		parts = append(parts, "concrete trade terms given")
	case terms >= 30:
		parts = append(parts, "some trade terms mentioned")
	}

	switch {
	case clarity >= 50:
		parts = append(parts, "detailed product spec")
	case clarity >= 25:
		parts = append(parts, "basic product info")
	}

	if len(matched) > 0 {
		parts = append(parts, fmt.Sprintf("key terms: %s", joinKeywords(matched, 5)))
	}

	if len(parts) == 0 {
		return fallbackReason
	}
	return strings.Join(parts, " | ")
}

func joinKeywords(matched []string, limit int) string {
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return strings.Join(matched, ", ")
}

func clamp(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
