package analyzer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tradeinbox/inquiry-triage/internal/core"
)

// spamPattern is one weighted regular-expression rule.
type spamPattern struct {
	re     *regexp.Regexp
	tag    string
	points int
}

// spamPatterns is the ordered pattern table. Every matching pattern
// contributes its points; there is no early exit.
var spamPatterns = []spamPattern{
	{regexp.MustCompile(`(?i)you\s*(have\s*)?won`), "lottery_scam", 30},
	{regexp.MustCompile(`(?i)claim\s*(your\s*)?(prize|reward)`), "prize_scam", 30},
	{regexp.MustCompile(`(?i)click\s*here`), "click_bait", 20},
	{regexp.MustCompile(`(?i)act\s*now`), "urgency_scam", 20},
	{regexp.MustCompile(`(?i)100%\s*(free|guaranteed)`), "over_promise", 25},
	{regexp.MustCompile(`(?i)unsubscribe`), "newsletter", 15},
	{regexp.MustCompile(`(?i)nigerian?\s*prince`), "nigerian_scam", 50},
}

// suspiciousTLDs are low-trust top-level domains for sender addresses.
var suspiciousTLDs = []string{".xyz", ".tk", ".ml", ".ga", ".cf", ".gq", ".buzz"}

// SpamDetector scores malicious or promotional intent.
type SpamDetector struct {
	patterns []spamPattern
}

// NewSpamDetector creates a spam detector with the default pattern table.
func NewSpamDetector() *SpamDetector {
	return &SpamDetector{patterns: spamPatterns}
}

// Detect scores the (possibly jargon-normalized) text together with the raw
// message fields. The running score is seeded with the gibberish score so a
// weak gibberish signal that stayed under its own threshold still counts
// against the message here.
func (d *SpamDetector) Detect(msg *core.InquiryMessage, text string, gibberishScore int) core.DetectionResult {
	score := gibberishScore
	var reasons []string

	for _, p := range d.patterns {
		if p.re.MatchString(text) {
			score += p.points
			reasons = append(reasons, p.tag)
		}
	}

	sender := strings.ToLower(msg.SenderEmail)
	for _, tld := range suspiciousTLDs {
		if strings.HasSuffix(sender, tld) {
			score += 25
			reasons = append(reasons, "suspicious_domain")
			break
		}
	}

	if isAllUpper(msg.Subject) && utf8.RuneCountInString(msg.Subject) > 10 {
		score += 15
		reasons = append(reasons, "all_caps_subject")
	}

	if strings.Count(msg.Subject, "!") > 3 {
		score += 10
		reasons = append(reasons, "excessive_exclamation")
	}

	return core.DetectionResult{
		Score:   score,
		Reasons: reasons,
		Flagged: score >= detectionThreshold,
	}
}

// isAllUpper reports whether s contains at least one cased character and no
// lowercase ones.
func isAllUpper(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}
