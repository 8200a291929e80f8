package analyzer

import (
	"strings"
)

// KeywordScores are the raw (unclamped) category sub-scores.
type KeywordScores struct {
	Clarity int
	Intent  int
	Terms   int
}

// KeywordScorer computes the category sub-scores from the keyword tables.
type KeywordScorer struct {
	cfg *KeywordConfig
}

// NewKeywordScorer creates a scorer over the given keyword tables.
func NewKeywordScorer(cfg *KeywordConfig) *KeywordScorer {
	if cfg == nil {
		cfg = emptyKeywordConfig()
	}
	return &KeywordScorer{cfg: cfg}
}

// Score matches every configured keyword as a case-insensitive substring
// (deliberately untokenized: "order" matches inside "reorder") and returns
// the three sub-scores plus the matched keywords in category-then-table
// order. Spam keywords penalize all three categories, clamped at zero per
// subtraction.
func (s *KeywordScorer) Score(text string) (KeywordScores, []string) {
	lower := strings.ToLower(text)

	var scores KeywordScores
	var matched []string

	scores.Clarity = scoreCategory(lower, s.cfg.ProductClarity, &matched)
	scores.Intent = scoreCategory(lower, s.cfg.BuyingIntent, &matched)
	scores.Terms = scoreCategory(lower, s.cfg.TradeTerms, &matched)

	for _, w := range s.cfg.SpamKeywords.Words {
		if strings.Contains(lower, strings.ToLower(w.Word)) {
			scores.Clarity = max(0, scores.Clarity-w.Points)
			scores.Intent = max(0, scores.Intent-w.Points)
			scores.Terms = max(0, scores.Terms-w.Points)
		}
	}

	return scores, matched
}

func scoreCategory(lower string, cat KeywordCategory, matched *[]string) int {
	score := 0
	for _, w := range cat.Words {
		if strings.Contains(lower, strings.ToLower(w.Word)) {
			score += w.Points
			*matched = append(*matched, w.Word)
		}
	}
	return score
}
