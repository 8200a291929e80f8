package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testKeywordConfig() *KeywordConfig {
	return &KeywordConfig{
		ProductClarity: KeywordCategory{Words: []WordPoints{
			{Word: "model", Points: 10},
			{Word: "spec", Points: 15},
		}},
		BuyingIntent: KeywordCategory{Words: []WordPoints{
			{Word: "order", Points: 20},
			{Word: "quotation", Points: 25},
		}},
		TradeTerms: KeywordCategory{Words: []WordPoints{
			{Word: "fob", Points: 20},
			{Word: "moq", Points: 20},
		}},
		SpamKeywords: KeywordCategory{Words: []WordPoints{
			{Word: "casino", Points: 40},
		}},
		Bonus: BonusConfig{ThreadReply: 20, HasAttachment: 10},
	}
}

func TestKeywordScorerBasic(t *testing.T) {
	s := NewKeywordScorer(testKeywordConfig())

	scores, matched := s.Score("Please send a quotation for model X-200, FOB Busan, MOQ 500")
	assert.Equal(t, 10, scores.Clarity)
	assert.Equal(t, 25, scores.Intent)
	assert.Equal(t, 40, scores.Terms)
	assert.Equal(t, []string{"model", "quotation", "fob", "moq"}, matched)
}

func TestKeywordScorerSubstringMatching(t *testing.T) {
	s := NewKeywordScorer(testKeywordConfig())

	// Matching is untokenized: "order" hits inside "reorder".
	scores, matched := s.Score("we want to reorder")
	assert.Equal(t, 20, scores.Intent)
	assert.Contains(t, matched, "order")
}

func TestKeywordScorerCaseInsensitive(t *testing.T) {
	s := NewKeywordScorer(testKeywordConfig())

	upper, _ := s.Score("QUOTATION FOR MODEL FOB")
	lower, _ := s.Score("quotation for model fob")
	assert.Equal(t, lower, upper)
}

func TestKeywordScorerMatchOrderIsTableOrder(t *testing.T) {
	s := NewKeywordScorer(testKeywordConfig())

	// Clarity words come before intent words before terms words, each in
	// table order, regardless of their position in the text.
	_, matched := s.Score("moq fob quotation order spec model")
	assert.Equal(t, []string{"model", "spec", "order", "quotation", "fob", "moq"}, matched)
}

func TestKeywordScorerSpamPenaltyHitsAllCategories(t *testing.T) {
	s := NewKeywordScorer(testKeywordConfig())

	scores, matched := s.Score("order the model from our casino")
	assert.Equal(t, 0, scores.Clarity) // 10 - 40, floored at 0
	assert.Equal(t, 0, scores.Intent)  // 20 - 40, floored at 0
	assert.Equal(t, 0, scores.Terms)
	// Penalty words are not reported as matches.
	assert.Equal(t, []string{"model", "order"}, matched)
}

func TestKeywordScorerPenaltyFloorsPerSubtraction(t *testing.T) {
	cfg := testKeywordConfig()
	cfg.SpamKeywords.Words = []WordPoints{
		{Word: "casino", Points: 15},
		{Word: "viagra", Points: 15},
	}
	s := NewKeywordScorer(cfg)

	// Intent 20 - 15 - 15 floors at 0 on the second subtraction rather than
	// going to -10.
	scores, _ := s.Score("order casino viagra")
	assert.Equal(t, 0, scores.Intent)
	assert.Equal(t, 0, scores.Clarity)
}

func TestKeywordScorerEmptyConfig(t *testing.T) {
	s := NewKeywordScorer(nil)

	scores, matched := s.Score("quotation for model X, FOB, MOQ 500")
	assert.Zero(t, scores.Clarity)
	assert.Zero(t, scores.Intent)
	assert.Zero(t, scores.Terms)
	assert.Empty(t, matched)
}
