package analyzer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tradeinbox/inquiry-triage/internal/core"
)

// detectionThreshold is the score at or above which both the gibberish and
// spam detectors flag a message.
const detectionThreshold = 50

// minContentLength is the minimum trimmed length (in runes) below which a
// message is treated as empty content.
const minContentLength = 5

// denseKoreanRatio is deliberately more permissive than the language
// detector's 0.10: legitimate dense-Korean text must never be taken for
// gibberish just because its heuristics are tuned for Latin script.
const denseKoreanRatio = 0.30

// keyboardPatterns are common keyboard-mashing substrings.
var keyboardPatterns = []string{"qwert", "asdf", "zxcv", "12345", "abcde"}

// commonWords is a small dictionary of everyday and trade vocabulary used to
// judge whether English text carries meaning.
var commonWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "had": {}, "her": {}, "was": {},
	"one": {}, "our": {}, "out": {}, "has": {},
	"dear": {}, "please": {}, "thank": {}, "regards": {}, "order": {},
	"price": {}, "shipment": {}, "delivery": {}, "payment": {},
	"product": {}, "inquiry": {},
}

var englishWordRe = regexp.MustCompile(`[a-zA-Z]{3,}`)

// gibberishRule is one independent heuristic. The check returns the points it
// contributes, or 0 when the rule does not trigger.
type gibberishRule struct {
	tag   string
	check func(text string) int
}

// gibberishRules is the ordered rule table. Each rule is independent; scores
// accumulate into a single total.
var gibberishRules = []gibberishRule{
	{tag: "consecutive_jamo", check: jamoRunScore},
	{tag: "keyboard_pattern", check: keyboardPatternScore},
	{tag: "repeated_chars", check: repeatedCharScore},
	{tag: "excessive_special_chars", check: specialCharScore},
	{tag: "no_meaningful_words", check: wordSaladScore},
}

// GibberishDetector scores how meaningless a piece of text is.
type GibberishDetector struct {
	rules []gibberishRule
}

// NewGibberishDetector creates a gibberish detector with the default rule table.
func NewGibberishDetector() *GibberishDetector {
	return &GibberishDetector{rules: gibberishRules}
}

// Detect scores the text. Empty or near-empty input is terminally flagged;
// dense Korean text is terminally cleared before any heuristic runs.
func (d *GibberishDetector) Detect(text string) core.DetectionResult {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < minContentLength {
		return core.DetectionResult{Score: 100, Reasons: []string{"empty_content"}, Flagged: true}
	}

	if hangulSyllableRatio(trimmed) >= denseKoreanRatio {
		return core.DetectionResult{}
	}

	score := 0
	var reasons []string
	for _, rule := range d.rules {
		if pts := rule.check(trimmed); pts > 0 {
			score += pts
			reasons = append(reasons, rule.tag)
		}
	}

	return core.DetectionResult{
		Score:   score,
		Reasons: reasons,
		Flagged: score >= detectionThreshold,
	}
}

// hangulSyllableRatio is the share of completed Hangul syllables among the
// non-space characters.
func hangulSyllableRatio(text string) float64 {
	var syllables, nonSpace int
	for _, r := range text {
		if r == ' ' {
			continue
		}
		nonSpace++
		if isHangulSyllable(r) {
			syllables++
		}
	}
	if nonSpace == 0 {
		nonSpace = 1
	}
	return float64(syllables) / float64(nonSpace)
}

// jamoRunScore scores runs of 3+ consecutive bare jamo (consonant/vowel-only
// characters that never form a syllable), 10 points per run capped at 30.
func jamoRunScore(text string) int {
	runs := 0
	runLen := 0
	for _, r := range text {
		if isHangulJamo(r) {
			runLen++
			continue
		}
		if runLen >= 3 {
			runs++
		}
		runLen = 0
	}
	if runLen >= 3 {
		runs++
	}
	if runs == 0 {
		return 0
	}
	return min(30, runs*10)
}

// keyboardPatternScore flags the first keyboard-mashing substring found.
func keyboardPatternScore(text string) int {
	lower := strings.ToLower(text)
	for _, p := range keyboardPatterns {
		if strings.Contains(lower, p) {
			return 15
		}
	}
	return 0
}

// repeatedCharScore flags any character repeated 5+ times in a row.
func repeatedCharScore(text string) int {
	var prev rune
	runLen := 0
	for _, r := range text {
		if r == prev {
			runLen++
			if runLen >= 5 {
				return 15
			}
		} else {
			prev = r
			runLen = 1
		}
	}
	return 0
}

// specialCharScore flags text where over 30% of the characters are neither
// word characters nor whitespace.
func specialCharScore(text string) int {
	var total, special int
	for _, r := range text {
		total++
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			continue
		}
		special++
	}
	if total == 0 {
		return 0
	}
	if float64(special)/float64(total) > 0.3 {
		return 15
	}
	return 0
}

// wordSaladScore flags text with 5+ English words of which fewer than 10%
// appear in the common-word dictionary.
func wordSaladScore(text string) int {
	words := englishWordRe.FindAllString(text, -1)
	if len(words) < 5 {
		return 0
	}
	matched := 0
	for _, w := range words {
		if _, ok := commonWords[strings.ToLower(w)]; ok {
			matched++
		}
	}
	if float64(matched)/float64(len(words)) < 0.1 {
		return 20
	}
	return 0
}
