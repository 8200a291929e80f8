package analyzer

import (
	"unicode"

	"github.com/tradeinbox/inquiry-triage/internal/core"
)

// Character-class ratios above which a language is assumed. Korean is matched
// on both completed syllables and bare jamo; kana gets a lower bar because
// Japanese text mixes kana with kanji.
const (
	koreanRatioThreshold   = 0.10
	chineseRatioThreshold  = 0.10
	japaneseRatioThreshold = 0.05
)

func isHangulSyllable(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7A3
}

func isHangulJamo(r rune) bool {
	return r >= 0x3131 && r <= 0x3163 // compatibility jamo, ㄱ-ㅎ and ㅏ-ㅣ
}

func isHangul(r rune) bool {
	return isHangulSyllable(r) || isHangulJamo(r)
}

func isCJKIdeograph(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

func isKana(r rune) bool {
	return r >= 0x3040 && r <= 0x30FF
}

// DetectLanguage classifies text as KO, EN or OTHER from character-class
// ratios over the non-whitespace characters. Empty input is EN.
func DetectLanguage(text string) core.Language {
	var total, korean, chinese, japanese int
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		switch {
		case isHangul(r):
			korean++
		case isCJKIdeograph(r):
			chinese++
		case isKana(r):
			japanese++
		}
	}

	if total == 0 {
		return core.LanguageEnglish
	}

	n := float64(total)
	switch {
	case float64(korean)/n > koreanRatioThreshold:
		return core.LanguageKorean
	case float64(chinese)/n > chineseRatioThreshold:
		return core.LanguageOther
	case float64(japanese)/n > japaneseRatioThreshold:
		return core.LanguageOther
	default:
		return core.LanguageEnglish
	}
}
