package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tradeinbox/inquiry-triage/internal/core"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want core.Language
	}{
		{"empty is english", "", core.LanguageEnglish},
		{"whitespace only is english", "   \n\t  ", core.LanguageEnglish},
		{"plain english", "We would like to order 500 units of model X-200.", core.LanguageEnglish},
		{"korean syllables", "견적서를 보내주시면 감사하겠습니다.", core.LanguageKorean},
		{"korean jamo counts as korean", "ㅋㅋㅋ 견적 부탁드립니다", core.LanguageKorean},
		{"mixed korean english above threshold", "RE: 견적 요청 for LED bulbs 납기 문의", core.LanguageKorean},
		{"mostly english with one hangul char", "Please send the quotation for item 보 number 12345 as discussed last week", core.LanguageEnglish},
		{"chinese", "请发送产品报价单和最小起订量信息", core.LanguageOther},
		{"japanese kana", "お見積もりをお願いします。納期も教えてください。", core.LanguageOther},
		{"numbers and punctuation only", "12345 !!! ???", core.LanguageEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.text))
		})
	}
}

func TestDetectLanguageKoreanBeatsChinese(t *testing.T) {
	// Hangul is checked first, so Korean text quoting hanja stays KO.
	text := "한자 漢字 가 포함된 한국어 문장입니다"
	assert.Equal(t, core.LanguageKorean, DetectLanguage(text))
}
