package reply

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tradeinbox/inquiry-triage/internal/core"
)

func TestTemplateDrafterEnglishOrder(t *testing.T) {
	d := NewTemplateDrafter(zap.NewNop())

	msg := &core.InquiryMessage{
		Subject: "Purchase Order for LED Bulbs",
		Sender:  "John Smith <john@acme.com>",
		Body:    "We would like to place an order for 500 units.",
	}
	draft, err := d.Draft(context.Background(), msg, core.LanguageEnglish)
	require.NoError(t, err)

	assert.Equal(t, "Re: Purchase Order for LED Bulbs", draft.Subject)
	assert.Equal(t, "order", draft.Intent)
	assert.Equal(t, "John Smith", draft.SenderName)
	assert.Contains(t, draft.Body, "Dear John Smith,")
	assert.Contains(t, draft.Body, "Proforma Invoice")
}

func TestTemplateDrafterKoreanQuotation(t *testing.T) {
	d := NewTemplateDrafter(zap.NewNop())

	msg := &core.InquiryMessage{
		Subject: "단가 문의",
		Sender:  "김철수 <kim@hanguk.co.kr>",
		Body:    "제품 단가 확인 부탁드립니다.",
	}
	draft, err := d.Draft(context.Background(), msg, core.LanguageKorean)
	require.NoError(t, err)

	assert.Equal(t, "quotation", draft.Intent)
	assert.Equal(t, core.LanguageKorean, draft.Language)
	assert.Contains(t, draft.Body, "견적")
}

func TestTemplateDrafterDefaultsToInquiry(t *testing.T) {
	d := NewTemplateDrafter(zap.NewNop())

	msg := &core.InquiryMessage{
		Subject: "Question about your company",
		Sender:  "jane@example.com",
		Body:    "I came across your website and have a few questions.",
	}
	draft, err := d.Draft(context.Background(), msg, core.LanguageEnglish)
	require.NoError(t, err)

	assert.Equal(t, "inquiry", draft.Intent)
	assert.Contains(t, draft.Body, "Dear Sir/Madam,")
	assert.Contains(t, draft.Body, "'Question about your company'")
}

func TestTemplateDrafterTruncatesLongSubject(t *testing.T) {
	d := NewTemplateDrafter(zap.NewNop())

	msg := &core.InquiryMessage{
		Subject: strings.Repeat("한", 80) + " inquiry",
		Sender:  "Lee <lee@example.com>",
	}
	draft, err := d.Draft(context.Background(), msg, core.LanguageEnglish)
	require.NoError(t, err)

	assert.Contains(t, draft.Body, "'"+strings.Repeat("한", 50)+"'")
}

func TestExtractSenderName(t *testing.T) {
	tests := []struct {
		sender string
		want   string
	}{
		{"John Smith <john@acme.com>", "John Smith"},
		{`"Jane Doe" <jane@acme.com>`, "Jane Doe"},
		{"plain@acme.com", "Sir/Madam"},
		{"", "Sir/Madam"},
		{"<john@acme.com>", "Sir/Madam"},
		{"김철수 <kim@hanguk.co.kr>", "김철수"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractSenderName(tt.sender), "sender %q", tt.sender)
	}
}

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		body    string
		want    string
	}{
		{"purchase order", "Purchase Order", "", "order"},
		{"korean order", "발주 문의", "", "order"},
		{"quotation request", "Need a quote", "", "quotation"},
		{"korean quotation", "", "견적 부탁드립니다", "quotation"},
		{"price question beats default", "", "what is the price?", "quotation"},
		{"general", "Hello", "Just introducing our company", "inquiry"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectIntent(tt.subject, tt.body))
		})
	}
}
