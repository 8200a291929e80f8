package reply

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/tradeinbox/inquiry-triage/internal/core"
)

// Korean reply templates keyed by detected intent.
var koTemplates = map[string]string{
	"inquiry": `안녕하세요,

보내주신 문의사항('{subject}')은 현재 담당부서에서 상세히 검토 중에 있습니다.

내용 확인이 완료되는 대로 신속히 추가 답변 드리겠습니다.

감사합니다,
해외영업팀 드림`,

	"quotation": `안녕하세요,

요청하신 견적 관련 문의에 감사드립니다.

검토 후 정식 견적서를 송부해 드리겠습니다.
추가 문의사항이 있으시면 말씀해 주세요.

감사합니다,
해외영업팀 드림`,

	"order": `안녕하세요,

발주 관련 문의에 감사드립니다.

말씀하신 내용을 확인하여 빠른 시일 내에
Proforma Invoice와 함께 상세 회신 드리겠습니다.

감사합니다,
해외영업팀 드림`,
}

// English reply templates keyed by detected intent.
var enTemplates = map[string]string{
	"inquiry": `Dear {sender_name},

Thank you for your inquiry regarding '{subject}'.

We are currently reviewing your request in detail and will get back to you shortly with more information.

Best regards,
Export Sales Team`,

	"quotation": `Dear {sender_name},

Thank you for your interest in our products.

We are preparing a formal quotation based on your requirements and will send it to you soon.

Please feel free to contact us if you have any questions.

Best regards,
Export Sales Team`,

	"order": `Dear {sender_name},

Thank you for your purchase order inquiry.

We are reviewing the details and will send you a Proforma Invoice along with our confirmation shortly.

Best regards,
Export Sales Team`,
}

var orderCues = []string{"order", "po", "purchase", "발주", "주문", "proforma"}
var quotationCues = []string{"quote", "quotation", "price", "견적", "단가", "cost"}

// TemplateDrafter generates reply drafts from fixed templates. It is the
// degraded variant used when no external generation service is configured.
type TemplateDrafter struct {
	logger *zap.Logger
}

// NewTemplateDrafter creates a template-based reply drafter.
func NewTemplateDrafter(logger *zap.Logger) *TemplateDrafter {
	return &TemplateDrafter{logger: logger}
}

// Draft fills in the template matching the message language and intent.
func (d *TemplateDrafter) Draft(_ context.Context, msg *core.InquiryMessage, language core.Language) (*core.ReplyDraft, error) {
	senderName := ExtractSenderName(msg.Sender)
	intent := DetectIntent(msg.Subject, msg.Text())

	templates := enTemplates
	if language == core.LanguageKorean {
		templates = koTemplates
	}
	tmpl, ok := templates[intent]
	if !ok {
		tmpl = templates["inquiry"]
	}

	subject := msg.Subject
	if r := []rune(subject); len(r) > 50 {
		subject = string(r[:50])
	}

	body := strings.NewReplacer(
		"{sender_name}", senderName,
		"{subject}", subject,
	).Replace(tmpl)

	return &core.ReplyDraft{
		Subject:    "Re: " + msg.Subject,
		Body:       body,
		Language:   language,
		SenderName: senderName,
		Intent:     intent,
		Tone:       "formal",
	}, nil
}

// ExtractSenderName pulls the display name out of a "Name <addr>" sender
// field, falling back to a neutral salutation.
func ExtractSenderName(sender string) string {
	if sender == "" {
		return "Sir/Madam"
	}
	name, _, _ := strings.Cut(sender, "<")
	name = strings.Trim(strings.TrimSpace(name), `"'`)
	if name == "" || strings.Contains(name, "@") {
		return "Sir/Madam"
	}
	return name
}

// DetectIntent classifies a message as an order, quotation request or general
// inquiry from simple keyword cues.
func DetectIntent(subject, body string) string {
	text := strings.ToLower(subject + " " + body)
	for _, cue := range orderCues {
		if strings.Contains(text, cue) {
			return "order"
		}
	}
	for _, cue := range quotationCues {
		if strings.Contains(text, cue) {
			return "quotation"
		}
	}
	return "inquiry"
}
