package reply

import (
	"fmt"

	"github.com/tradeinbox/inquiry-triage/internal/core"
	"github.com/tradeinbox/inquiry-triage/internal/textutil"
)

const promptFormat = `You are a professional export sales representative.
Generate a polite and professional reply email %s.

Original Email:
Subject: %s
Content: %s

Requirements:
1. Write the reply %s
2. Be professional and courteous
3. Acknowledge receipt of their inquiry
4. Mention that you are reviewing their request
5. Promise a detailed follow-up soon
6. Keep it concise (under 150 words)
7. Do NOT include email headers like "Subject:" or "To:" - just the body text
8. Start with appropriate greeting using sender name: %s
9. End with "Best regards," or "감사합니다," and "Export Sales Team" or "해외영업팀 드림"

Return ONLY the email body text, nothing else.`

// buildPrompt renders the generation prompt for one message, truncating the
// body so oversized mail does not blow the token budget.
func buildPrompt(msg *core.InquiryMessage, language core.Language, senderName string, maxBodySize int) string {
	langInstruction := "in English"
	if language == core.LanguageKorean {
		langInstruction = "한국어로"
	}
	body := textutil.Prepare(msg.Text(), maxBodySize)
	return fmt.Sprintf(promptFormat, langInstruction, msg.Subject, body, langInstruction, senderName)
}
