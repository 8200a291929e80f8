package mailparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleMessage(t *testing.T) {
	raw := "From: John Smith <john@acme.com>\r\n" +
		"To: sales@tradeinbox.example\r\n" +
		"Subject: Purchase Order for LED Bulbs\r\n" +
		"Message-ID: <abc123@acme.com>\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		"Please quote 500 pcs FOB Busan.\r\n"

	msg, err := Parse(strings.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, "abc123@acme.com", msg.ID)
	assert.Equal(t, "Purchase Order for LED Bulbs", msg.Subject)
	assert.Equal(t, "John Smith <john@acme.com>", msg.Sender)
	assert.Equal(t, "john@acme.com", msg.SenderEmail)
	assert.Contains(t, msg.Body, "FOB Busan")
	assert.False(t, msg.HasAttachment)
}

func TestParseEncodedKoreanSubject(t *testing.T) {
	// "견적 요청" encoded as an UTF-8 encoded-word.
	raw := "From: kim@hanguk.co.kr\r\n" +
		"Subject: =?UTF-8?B?6rKs7KCBIOyalOyyrQ==?=\r\n" +
		"\r\n" +
		"body\r\n"

	msg, err := Parse(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "견적 요청", msg.Subject)
}

func TestParseQuotedPrintableBody(t *testing.T) {
	raw := "From: a@b.com\r\n" +
		"Subject: test\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"Content-Transfer-Encoding: quoted-printable\r\n" +
		"\r\n" +
		"price =3D 1.20 USD\r\n"

	msg, err := Parse(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Contains(t, msg.Body, "price = 1.20 USD")
}

func TestParseMultipartWithAttachment(t *testing.T) {
	raw := "From: a@b.com\r\n" +
		"Subject: RFQ\r\n" +
		"Content-Type: multipart/mixed; boundary=XYZ\r\n" +
		"\r\n" +
		"--XYZ\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		"See attached spec sheet.\r\n" +
		"--XYZ\r\n" +
		"Content-Type: application/pdf\r\n" +
		"Content-Disposition: attachment; filename=\"spec.pdf\"\r\n" +
		"\r\n" +
		"%PDF-1.4 fake\r\n" +
		"--XYZ\r\n" +
		"Content-Type: text/html; charset=utf-8\r\n" +
		"\r\n" +
		"<p>See attached spec sheet.</p>\r\n" +
		"--XYZ--\r\n"

	msg, err := Parse(strings.NewReader(raw))
	require.NoError(t, err)

	assert.True(t, msg.HasAttachment)
	assert.Contains(t, msg.Body, "See attached spec sheet.")
	assert.NotContains(t, msg.Body, "<p>")
	assert.NotContains(t, msg.Body, "%PDF")
}

func TestParseBareFromAddress(t *testing.T) {
	raw := "From: jane@acme.com\r\n" +
		"Subject: hello\r\n" +
		"\r\n" +
		"hi\r\n"

	msg, err := Parse(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "jane@acme.com", msg.SenderEmail)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse(strings.NewReader("not a mail message"))
	assert.Error(t, err)
}

func TestCharsetReader(t *testing.T) {
	for _, cs := range []string{"euc-kr", "EUC-KR", "ks_c_5601-1987", "cp949", "", "utf-8", "US-ASCII"} {
		_, err := charsetReader(cs, strings.NewReader("x"))
		assert.NoError(t, err, "charset %q", cs)
	}
	_, err := charsetReader("klingon-8", strings.NewReader("x"))
	assert.Error(t, err)
}
