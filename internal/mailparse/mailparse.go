// Package mailparse turns RFC 822 mail into InquiryMessage values. Korean
// trade mail still arrives EUC-KR encoded often enough that charset handling
// is not optional here.
package mailparse

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"

	"golang.org/x/text/encoding/korean"

	"github.com/tradeinbox/inquiry-triage/internal/core"
)

// wordDecoder decodes encoded-word headers (=?euc-kr?B?...?= and friends).
var wordDecoder = mime.WordDecoder{CharsetReader: charsetReader}

// Parse reads one RFC 822 message and maps it onto the pipeline's input shape.
func Parse(r io.Reader) (*core.InquiryMessage, error) {
	msg, err := mail.ReadMessage(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}

	subject := msg.Header.Get("Subject")
	if decoded, err := wordDecoder.DecodeHeader(subject); err == nil {
		subject = decoded
	}

	sender := msg.Header.Get("From")
	senderEmail := sender
	if addr, err := mail.ParseAddress(sender); err == nil {
		senderEmail = addr.Address
		if decoded, err := wordDecoder.DecodeHeader(sender); err == nil {
			sender = decoded
		}
	}

	body, hasAttachment, err := extractText(msg)
	if err != nil {
		return nil, err
	}

	return &core.InquiryMessage{
		ID:            strings.Trim(msg.Header.Get("Message-ID"), "<>"),
		Subject:       subject,
		Sender:        sender,
		SenderEmail:   senderEmail,
		Body:          body,
		HasAttachment: hasAttachment,
	}, nil
}

// extractText returns the plain-text content of the message. For multipart
// mail it concatenates the text/plain parts and reports whether any
// non-inline part (an attachment) was seen.
func extractText(msg *mail.Message) (string, bool, error) {
	contentType := msg.Header.Get("Content-Type")
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		body, err := decodePart(msg.Body, contentType, msg.Header.Get("Content-Transfer-Encoding"))
		return body, false, err
	}

	boundary, ok := params["boundary"]
	if !ok {
		body, err := decodePart(msg.Body, contentType, msg.Header.Get("Content-Transfer-Encoding"))
		return body, false, err
	}

	mr := multipart.NewReader(msg.Body, boundary)
	var text bytes.Buffer
	hasAttachment := false
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		disposition := part.Header.Get("Content-Disposition")
		if strings.HasPrefix(strings.ToLower(disposition), "attachment") || part.FileName() != "" {
			hasAttachment = true
			continue
		}

		partType := part.Header.Get("Content-Type")
		if !strings.Contains(strings.ToLower(partType), "text/plain") {
			continue
		}
		body, err := decodePart(part, partType, part.Header.Get("Content-Transfer-Encoding"))
		if err != nil {
			continue
		}
		text.WriteString(body)
		text.WriteString("\n")
	}
	return text.String(), hasAttachment, nil
}

// decodePart reads one body (or part), undoing the transfer encoding and the
// declared charset.
func decodePart(r io.Reader, contentType, transferEncoding string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(transferEncoding)) {
	case "quoted-printable":
		r = quotedprintable.NewReader(r)
	case "base64":
		r = base64.NewDecoder(base64.StdEncoding, r)
	}

	charset := ""
	if _, params, err := mime.ParseMediaType(contentType); err == nil {
		charset = params["charset"]
	}
	if cr, err := charsetReader(charset, r); err == nil {
		r = cr
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read message body: %w", err)
	}
	return string(raw), nil
}

// charsetReader handles the charsets seen in Korean trade mail; everything
// else is assumed UTF-8 compatible.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "euc-kr", "ks_c_5601-1987", "cp949":
		return korean.EUCKR.NewDecoder().Reader(input), nil
	case "", "utf-8", "us-ascii", "iso-8859-1":
		return input, nil
	default:
		return nil, fmt.Errorf("unsupported charset: %s", charset)
	}
}
