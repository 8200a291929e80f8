// Package textutil holds small helpers for preparing message text before it
// is sent to an external generation service.
package textutil

import (
	"strings"
	"unicode/utf8"
)

const truncationNotice = "\n[... content truncated ...]"

// Truncate cuts text down to at most maxBytes bytes without splitting a UTF-8
// sequence. A non-positive limit disables truncation.
func Truncate(text string, maxBytes int) string {
	if maxBytes <= 0 || len(text) <= maxBytes {
		return text
	}
	cut := text[:maxBytes]
	for len(cut) > 0 {
		r, size := utf8.DecodeLastRuneInString(cut)
		if r != utf8.RuneError || size > 1 {
			break
		}
		cut = cut[:len(cut)-1]
	}
	return cut + truncationNotice
}

// Sanitize replaces invalid UTF-8 sequences with the Unicode replacement
// character.
func Sanitize(text string) string {
	if utf8.ValidString(text) {
		return text
	}
	return strings.ToValidUTF8(text, string(utf8.RuneError))
}

// Prepare truncates and sanitizes text in one step.
func Prepare(text string, maxBytes int) string {
	return Sanitize(Truncate(text, maxBytes))
}
