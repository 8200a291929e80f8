package textutil

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 100))
	assert.Equal(t, "short", Truncate("short", 0))
	assert.Equal(t, "short", Truncate("short", -1))

	got := Truncate(strings.Repeat("a", 20), 10)
	assert.Equal(t, strings.Repeat("a", 10)+truncationNotice, got)
}

func TestTruncateDoesNotSplitUTF8(t *testing.T) {
	// 한 is 3 bytes, so an 8-byte limit lands mid-rune and backs off to 2
	// complete characters.
	got := Truncate("한국어문장", 8)
	assert.Equal(t, "한국"+truncationNotice, got)
	assert.True(t, utf8.ValidString(got))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "clean", Sanitize("clean"))

	dirty := "abc\xffdef"
	got := Sanitize(dirty)
	assert.True(t, utf8.ValidString(got))
	assert.Contains(t, got, "abc")
	assert.Contains(t, got, "def")
}

func TestPrepare(t *testing.T) {
	got := Prepare("한국어 문장입니다", 7)
	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, truncationNotice))
}
