package export

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdef", 5))
	assert.Equal(t, "a", truncate("abc", 1))
	assert.Equal(t, "", truncate("", 5))

	// multi-byte text must clip on a rune boundary
	cyrillic := strings.Repeat("д", 10)
	got := truncate(cyrillic, 5)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "дддд…", got)

	exact := strings.Repeat("д", 5)
	assert.Equal(t, exact, truncate(exact, 5))
}
