package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainTextPassthrough(t *testing.T) {
	got, err := ExtractText(strings.NewReader("hello world"), "report.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
}

func TestExtractText_MarkdownPassthrough(t *testing.T) {
	got, err := ExtractText(strings.NewReader("# Heading\n\nbody"), "notes.MD")
	require.NoError(t, err)
	assert.Contains(t, got, "Heading")
}

func TestExtractText_HTMLStripsMarkup(t *testing.T) {
	page := `<html><head><title>APT report</title></head><body>
		<article><p>The actor used PowerShell to move laterally across the network.</p>
		<p>Credential dumping followed shortly after initial access was gained.</p></article>
	</body></html>`

	got, err := ExtractText(strings.NewReader(page), "report.html")
	require.NoError(t, err)
	assert.Contains(t, got, "PowerShell")
	assert.NotContains(t, got, "<p>")
}

func TestExtractText_UnknownSuffix(t *testing.T) {
	_, err := ExtractText(strings.NewReader("x"), "report.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown file suffix")
}
