package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeSentences_BasicBoundaries(t *testing.T) {
	got := TokenizeSentences("The actor used PowerShell. Persistence was achieved via a scheduled task.")
	assert.Equal(t, []string{
		"The actor used PowerShell.",
		"Persistence was achieved via a scheduled task.",
	}, got)
}

func TestTokenizeSentences_AbbreviationsDoNotSplit(t *testing.T) {
	got := TokenizeSentences("Tooling (e.g. Mimikatz) was dropped. Execution followed.")
	assert.Equal(t, []string{
		"Tooling (e.g. Mimikatz) was dropped.",
		"Execution followed.",
	}, got)
}

func TestTokenizeSentences_LowercaseContinuationDoesNotSplit(t *testing.T) {
	got := TokenizeSentences("The payload beaconed to evil.com. the analysts confirmed it later.")
	assert.Len(t, got, 1)
}

func TestTokenizeSentences_NewlinesBreak(t *testing.T) {
	got := TokenizeSentences("Initial Access\nThe actor sent a phishing email.\n\nExecution")
	assert.Equal(t, []string{
		"Initial Access",
		"The actor sent a phishing email.",
		"Execution",
	}, got)
}

func TestTokenizeSentences_CollapsesWhitespace(t *testing.T) {
	got := TokenizeSentences("The  actor\tused   PowerShell.")
	assert.Equal(t, []string{"The actor used PowerShell."}, got)
}

func TestTokenizeSentences_DottedTokensStayWhole(t *testing.T) {
	got := TokenizeSentences("Beacons went to 10.1.2.3 over TLS. Version 2.4 was in use.")
	assert.Equal(t, []string{
		"Beacons went to 10.1.2.3 over TLS.",
		"Version 2.4 was in use.",
	}, got)
}

func TestTokenizeSentences_Empty(t *testing.T) {
	assert.Empty(t, TokenizeSentences(""))
	assert.Empty(t, TokenizeSentences("   \n \t "))
}

func TestTokenizeSentences_QuestionAndExclamation(t *testing.T) {
	got := TokenizeSentences("Was the host compromised? Yes! Containment began immediately.")
	assert.Equal(t, []string{
		"Was the host compromised?",
		"Yes!",
		"Containment began immediately.",
	}, got)
}
