package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joseph-ayodele/threat-mapper/internal/repository"
)

func TestExtractIndicators_Kinds(t *testing.T) {
	text := "C2 at 10.1.2.3 and backup.evil[.]com dropped " +
		"d41d8cd98f00b204e9800998ecf8427e exploiting CVE-2021-44228."

	got := ExtractIndicators(text)

	assert.Contains(t, got, repository.IndicatorInput{Type: "ipv4", Value: "10.1.2.3"})
	assert.Contains(t, got, repository.IndicatorInput{Type: "domain", Value: "backup.evil[.]com"})
	assert.Contains(t, got, repository.IndicatorInput{Type: "md5", Value: "d41d8cd98f00b204e9800998ecf8427e"})
	assert.Contains(t, got, repository.IndicatorInput{Type: "cve", Value: "CVE-2021-44228"})
}

func TestExtractIndicators_Sha256(t *testing.T) {
	h := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	got := ExtractIndicators("sample hash " + h)

	assert.Contains(t, got, repository.IndicatorInput{Type: "sha256", Value: h})
}

func TestExtractIndicators_DedupAndOrder(t *testing.T) {
	got := ExtractIndicators("seen 10.0.0.1 then 10.0.0.1 again, plus CVE-2020-0601")

	assert.Equal(t, []repository.IndicatorInput{
		{Type: "cve", Value: "CVE-2020-0601"},
		{Type: "ipv4", Value: "10.0.0.1"},
	}, got)
}

func TestExtractIndicators_Empty(t *testing.T) {
	assert.Empty(t, ExtractIndicators("nothing actionable in this sentence"))
}
