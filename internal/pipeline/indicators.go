package pipeline

import (
	"regexp"
	"sort"

	"github.com/joseph-ayodele/threat-mapper/internal/repository"
)

var indicatorPatterns = map[string]*regexp.Regexp{
	"ipv4":   regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`),
	"md5":    regexp.MustCompile(`\b[a-fA-F0-9]{32}\b`),
	"sha256": regexp.MustCompile(`\b[a-fA-F0-9]{64}\b`),
	"domain": regexp.MustCompile(`\b[a-z0-9][a-z0-9-]*(?:\[\.\]|\.)(?:[a-z0-9-]+(?:\[\.\]|\.))*(?:com|net|org|io|ru|cn|info|biz|top)\b`),
	"cve":    regexp.MustCompile(`\bCVE-\d{4}-\d{4,7}\b`),
}

// ExtractIndicators scans report text for atomic artifacts worth keeping
// alongside the report: IPs, hashes, defanged or plain domains, CVEs.
// Results are de-duplicated and returned in a stable order.
func ExtractIndicators(text string) []repository.IndicatorInput {
	seen := make(map[string]struct{})
	var out []repository.IndicatorInput
	for indicatorType, re := range indicatorPatterns {
		for _, value := range re.FindAllString(text, -1) {
			key := indicatorType + "\x00" + value
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, repository.IndicatorInput{Type: indicatorType, Value: value})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].Value < out[j].Value
	})
	return out
}
