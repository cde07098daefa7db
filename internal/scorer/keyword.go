package scorer

import (
	"context"
	"strings"
)

// KeywordScorer is a local baseline: it matches technique keywords
// against the sentence and emits a fixed confidence per hit. Useful for
// development and tests when no model service is reachable.
type KeywordScorer struct {
	// keyword (lowercase) -> attack_id
	Keywords   map[string]string
	Confidence float64
}

func NewKeywordScorer() *KeywordScorer {
	return &KeywordScorer{
		Keywords: map[string]string{
			"powershell":     "T1059.001",
			"cmd.exe":        "T1059.003",
			"scheduled task": "T1053.005",
			"phishing":       "T1566",
			"spearphishing":  "T1566.001",
			"mimikatz":       "S0002",
			"lsass":          "T1003.001",
			"registry run":   "T1547.001",
			"rundll32":       "T1218.011",
		},
		Confidence: 55.0,
	}
}

func (s *KeywordScorer) Name() string { return "keyword" }

func (s *KeywordScorer) Score(ctx context.Context, sentence string) ([]Proposal, error) {
	lower := strings.ToLower(sentence)
	var out []Proposal
	for kw, attackID := range s.Keywords {
		if strings.Contains(lower, kw) {
			out = append(out, Proposal{AttackID: attackID, Confidence: s.Confidence})
		}
	}
	if len(out) == 0 {
		// explicit negative example
		out = append(out, Proposal{AttackID: "", Confidence: 0})
	}
	return out, nil
}
