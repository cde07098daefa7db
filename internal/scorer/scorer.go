// Package scorer defines the contract with the machine-learning model
// that proposes taxonomy mappings for evidence sentences.
package scorer

import "context"

// Proposal is one scored suggestion for a sentence. An empty AttackID
// records "no mapping": the model found nothing above its own cutoff,
// which is stored as an explicitly negative example.
type Proposal struct {
	AttackID   string  `json:"attack_id"`
	Confidence float64 `json:"confidence"`
}

// Scorer proposes confidence-scored mappings for a sentence.
type Scorer interface {
	// Name is recorded on proposed mappings as the model name.
	Name() string
	Score(ctx context.Context, sentence string) ([]Proposal, error)
}
