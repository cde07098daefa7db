package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// RESTScorer talks to an external model service over HTTP. The service
// receives the sentence text and answers with scored proposals; the
// response is validated against a JSON schema before anything reaches
// the ledger.
type RESTScorer struct {
	url                 string
	model               string
	confidenceThreshold float64
	client              *http.Client
	logger              *slog.Logger
}

type RESTConfig struct {
	URL   string
	Model string
	// ConfidenceThreshold drops proposals below it before storage.
	ConfidenceThreshold float64
	Timeout             time.Duration
}

func NewRESTScorer(cfg RESTConfig, logger *slog.Logger) *RESTScorer {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &RESTScorer{
		url:                 cfg.URL,
		model:               cfg.Model,
		confidenceThreshold: cfg.ConfidenceThreshold,
		client:              &http.Client{Timeout: timeout},
		logger:              logger,
	}
}

func (s *RESTScorer) Name() string { return s.model }

type scoreRequest struct {
	Model    string `json:"model"`
	Sentence string `json:"sentence"`
}

type scoreResponse struct {
	Mappings []Proposal `json:"mappings"`
}

func (s *RESTScorer) Score(ctx context.Context, sentence string) ([]Proposal, error) {
	start := time.Now()

	bs, err := json.Marshal(scoreRequest{Model: s.model, Sentence: sentence})
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("scorer.http.send_error", "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			s.logger.Warn("scorer.http.response_body_close_error", "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	s.logger.Debug("scorer.http.response",
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("scorer returned non-2xx status: %d", resp.StatusCode)
	}

	if err := ValidateScoreResponse(raw); err != nil {
		s.logger.Error("scorer.response.invalid", "error", err)
		return nil, err
	}

	var parsed scoreResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	out := make([]Proposal, 0, len(parsed.Mappings))
	for _, p := range parsed.Mappings {
		if p.AttackID != "" && p.Confidence < s.confidenceThreshold {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
