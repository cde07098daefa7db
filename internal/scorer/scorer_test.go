package scorer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordScorer_MatchesKnownTerms(t *testing.T) {
	s := NewKeywordScorer()

	props, err := s.Score(context.Background(), "The actor launched PowerShell to dump LSASS memory.")
	require.NoError(t, err)

	ids := make(map[string]bool, len(props))
	for _, p := range props {
		ids[p.AttackID] = true
		assert.Equal(t, s.Confidence, p.Confidence)
	}
	assert.True(t, ids["T1059.001"])
	assert.True(t, ids["T1003.001"])
}

func TestKeywordScorer_NoMatchIsNegativeExample(t *testing.T) {
	s := NewKeywordScorer()

	props, err := s.Score(context.Background(), "Nothing interesting happened today.")
	require.NoError(t, err)
	require.Len(t, props, 1)
	assert.Empty(t, props[0].AttackID)
	assert.Zero(t, props[0].Confidence)
}

func TestValidateScoreResponse(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"valid", `{"mappings": [{"attack_id": "T1566", "confidence": 87.5}]}`, false},
		{"empty mappings", `{"mappings": []}`, false},
		{"negative example", `{"mappings": [{"attack_id": "", "confidence": 0}]}`, false},
		{"missing mappings", `{}`, true},
		{"missing confidence", `{"mappings": [{"attack_id": "T1566"}]}`, true},
		{"extra field", `{"mappings": [], "extra": 1}`, true},
		{"confidence not a number", `{"mappings": [{"attack_id": "T1566", "confidence": "high"}]}`, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateScoreResponse([]byte(tc.payload))
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRESTScorer_FiltersBelowThreshold(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"mappings": [
			{"attack_id": "T1566", "confidence": 92},
			{"attack_id": "T1059.001", "confidence": 12},
			{"attack_id": "", "confidence": 0}
		]}`))
	}))
	defer srv.Close()

	s := NewRESTScorer(RESTConfig{URL: srv.URL, Model: "tram-v1", ConfidenceThreshold: 50, Timeout: 5 * time.Second}, nil)
	assert.Equal(t, "tram-v1", s.Name())

	props, err := s.Score(context.Background(), "A phishing email was observed.")
	require.NoError(t, err)

	// the low-confidence proposal is dropped, the negative example kept
	require.Len(t, props, 2)
	assert.Equal(t, "T1566", props[0].AttackID)
	assert.Empty(t, props[1].AttackID)
}

func TestRESTScorer_Non2xxFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := NewRESTScorer(RESTConfig{URL: srv.URL, Model: "tram-v1"}, nil)
	_, err := s.Score(context.Background(), "sentence")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-2xx")
}

func TestRESTScorer_InvalidShapeFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	s := NewRESTScorer(RESTConfig{URL: srv.URL, Model: "tram-v1"}, nil)
	_, err := s.Score(context.Background(), "sentence")
	require.Error(t, err)
}
