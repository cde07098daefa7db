package server

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/internal/common"
)

func TestToStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"not found", common.NewAppError("SENTENCE_NOT_FOUND", "x", common.ErrNotFound), codes.NotFound},
		{"invalid input", common.NewAppError("INVALID_THRESHOLD", "x", common.ErrInvalidInput), codes.InvalidArgument},
		{"config unavailable", common.NewAppError("CONFIG_ERROR", "x", common.ErrConfigUnavailable), codes.FailedPrecondition},
		{"storage inconsistent", common.NewAppError("ORPHANED_MAPPING", "x", common.ErrStorageInconsistent), codes.DataLoss},
		{"unknown", errors.New("boom"), codes.Internal},
		{"status passthrough", status.Error(codes.AlreadyExists, "x"), codes.AlreadyExists},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, status.Code(toStatus(tc.err)))
		})
	}

	assert.NoError(t, toStatus(nil))
}

func TestParseKind(t *testing.T) {
	kind, err := parseKind(" technique ")
	assert.NoError(t, err)
	assert.Equal(t, constants.KindTechnique, kind)

	kind, err = parseKind("group")
	assert.NoError(t, err)
	assert.Equal(t, constants.KindGroup, kind)

	_, err = parseKind("malware")
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestParseGranularity(t *testing.T) {
	for raw, want := range map[string]int{"": 0, "sentence": 0, "report": 1} {
		g, err := parseGranularity(raw)
		assert.NoError(t, err)
		assert.Equal(t, want, int(g))
	}

	_, err := parseGranularity("paragraph")
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
