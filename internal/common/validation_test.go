package common

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAttackIDRule(t *testing.T) {
	valid := []string{"T1059", "T1059.001", "TA0001", "G0008", "S0154", "M1040"}
	for _, id := range valid {
		assert.Nil(t, AttackID("attack_id", id), id)
	}

	invalid := []string{"", "t1059", "T105", "T1059.1", "X1234", "T1059.0011", "T1059 "}
	for _, id := range invalid {
		assert.NotNil(t, AttackID("attack_id", id), id)
	}
}

func TestValidatorCollectsErrors(t *testing.T) {
	v := NewValidator().
		Field("sentence_id", "not-a-uuid", Required, UUID).
		Field("attack_id", "", Required, AttackID)

	require.True(t, v.HasErrors())
	assert.Len(t, v.Errors(), 3)

	err := ValidateAndReturnError(v)
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestValidatorPasses(t *testing.T) {
	v := NewValidator().
		Field("sentence_id", uuid.NewString(), Required, UUID).
		Field("attack_id", "T1566.002", Required, AttackID)

	assert.False(t, v.HasErrors())
	assert.NoError(t, ValidateAndReturnError(v))
}
