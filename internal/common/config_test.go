package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/threatmapper")
	t.Setenv("ML_SCORER_TIMEOUT", "45s")
	t.Setenv("GRPC_ADDR", "")
	t.Setenv("DOC_STORAGE_DIR", "")
	t.Setenv("ML_MODEL_NAME", "")
	t.Setenv("DB_MAX_CONNS", "")

	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ":8080", cfg.Server.GRPCAddr)
	assert.Equal(t, "./data/documents", cfg.Storage.RootDir)
	assert.Equal(t, "keyword", cfg.ML.ModelName)
	assert.Equal(t, 45*time.Second, cfg.ML.Timeout)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
}

func TestValidateRequiresDSN(t *testing.T) {
	t.Setenv("DB_URL", "")

	err := LoadConfig().Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestEnvThresholdSource(t *testing.T) {
	ctx := context.Background()

	t.Setenv("ML_ACCEPT_THRESHOLD", "3")
	n, err := EnvThresholdSource{}.AcceptThreshold(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	t.Setenv("ML_ACCEPT_THRESHOLD", "")
	_, err = EnvThresholdSource{}.AcceptThreshold(ctx)
	assert.True(t, errors.Is(err, ErrConfigUnavailable))

	t.Setenv("ML_ACCEPT_THRESHOLD", "many")
	_, err = EnvThresholdSource{}.AcceptThreshold(ctx)
	assert.True(t, errors.Is(err, ErrConfigUnavailable))

	t.Setenv("ML_ACCEPT_THRESHOLD", "-1")
	_, err = EnvThresholdSource{}.AcceptThreshold(ctx)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestStaticThresholdSource(t *testing.T) {
	n, err := StaticThresholdSource(2).AcceptThreshold(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = StaticThresholdSource(-1).AcceptThreshold(context.Background())
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
