package attackdata_test

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/internal/attackdata"
	"github.com/joseph-ayodele/threat-mapper/internal/repository"
)

const sampleBundle = `{
  "type": "bundle",
  "id": "bundle--0001",
  "objects": [
    {
      "type": "attack-pattern",
      "id": "attack-pattern--0001",
      "name": "Phishing",
      "external_references": [
        {"source_name": "mitre-attack", "external_id": "T1566", "url": "https://attack.mitre.org/techniques/T1566"}
      ]
    },
    {
      "type": "attack-pattern",
      "id": "attack-pattern--0002",
      "name": "Old Technique",
      "revoked": true,
      "external_references": [
        {"source_name": "mitre-attack", "external_id": "T9000", "url": "https://attack.mitre.org/techniques/T9000"}
      ]
    },
    {
      "type": "intrusion-set",
      "id": "intrusion-set--0001",
      "name": "APT28",
      "external_references": [
        {"source_name": "mitre-attack", "external_id": "G0007", "url": "https://attack.mitre.org/groups/G0007"}
      ]
    },
    {
      "type": "intrusion-set",
      "id": "intrusion-set--0002",
      "name": "No Reference Group",
      "external_references": []
    },
    {
      "type": "relationship",
      "id": "relationship--0001"
    }
  ]
}`

func newLoader(t *testing.T) (*attackdata.Loader, repository.AttackObjectRepository) {
	t.Helper()
	logger := slog.Default()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	client, err := repository.OpenSQLite(context.Background(), dsn, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	repo := repository.NewAttackObjectRepository(client, logger)
	return attackdata.NewLoader(repo, logger), repo
}

func TestLoad_ImportsTechniquesAndGroups(t *testing.T) {
	loader, repo := newLoader(t)
	ctx := context.Background()

	created, err := loader.Load(ctx, strings.NewReader(sampleBundle))
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	tech, err := repo.GetByAttackID(ctx, "T1566")
	require.NoError(t, err)
	assert.Equal(t, "Phishing", tech.Name)
	assert.Equal(t, string(constants.KindTechnique), tech.Kind)
	assert.Equal(t, "enterprise-attack", tech.Matrix)

	group, err := repo.GetByAttackID(ctx, "G0007")
	require.NoError(t, err)
	assert.Equal(t, string(constants.KindGroup), group.Kind)

	// revoked entries never land
	_, err = repo.GetByAttackID(ctx, "T9000")
	require.Error(t, err)
}

func TestLoad_IsIdempotent(t *testing.T) {
	loader, _ := newLoader(t)
	ctx := context.Background()

	created, err := loader.Load(ctx, strings.NewReader(sampleBundle))
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	created, err = loader.Load(ctx, strings.NewReader(sampleBundle))
	require.NoError(t, err)
	assert.Zero(t, created)
}

func TestLoad_RejectsNonBundle(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.Load(context.Background(), strings.NewReader(`{"type": "report", "objects": []}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want bundle")
}

func TestLoad_RejectsGarbage(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.Load(context.Background(), strings.NewReader("not json"))
	require.Error(t, err)
}
