package repository

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/gen/ent"
	"github.com/joseph-ayodele/threat-mapper/internal/common"
)

func seedDocument(t *testing.T, client *ent.Client) *ent.Document {
	t.Helper()
	doc, err := client.Document.Create().
		SetFilename("report.txt").
		SetStoragePath("/tmp/report.txt").
		Save(context.Background())
	require.NoError(t, err)
	return doc
}

func TestIngestJobs_Lifecycle(t *testing.T) {
	client := newTestClient(t)
	repo := NewIngestJobRepository(client, slog.Default())
	ctx := context.Background()

	doc := seedDocument(t, client)
	job, err := repo.CreateQueued(ctx, doc.ID, "analyst")
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusQueued), job.Status)
	require.NotNil(t, job.CreatedBy)
	assert.Equal(t, "analyst", *job.CreatedBy)

	queued, err := repo.ListByStatus(ctx, constants.JobStatusQueued)
	require.NoError(t, err)
	require.Len(t, queued, 1)

	require.NoError(t, repo.MarkDone(ctx, job.ID))
	got, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusDone), got.Status)

	queued, err = repo.ListByStatus(ctx, constants.JobStatusQueued)
	require.NoError(t, err)
	assert.Empty(t, queued)
}

func TestIngestJobs_MarkErrorTruncatesMessage(t *testing.T) {
	client := newTestClient(t)
	repo := NewIngestJobRepository(client, slog.Default())
	ctx := context.Background()

	doc := seedDocument(t, client)
	job, err := repo.CreateQueued(ctx, doc.ID, "")
	require.NoError(t, err)
	assert.Nil(t, job.CreatedBy)

	long := strings.Repeat("x", constants.MaxJobMessageLen+100)
	require.NoError(t, repo.MarkError(ctx, job.ID, long))

	got, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusError), got.Status)
	assert.Len(t, got.Message, constants.MaxJobMessageLen)
}

func TestIngestJobs_GetByIDNotFound(t *testing.T) {
	client := newTestClient(t)
	repo := NewIngestJobRepository(client, slog.Default())

	_, err := repo.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
