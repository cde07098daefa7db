package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/threat-mapper/constants"
	"github.com/joseph-ayodele/threat-mapper/gen/ent"
	entattack "github.com/joseph-ayodele/threat-mapper/gen/ent/attackobject"
	"github.com/joseph-ayodele/threat-mapper/internal/common"
)

// AttackObjectRepository is the read-mostly taxonomy registry. Rows are
// written only by the one-time import.
type AttackObjectRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.AttackObject, error)
	GetByAttackID(ctx context.Context, attackID string) (*ent.AttackObject, error)
	List(ctx context.Context, kind constants.ObjectKind, matrix string) ([]*ent.AttackObject, error)
	Import(ctx context.Context, entries []AttackObjectImport) (int, error)
}

// AttackObjectImport is one row of the taxonomy import.
type AttackObjectImport struct {
	Kind      constants.ObjectKind
	Name      string
	StixID    string
	AttackID  string
	AttackURL string
	Matrix    string
}

type attackObjectRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewAttackObjectRepository(entc *ent.Client, logger *slog.Logger) AttackObjectRepository {
	return &attackObjectRepo{ent: entc, logger: logger}
}

func (r *attackObjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.AttackObject, error) {
	row, err := r.ent.AttackObject.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.NewAppError("ATTACK_OBJECT_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	return row, err
}

func (r *attackObjectRepo) GetByAttackID(ctx context.Context, attackID string) (*ent.AttackObject, error) {
	row, err := r.ent.AttackObject.Query().
		Where(entattack.AttackID(attackID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		r.logger.Warn("attack object not found", "attack_id", attackID)
		return nil, common.NewAppError("ATTACK_OBJECT_NOT_FOUND", attackID, common.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to get attack object", "attack_id", attackID, "error", err)
		return nil, err
	}
	return row, nil
}

// List returns taxonomy entries of a kind ordered by attack_id; matrix
// narrows the result when non-empty.
func (r *attackObjectRepo) List(ctx context.Context, kind constants.ObjectKind, matrix string) ([]*ent.AttackObject, error) {
	q := r.ent.AttackObject.Query().
		Where(entattack.Kind(string(kind)))
	if matrix != "" {
		q = q.Where(entattack.Matrix(matrix))
	}
	rows, err := q.Order(ent.Asc(entattack.FieldAttackID)).All(ctx)
	if err != nil {
		r.logger.Error("failed to list attack objects", "kind", kind, "error", err)
		return nil, err
	}
	return rows, nil
}

// Import inserts taxonomy entries, skipping ones whose stix_id already
// exists. Returns the number of rows created.
func (r *attackObjectRepo) Import(ctx context.Context, entries []AttackObjectImport) (int, error) {
	created := 0
	for _, e := range entries {
		exists, err := r.ent.AttackObject.Query().
			Where(entattack.StixID(e.StixID)).
			Exist(ctx)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}
		_, err = r.ent.AttackObject.Create().
			SetKind(string(e.Kind)).
			SetName(e.Name).
			SetStixID(e.StixID).
			SetAttackID(e.AttackID).
			SetAttackURL(e.AttackURL).
			SetMatrix(e.Matrix).
			Save(ctx)
		if err != nil {
			r.logger.Error("attack object import failed", "attack_id", e.AttackID, "error", err)
			return created, err
		}
		created++
	}
	r.logger.Info("attack objects imported", "created", created, "total", len(entries))
	return created, nil
}
