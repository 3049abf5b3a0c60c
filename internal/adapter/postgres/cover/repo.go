// Package cover implements the card cover repository. A cover passes
// through two worker phases: spec generation, then SVG render.
package cover

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/hexbolt/taskboard-backend/internal/adapter/postgres"
	"github.com/hexbolt/taskboard-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func mapError(err error, id uuid.UUID) error {
	return postgres.MapError(err, "card_cover", id)
}

const columns = "card_id, org_id, job_id, spec, svg, status, updated_at"

type coverRow struct {
	CardID    uuid.UUID `db:"card_id"`
	OrgID     uuid.UUID `db:"org_id"`
	JobID     uuid.UUID `db:"job_id"`
	Spec      []byte    `db:"spec"`
	SVG       *string   `db:"svg"`
	Status    string    `db:"status"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r coverRow) toDomain() (*domain.CardCover, error) {
	c := &domain.CardCover{
		CardID:    r.CardID,
		OrgID:     r.OrgID,
		JobID:     r.JobID,
		SVG:       r.SVG,
		Status:    domain.JobStatus(r.Status),
		UpdatedAt: r.UpdatedAt,
	}
	if len(r.Spec) > 0 {
		c.Spec = &domain.CoverSpec{}
		if err := json.Unmarshal(r.Spec, c.Spec); err != nil {
			return nil, fmt.Errorf("unmarshal cover spec: %w", err)
		}
	}
	return c, nil
}

// Repo provides card cover persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new cover repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByCardID returns the card's cover scoped to the caller's org.
func (r *Repo) GetByCardID(ctx context.Context, orgID, cardID uuid.UUID) (*domain.CardCover, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(columns).
		From("card_covers").
		Where(squirrel.Eq{"card_id": cardID, "org_id": orgID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row coverRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("cover for card %s: %w", cardID, domain.ErrNotFound)
		}
		return nil, mapError(err, cardID)
	}

	return row.toDomain()
}

// UpsertQueued records that a cover job was accepted for the card.
func (r *Repo) UpsertQueued(ctx context.Context, cardID, orgID, jobID uuid.UUID, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Insert("card_covers").
		Columns("card_id", "org_id", "job_id", "status", "updated_at").
		Values(cardID, orgID, jobID, domain.JobStatusQueued.String(), now).
		Suffix(`ON CONFLICT (card_id) DO UPDATE SET
			job_id = EXCLUDED.job_id,
			spec = NULL,
			svg = NULL,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return mapError(err, cardID)
	}

	return nil
}

// SetSpec stores the generated spec. Guarded by job id so redelivered
// or superseded events are no-ops.
func (r *Repo) SetSpec(ctx context.Context, cardID, jobID uuid.UUID, spec *domain.CoverSpec, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	body, err := json.Marshal(spec)
	if err != nil {
		return fmt.Errorf("marshal cover spec: %w", err)
	}

	sql, args, err := qb.Update("card_covers").
		Set("spec", body).
		Set("status", domain.JobStatusProcessing.String()).
		Set("updated_at", now).
		Where(squirrel.Eq{"card_id": cardID, "job_id": jobID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return mapError(err, cardID)
	}

	return nil
}

// SetSVG stores the rendered SVG and completes the job.
func (r *Repo) SetSVG(ctx context.Context, cardID, jobID uuid.UUID, svg string, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Update("card_covers").
		Set("svg", svg).
		Set("status", domain.JobStatusCompleted.String()).
		Set("updated_at", now).
		Where(squirrel.Eq{"card_id": cardID, "job_id": jobID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return mapError(err, cardID)
	}

	return nil
}

// Fail parks the cover job with a terminal status.
func (r *Repo) Fail(ctx context.Context, cardID, jobID uuid.UUID, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Update("card_covers").
		Set("status", domain.JobStatusFailed.String()).
		Set("updated_at", now).
		Where(squirrel.Eq{"card_id": cardID, "job_id": jobID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return mapError(err, cardID)
	}

	return nil
}
