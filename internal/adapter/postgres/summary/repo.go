// Package summary implements the grounded card summary repository.
package summary

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
	return postgres.MapError(err, "card_summary", id)
}

const columns = "card_id, org_id, job_id, summary, citations, model, updated_at"

type summaryRow struct {
	CardID    uuid.UUID `db:"card_id"`
	OrgID     uuid.UUID `db:"org_id"`
	JobID     uuid.UUID `db:"job_id"`
	Summary   string    `db:"summary"`
	Citations []byte    `db:"citations"`
	Model     string    `db:"model"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r summaryRow) toDomain() (*domain.CardSummary, error) {
	s := &domain.CardSummary{
		CardID:    r.CardID,
		OrgID:     r.OrgID,
		JobID:     r.JobID,
		Summary:   r.Summary,
		Model:     r.Model,
		UpdatedAt: r.UpdatedAt,
	}
	if len(r.Citations) > 0 {
		if err := json.Unmarshal(r.Citations, &s.Citations); err != nil {
			return nil, fmt.Errorf("unmarshal citations: %w", err)
		}
	}
	return s, nil
}

// Repo provides card summary persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new summary repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByCardID returns the card's summary scoped to the caller's org.
func (r *Repo) GetByCardID(ctx context.Context, orgID, cardID uuid.UUID) (*domain.CardSummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(columns).
		From("card_summaries").
		Where(squirrel.Eq{"card_id": cardID, "org_id": orgID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row summaryRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("summary for card %s: %w", cardID, domain.ErrNotFound)
		}
		return nil, mapError(err, cardID)
	}

	return row.toDomain()
}

// JobSeen reports whether a summary for this job id was already
// written — the redelivery check for the summarize handler.
func (r *Repo) JobSeen(ctx context.Context, jobID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select("1").
		From("card_summaries").
		Where(squirrel.Eq{"job_id": jobID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var one int
	if err := pgxscan.Get(ctx, q, &one, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return false, nil
		}
		return false, mapError(err, jobID)
	}

	return true, nil
}

// Upsert writes the summary, replacing any earlier one for the card.
func (r *Repo) Upsert(ctx context.Context, s *domain.CardSummary) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	citations, err := json.Marshal(s.Citations)
	if err != nil {
		return fmt.Errorf("marshal citations: %w", err)
	}

	sql, args, err := qb.Insert("card_summaries").
		Columns("card_id", "org_id", "job_id", "summary", "citations", "model", "updated_at").
		Values(s.CardID, s.OrgID, s.JobID, s.Summary, citations, s.Model, s.UpdatedAt).
		Suffix(`ON CONFLICT (card_id) DO UPDATE SET
			job_id = EXCLUDED.job_id,
			summary = EXCLUDED.summary,
			citations = EXCLUDED.citations,
			model = EXCLUDED.model,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return mapError(err, s.CardID)
	}

	return nil
}
