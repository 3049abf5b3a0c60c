// Package report implements the per-board stuck-card report repository.
// One row per board: queueing upserts it back to queued under a fresh
// job id, the worker moves it to exactly one terminal status.
package report

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
	return postgres.MapError(err, "stuck_report", id)
}

const columns = "board_id, org_id, job_id, status, threshold_days, stuck_cards, failure_reason, queued_at, updated_at"

type reportRow struct {
	BoardID       uuid.UUID `db:"board_id"`
	OrgID         uuid.UUID `db:"org_id"`
	JobID         uuid.UUID `db:"job_id"`
	Status        string    `db:"status"`
	ThresholdDays int       `db:"threshold_days"`
	StuckCards    []byte    `db:"stuck_cards"`
	FailureReason *string   `db:"failure_reason"`
	QueuedAt      time.Time `db:"queued_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (r reportRow) toDomain() (*domain.StuckCardReport, error) {
	report := &domain.StuckCardReport{
		BoardID:       r.BoardID,
		OrgID:         r.OrgID,
		JobID:         r.JobID,
		Status:        domain.JobStatus(r.Status),
		ThresholdDays: r.ThresholdDays,
		FailureReason: r.FailureReason,
		QueuedAt:      r.QueuedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if len(r.StuckCards) > 0 {
		if err := json.Unmarshal(r.StuckCards, &report.StuckCards); err != nil {
			return nil, fmt.Errorf("unmarshal stuck cards: %w", err)
		}
	}
	return report, nil
}

// Repo provides stuck-card report persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new report repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByBoardID returns the board's report scoped to the caller's org.
// Returns domain.ErrNotFound if no job was ever queued for the board.
func (r *Repo) GetByBoardID(ctx context.Context, orgID, boardID uuid.UUID) (*domain.StuckCardReport, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(columns).
		From("board_stuck_reports").
		Where(squirrel.Eq{"board_id": boardID, "org_id": orgID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row reportRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("stuck report for board %s: %w", boardID, domain.ErrNotFound)
		}
		return nil, mapError(err, boardID)
	}

	return row.toDomain()
}

// Upsert writes the queued report, replacing any previous run for the
// same board. Called inside the queueing transaction.
func (r *Repo) Upsert(ctx context.Context, report *domain.StuckCardReport) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Insert("board_stuck_reports").
		Columns("board_id", "org_id", "job_id", "status", "threshold_days", "queued_at", "updated_at").
		Values(report.BoardID, report.OrgID, report.JobID, report.Status.String(), report.ThresholdDays, report.QueuedAt, report.UpdatedAt).
		Suffix(`ON CONFLICT (board_id) DO UPDATE SET
			job_id = EXCLUDED.job_id,
			status = EXCLUDED.status,
			threshold_days = EXCLUDED.threshold_days,
			stuck_cards = NULL,
			failure_reason = NULL,
			queued_at = EXCLUDED.queued_at,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return mapError(err, report.BoardID)
	}

	return nil
}

// SetProcessing marks the job as picked up. Guarded by job id so a
// redelivered event for a superseded run is a no-op.
func (r *Repo) SetProcessing(ctx context.Context, boardID, jobID uuid.UUID, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Update("board_stuck_reports").
		Set("status", domain.JobStatusProcessing.String()).
		Set("updated_at", now).
		Where(squirrel.Eq{"board_id": boardID, "job_id": jobID, "status": domain.JobStatusQueued.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return mapError(err, boardID)
	}

	return nil
}

// Complete moves the job to completed with its stuck-card body.
// Guarded by job id and non-terminal status: redelivery is a no-op.
func (r *Repo) Complete(ctx context.Context, boardID, jobID uuid.UUID, stuck []domain.StuckCard, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	body, err := json.Marshal(stuck)
	if err != nil {
		return fmt.Errorf("marshal stuck cards: %w", err)
	}

	sql, args, err := qb.Update("board_stuck_reports").
		Set("status", domain.JobStatusCompleted.String()).
		Set("stuck_cards", body).
		Set("failure_reason", nil).
		Set("updated_at", now).
		Where(squirrel.Eq{"board_id": boardID, "job_id": jobID}).
		Where(squirrel.NotEq{"status": []string{
			domain.JobStatusCompleted.String(),
			domain.JobStatusFailed.String(),
		}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return mapError(err, boardID)
	}

	return nil
}

// Fail moves the job to failed with a reason, under the same guards as
// Complete.
func (r *Repo) Fail(ctx context.Context, boardID, jobID uuid.UUID, reason string, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Update("board_stuck_reports").
		Set("status", domain.JobStatusFailed.String()).
		Set("failure_reason", reason).
		Set("updated_at", now).
		Where(squirrel.Eq{"board_id": boardID, "job_id": jobID}).
		Where(squirrel.NotEq{"status": []string{
			domain.JobStatusCompleted.String(),
			domain.JobStatusFailed.String(),
		}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return mapError(err, boardID)
	}

	return nil
}
