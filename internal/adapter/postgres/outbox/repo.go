// Package outbox implements the transactional outbox repository.
// Events are appended inside the owning mutation's transaction (the
// repository picks the transaction up from the context) and drained by
// the worker dispatcher.
package outbox

import (
	"context"
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
	return postgres.MapError(err, "outbox_event", id)
}

const columns = "id, event_type, org_id, board_id, payload, status, retries, last_error, created_at"

type eventRow struct {
	ID        uuid.UUID `db:"id"`
	EventType string    `db:"event_type"`
	OrgID     uuid.UUID `db:"org_id"`
	BoardID   uuid.UUID `db:"board_id"`
	Payload   []byte    `db:"payload"`
	Status    string    `db:"status"`
	Retries   int       `db:"retries"`
	LastError *string   `db:"last_error"`
	CreatedAt time.Time `db:"created_at"`
}

func (r eventRow) toDomain() domain.OutboxEvent {
	return domain.OutboxEvent{
		ID:        r.ID,
		Type:      domain.EventType(r.EventType),
		OrgID:     r.OrgID,
		BoardID:   r.BoardID,
		Payload:   r.Payload,
		Status:    domain.OutboxStatus(r.Status),
		Retries:   r.Retries,
		LastError: r.LastError,
		CreatedAt: r.CreatedAt,
	}
}

// Repo provides outbox persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new outbox repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Append inserts a pending event. Called inside the owning mutation's
// transaction so the event commits or rolls back with the mutation.
func (r *Repo) Append(ctx context.Context, ev *domain.OutboxEvent) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Insert("outbox_events").
		Columns("id", "event_type", "org_id", "board_id", "payload", "status", "retries", "created_at").
		Values(ev.ID, ev.Type.String(), ev.OrgID, ev.BoardID, []byte(ev.Payload), ev.Status.String(), ev.Retries, ev.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return mapError(err, ev.ID)
	}

	return nil
}

// FetchPending returns up to limit pending events in append order.
// SKIP LOCKED lets multiple worker replicas drain without contention.
func (r *Repo) FetchPending(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(columns).
		From("outbox_events").
		Where(squirrel.Eq{"status": domain.OutboxStatusPending.String()}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []eventRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("fetch pending: %w", err)
	}

	events := make([]domain.OutboxEvent, len(rows))
	for i, row := range rows {
		events[i] = row.toDomain()
	}

	return events, nil
}

// MarkProcessed moves a delivered event to its terminal success state.
func (r *Repo) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Update("outbox_events").
		Set("status", domain.OutboxStatusProcessed.String()).
		Set("processed_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return mapError(err, id)
	}

	return nil
}

// MarkFailed records a handler failure. Non-terminal failures bump the
// retry counter and keep the event pending for redelivery; terminal
// ones park it as failed.
func (r *Repo) MarkFailed(ctx context.Context, id uuid.UUID, reason string, terminal bool) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update := qb.Update("outbox_events").
		Set("retries", squirrel.Expr("retries + 1")).
		Set("last_error", reason).
		Where(squirrel.Eq{"id": id})
	if terminal {
		update = update.Set("status", domain.OutboxStatusFailed.String())
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return mapError(err, id)
	}

	return nil
}
