// Package board implements the Board repository using PostgreSQL.
package board

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
	return postgres.MapError(err, "board", id)
}

const columns = "id, org_id, title, version, created_at, updated_at"

type boardRow struct {
	ID        uuid.UUID `db:"id"`
	OrgID     uuid.UUID `db:"org_id"`
	Title     string    `db:"title"`
	Version   int64     `db:"version"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r boardRow) toDomain() *domain.Board {
	return &domain.Board{
		ID:        r.ID,
		OrgID:     r.OrgID,
		Title:     r.Title,
		Version:   r.Version,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Repo provides board persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new board repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a board scoped to the caller's org.
// Returns domain.ErrNotFound if the board does not exist or belongs to
// another org — cross-org existence is never revealed.
func (r *Repo) GetByID(ctx context.Context, orgID, boardID uuid.UUID) (*domain.Board, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(columns).
		From("boards").
		Where(squirrel.Eq{"id": boardID, "org_id": orgID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row boardRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("board %s: %w", boardID, domain.ErrNotFound)
		}
		return nil, mapError(err, boardID)
	}

	return row.toDomain(), nil
}

// Create inserts a new board and returns the persisted domain.Board.
func (r *Repo) Create(ctx context.Context, b *domain.Board) (*domain.Board, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Insert("boards").
		Columns("id", "org_id", "title", "version", "created_at", "updated_at").
		Values(b.ID, b.OrgID, b.Title, b.Version, b.CreatedAt, b.UpdatedAt).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row boardRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, mapError(err, b.ID)
	}

	return row.toDomain(), nil
}
