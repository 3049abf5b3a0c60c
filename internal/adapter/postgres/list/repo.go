// Package list implements the List repository using PostgreSQL.
package list

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
	return postgres.MapError(err, "list", id)
}

const columns = "id, board_id, org_id, title, position, created_at, updated_at"

type listRow struct {
	ID        uuid.UUID `db:"id"`
	BoardID   uuid.UUID `db:"board_id"`
	OrgID     uuid.UUID `db:"org_id"`
	Title     string    `db:"title"`
	Position  float64   `db:"position"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r listRow) toDomain() *domain.List {
	return &domain.List{
		ID:        r.ID,
		BoardID:   r.BoardID,
		OrgID:     r.OrgID,
		Title:     r.Title,
		Position:  r.Position,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Repo provides list persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new list repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a list scoped to the caller's org.
// Returns domain.ErrNotFound for absent and cross-org lists alike.
func (r *Repo) GetByID(ctx context.Context, orgID, listID uuid.UUID) (*domain.List, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(columns).
		From("lists").
		Where(squirrel.Eq{"id": listID, "org_id": orgID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row listRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("list %s: %w", listID, domain.ErrNotFound)
		}
		return nil, mapError(err, listID)
	}

	return row.toDomain(), nil
}

// ListByBoard returns the board's lists in position order.
// Returns an empty slice (not nil) when the board has no lists.
func (r *Repo) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.List, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(columns).
		From("lists").
		Where(squirrel.Eq{"board_id": boardID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []listRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}

	lists := make([]*domain.List, len(rows))
	for i, row := range rows {
		lists[i] = row.toDomain()
	}

	return lists, nil
}

// Positions returns the ascending positions of the board's lists.
func (r *Repo) Positions(ctx context.Context, boardID uuid.UUID) ([]float64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select("position").
		From("lists").
		Where(squirrel.Eq{"board_id": boardID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var positions []float64
	if err := pgxscan.Select(ctx, q, &positions, sql, args...); err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}

	return positions, nil
}

// Create inserts a new list and returns the persisted domain.List.
func (r *Repo) Create(ctx context.Context, l *domain.List) (*domain.List, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Insert("lists").
		Columns("id", "board_id", "org_id", "title", "position", "created_at", "updated_at").
		Values(l.ID, l.BoardID, l.OrgID, l.Title, l.Position, l.CreatedAt, l.UpdatedAt).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row listRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, mapError(err, l.ID)
	}

	return row.toDomain(), nil
}
