// Package card implements the Card repository using PostgreSQL.
// Update and Move are compare-and-swap writes: the persisted version
// must equal the caller's expected version or the write affects zero
// rows and is reported as a conflict.
package card

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
	return postgres.MapError(err, "card", id)
}

const columns = "id, list_id, board_id, org_id, title, description, position, version, created_at, updated_at"

type cardRow struct {
	ID          uuid.UUID `db:"id"`
	ListID      uuid.UUID `db:"list_id"`
	BoardID     uuid.UUID `db:"board_id"`
	OrgID       uuid.UUID `db:"org_id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	Position    float64   `db:"position"`
	Version     int64     `db:"version"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r cardRow) toDomain() *domain.Card {
	return &domain.Card{
		ID:          r.ID,
		ListID:      r.ListID,
		BoardID:     r.BoardID,
		OrgID:       r.OrgID,
		Title:       r.Title,
		Description: r.Description,
		Position:    r.Position,
		Version:     r.Version,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new card repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a card scoped to the caller's org.
// Returns domain.ErrNotFound for absent and cross-org cards alike.
func (r *Repo) GetByID(ctx context.Context, orgID, cardID uuid.UUID) (*domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(columns).
		From("cards").
		Where(squirrel.Eq{"id": cardID, "org_id": orgID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row cardRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("card %s: %w", cardID, domain.ErrNotFound)
		}
		return nil, mapError(err, cardID)
	}

	return row.toDomain(), nil
}

// ListByList returns the list's cards in position order.
func (r *Repo) ListByList(ctx context.Context, listID uuid.UUID) ([]*domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(columns).
		From("cards").
		Where(squirrel.Eq{"list_id": listID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []cardRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	cards := make([]*domain.Card, len(rows))
	for i, row := range rows {
		cards[i] = row.toDomain()
	}

	return cards, nil
}

// Positions returns the ascending positions of the list's cards.
func (r *Repo) Positions(ctx context.Context, listID uuid.UUID) ([]float64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select("position").
		From("cards").
		Where(squirrel.Eq{"list_id": listID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var positions []float64
	if err := pgxscan.Select(ctx, q, &positions, sql, args...); err != nil {
		return nil, fmt.Errorf("card positions: %w", err)
	}

	return positions, nil
}

// ListStale returns the board's cards not touched since the cutoff,
// in ascending updated_at order (most stuck first).
func (r *Repo) ListStale(ctx context.Context, boardID uuid.UUID, cutoff time.Time) ([]*domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(columns).
		From("cards").
		Where(squirrel.Eq{"board_id": boardID}).
		Where(squirrel.Lt{"updated_at": cutoff}).
		OrderBy("updated_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []cardRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list stale cards: %w", err)
	}

	cards := make([]*domain.Card, len(rows))
	for i, row := range rows {
		cards[i] = row.toDomain()
	}

	return cards, nil
}

// Create inserts a new card and returns the persisted domain.Card.
func (r *Repo) Create(ctx context.Context, c *domain.Card) (*domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Insert("cards").
		Columns("id", "list_id", "board_id", "org_id", "title", "description", "position", "version", "created_at", "updated_at").
		Values(c.ID, c.ListID, c.BoardID, c.OrgID, c.Title, c.Description, c.Position, c.Version, c.CreatedAt, c.UpdatedAt).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row cardRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, mapError(err, c.ID)
	}

	return row.toDomain(), nil
}

// Update applies content changes if and only if the persisted version
// equals expectedVersion; the version then increments by exactly one.
// Zero affected rows is disambiguated into domain.ErrConflict (card
// exists at another version) or domain.ErrNotFound.
func (r *Repo) Update(ctx context.Context, orgID, cardID uuid.UUID, params domain.CardUpdateParams, expectedVersion int64, now time.Time) (*domain.Card, error) {
	update := qb.Update("cards").
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": cardID, "org_id": orgID, "version": expectedVersion}).
		Suffix("RETURNING " + columns)

	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.Description != nil {
		update = update.Set("description", *params.Description)
	}

	return r.casWrite(ctx, update, orgID, cardID)
}

// Move reassigns the card's list and position if and only if the
// persisted version equals expectedVersion. The position is persisted
// verbatim; the destination list's validity is the caller's concern.
func (r *Repo) Move(ctx context.Context, orgID, cardID, toListID uuid.UUID, position float64, expectedVersion int64, now time.Time) (*domain.Card, error) {
	update := qb.Update("cards").
		Set("list_id", toListID).
		Set("position", position).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": cardID, "org_id": orgID, "version": expectedVersion}).
		Suffix("RETURNING " + columns)

	return r.casWrite(ctx, update, orgID, cardID)
}

func (r *Repo) casWrite(ctx context.Context, update squirrel.UpdateBuilder, orgID, cardID uuid.UUID) (*domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row cardRow
	err = pgxscan.Get(ctx, q, &row, sql, args...)
	if err == nil {
		return row.toDomain(), nil
	}
	if !pgxscan.NotFound(err) {
		return nil, mapError(err, cardID)
	}

	// Zero rows: stale version or missing card.
	existsSQL, existsArgs, err := qb.Select("1").
		From("cards").
		Where(squirrel.Eq{"id": cardID, "org_id": orgID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var one int
	switch err := pgxscan.Get(ctx, q, &one, existsSQL, existsArgs...); {
	case err == nil:
		return nil, fmt.Errorf("card %s: version mismatch: %w", cardID, domain.ErrConflict)
	case pgxscan.NotFound(err):
		return nil, fmt.Errorf("card %s: %w", cardID, domain.ErrNotFound)
	default:
		return nil, mapError(err, cardID)
	}
}
