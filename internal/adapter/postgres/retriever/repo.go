// Package retriever produces ranked context chunks for AI answers.
// Retrieval here is deliberately simple: sibling cards of the same
// board, most recently touched first. Rank order matters downstream —
// the grounding fallback cites the top chunks.
package retriever

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

type chunkRow struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Repo retrieves context chunks from board cards.
type Repo struct {
	db postgres.Querier
}

// New creates a new retriever.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Chunks returns up to limit citable chunks for a board, excluding the
// subject card itself, ranked most recently updated first.
func (r *Repo) Chunks(ctx context.Context, boardID, excludeCardID uuid.UUID, limit int) ([]domain.RetrievedChunk, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select("id", "title", "description", "updated_at").
		From("cards").
		Where(squirrel.Eq{"board_id": boardID}).
		Where(squirrel.NotEq{"id": excludeCardID}).
		OrderBy("updated_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []chunkRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("retrieve chunks: %w", err)
	}

	chunks := make([]domain.RetrievedChunk, len(rows))
	for i, row := range rows {
		excerpt := row.Title
		if row.Description != nil && *row.Description != "" {
			excerpt = row.Title + ": " + *row.Description
		}
		chunks[i] = domain.RetrievedChunk{
			ChunkID:    row.ID.String(),
			SourceType: "card",
			SourceID:   row.ID.String(),
			Excerpt:    excerpt,
		}
	}

	return chunks, nil
}
