package kanban

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/hexbolt/taskboard-backend/internal/domain"
)

// CreateBoard creates an empty board owned by the caller's org and
// records a board.created event in the same transaction.
func (s *Service) CreateBoard(ctx context.Context, input CreateBoardInput) (*domain.Board, error) {
	identity, err := writer(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	board := &domain.Board{
		ID:        uuid.New(),
		OrgID:     identity.OrgID,
		Title:     strings.TrimSpace(input.Title),
		Version:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var created *domain.Board

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err = s.boards.Create(txCtx, board)
		if err != nil {
			return fmt.Errorf("create board: %w", err)
		}

		ev := domain.NewOutboxEvent(uuid.New(), domain.EventBoardCreated, identity.OrgID, created.ID,
			domain.BoardEventPayload{BoardID: created.ID, Title: created.Title}, now)
		if err := s.outbox.Append(txCtx, ev); err != nil {
			return fmt.Errorf("append outbox event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "board created",
		slog.String("org_id", identity.OrgID.String()),
		slog.String("board_id", created.ID.String()),
	)

	return created, nil
}
