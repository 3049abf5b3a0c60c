// Package kanban implements the board mutation and query business
// logic: boards, lists, cards, fractional positioning, and the outbox
// events that ride in the same transaction as every mutation.
package kanban

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hexbolt/taskboard-backend/internal/auth"
	"github.com/hexbolt/taskboard-backend/internal/domain"
	"github.com/hexbolt/taskboard-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Constants
// ---------------------------------------------------------------------------

const (
	MaxTitleLen       = 200
	MaxDescriptionLen = 5000
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type boardRepo interface {
	GetByID(ctx context.Context, orgID, boardID uuid.UUID) (*domain.Board, error)
	Create(ctx context.Context, b *domain.Board) (*domain.Board, error)
}

type listRepo interface {
	GetByID(ctx context.Context, orgID, listID uuid.UUID) (*domain.List, error)
	ListByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.List, error)
	Positions(ctx context.Context, boardID uuid.UUID) ([]float64, error)
	Create(ctx context.Context, l *domain.List) (*domain.List, error)
}

type cardRepo interface {
	GetByID(ctx context.Context, orgID, cardID uuid.UUID) (*domain.Card, error)
	ListByList(ctx context.Context, listID uuid.UUID) ([]*domain.Card, error)
	Positions(ctx context.Context, listID uuid.UUID) ([]float64, error)
	Create(ctx context.Context, c *domain.Card) (*domain.Card, error)
	Update(ctx context.Context, orgID, cardID uuid.UUID, params domain.CardUpdateParams, expectedVersion int64, now time.Time) (*domain.Card, error)
	Move(ctx context.Context, orgID, cardID, toListID uuid.UUID, position float64, expectedVersion int64, now time.Time) (*domain.Card, error)
}

type coverRepo interface {
	GetByCardID(ctx context.Context, orgID, cardID uuid.UUID) (*domain.CardCover, error)
	UpsertQueued(ctx context.Context, cardID, orgID, jobID uuid.UUID, now time.Time) error
}

type summaryRepo interface {
	GetByCardID(ctx context.Context, orgID, cardID uuid.UUID) (*domain.CardSummary, error)
}

type outboxRepo interface {
	Append(ctx context.Context, ev *domain.OutboxEvent) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the kanban business logic.
type Service struct {
	log       *slog.Logger
	boards    boardRepo
	lists     listRepo
	cards     cardRepo
	covers    coverRepo
	summaries summaryRepo
	outbox    outboxRepo
	tx        txManager
	now       func() time.Time
}

// NewService creates a new Kanban service.
func NewService(
	logger *slog.Logger,
	boards boardRepo,
	lists listRepo,
	cards cardRepo,
	covers coverRepo,
	summaries summaryRepo,
	outbox outboxRepo,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "kanban"),
		boards:    boards,
		lists:     lists,
		cards:     cards,
		covers:    covers,
		summaries: summaries,
		outbox:    outbox,
		tx:        tx,
		now:       time.Now,
	}
}

// ---------------------------------------------------------------------------
// Authorization helpers (private)
// ---------------------------------------------------------------------------

// writer returns the caller's identity if it is allowed to mutate board
// state. The role gate runs before any repository access so a viewer
// never learns whether the target exists.
func writer(ctx context.Context) (auth.Identity, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return auth.Identity{}, domain.ErrUnauthorized
	}
	if !identity.Role.CanWrite() {
		return auth.Identity{}, domain.ErrForbidden
	}
	return identity, nil
}

// reader returns the caller's identity for read-only operations. Reads
// are open to every role; org scoping still applies downstream.
func reader(ctx context.Context) (auth.Identity, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return auth.Identity{}, domain.ErrUnauthorized
	}
	return identity, nil
}
