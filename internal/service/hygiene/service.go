// Package hygiene implements board hygiene jobs: queueing stuck-card
// detection and reading back the resulting report.
package hygiene

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hexbolt/taskboard-backend/internal/config"
	"github.com/hexbolt/taskboard-backend/internal/domain"
)

type boardRepo interface {
	GetByID(ctx context.Context, orgID, boardID uuid.UUID) (*domain.Board, error)
}

type reportRepo interface {
	GetByBoardID(ctx context.Context, orgID, boardID uuid.UUID) (*domain.StuckCardReport, error)
	Upsert(ctx context.Context, report *domain.StuckCardReport) error
}

type outboxRepo interface {
	Append(ctx context.Context, ev *domain.OutboxEvent) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the hygiene business logic.
type Service struct {
	log     *slog.Logger
	cfg     config.HygieneConfig
	boards  boardRepo
	reports reportRepo
	outbox  outboxRepo
	tx      txManager
	now     func() time.Time
}

// NewService creates a new Hygiene service.
func NewService(
	logger *slog.Logger,
	cfg config.HygieneConfig,
	boards boardRepo,
	reports reportRepo,
	outbox outboxRepo,
	tx txManager,
) *Service {
	return &Service{
		log:     logger.With("service", "hygiene"),
		cfg:     cfg,
		boards:  boards,
		reports: reports,
		outbox:  outbox,
		tx:      tx,
		now:     time.Now,
	}
}
