package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hexbolt/taskboard-backend/internal/adapter/anthropic"
	"github.com/hexbolt/taskboard-backend/internal/adapter/postgres"
	cardrepo "github.com/hexbolt/taskboard-backend/internal/adapter/postgres/card"
	coverrepo "github.com/hexbolt/taskboard-backend/internal/adapter/postgres/cover"
	outboxrepo "github.com/hexbolt/taskboard-backend/internal/adapter/postgres/outbox"
	reportrepo "github.com/hexbolt/taskboard-backend/internal/adapter/postgres/report"
	retrieverrepo "github.com/hexbolt/taskboard-backend/internal/adapter/postgres/retriever"
	summaryrepo "github.com/hexbolt/taskboard-backend/internal/adapter/postgres/summary"
	"github.com/hexbolt/taskboard-backend/internal/config"
	"github.com/hexbolt/taskboard-backend/internal/domain"
	"github.com/hexbolt/taskboard-backend/internal/worker"
)

// RunWorker is the outbox worker entry point. It polls pending events
// and routes each to its handler until the context is canceled.
func RunWorker(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting outbox worker",
		slog.String("version", BuildVersion()),
		slog.Duration("poll_interval", cfg.Worker.PollInterval),
		slog.Int("batch_size", cfg.Worker.BatchSize),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	tx := postgres.NewTxManager(pool)
	cards := cardrepo.New(pool)
	covers := coverrepo.New(pool)
	summaries := summaryrepo.New(pool)
	outbox := outboxrepo.New(pool)
	reports := reportrepo.New(pool)
	retriever := retrieverrepo.New(pool)

	model := anthropic.New(cfg.AI)

	dispatcher := worker.NewDispatcher(logger, cfg.Worker, outbox, tx)
	dispatcher.Register(domain.EventBoardCreated, func(ctx context.Context, ev domain.OutboxEvent) error {
		logger.InfoContext(ctx, "board created", slog.String("board_id", ev.BoardID.String()))
		return nil
	})
	dispatcher.Register(domain.EventCardCreated,
		worker.NewSummarizer(logger, cards, retriever, summaries, model, cfg.AI.Model).Handle)

	stuckDetector := worker.NewStuckDetector(logger, cards, reports)
	dispatcher.Register(domain.EventDetectStuckRequested, stuckDetector.Handle)
	dispatcher.RegisterFailure(domain.EventDetectStuckRequested, stuckDetector.Failed)

	coverSpec := worker.NewCoverSpecHandler(logger, cards, covers, outbox, model)
	dispatcher.Register(domain.EventCoverSpecRequested, coverSpec.Handle)
	dispatcher.RegisterFailure(domain.EventCoverSpecRequested, coverSpec.Failed)

	coverRender := worker.NewCoverRenderHandler(logger, covers)
	dispatcher.Register(domain.EventCoverRenderRequested, coverRender.Handle)
	dispatcher.RegisterFailure(domain.EventCoverRenderRequested, coverRender.Failed)

	if err := dispatcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info("worker stopped")
	return nil
}
