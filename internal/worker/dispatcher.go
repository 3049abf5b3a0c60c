// Package worker drains the outbox and runs the async jobs it carries:
// stuck-card detection, card summarization, and cover generation.
// Delivery is at least once; every handler tolerates redelivery.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hexbolt/taskboard-backend/internal/config"
	"github.com/hexbolt/taskboard-backend/internal/domain"
)

type outboxRepo interface {
	FetchPending(ctx context.Context, limit int) ([]domain.OutboxEvent, error)
	MarkProcessed(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string, terminal bool) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Handler processes one outbox event. Returning an error retries the
// event until the retry budget runs out.
type Handler func(ctx context.Context, ev domain.OutboxEvent) error

// FailureHandler runs when an event exhausts its retry budget, so the
// job record tracking it can be parked as failed instead of staying
// queued forever. It shares the batch transaction with the failing
// dispatch.
type FailureHandler func(ctx context.Context, ev domain.OutboxEvent, cause error) error

// Dispatcher polls the outbox and routes pending events to the handler
// registered for their type. Each batch is claimed with row locks
// inside a transaction, so multiple dispatcher instances can run
// against the same outbox without double-processing live events.
type Dispatcher struct {
	log       *slog.Logger
	cfg       config.WorkerConfig
	outbox    outboxRepo
	tx        txManager
	handlers  map[domain.EventType]Handler
	onFailure map[domain.EventType]FailureHandler
	now       func() time.Time
}

// NewDispatcher creates a dispatcher with no handlers registered.
func NewDispatcher(logger *slog.Logger, cfg config.WorkerConfig, outbox outboxRepo, tx txManager) *Dispatcher {
	return &Dispatcher{
		log:       logger.With("service", "worker"),
		cfg:       cfg,
		outbox:    outbox,
		tx:        tx,
		handlers:  make(map[domain.EventType]Handler),
		onFailure: make(map[domain.EventType]FailureHandler),
		now:       time.Now,
	}
}

// Register binds a handler to an event type, replacing any previous one.
func (d *Dispatcher) Register(t domain.EventType, h Handler) {
	d.handlers[t] = h
}

// RegisterFailure binds a terminal-failure handler to an event type,
// replacing any previous one.
func (d *Dispatcher) RegisterFailure(t domain.EventType, h FailureHandler) {
	d.onFailure[t] = h
}

// Run polls the outbox until the context is canceled. Each tick drains
// full batches until the outbox is empty; a failing batch backs off
// until the next tick.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.log.InfoContext(ctx, "dispatcher started",
		slog.Duration("poll_interval", d.cfg.PollInterval),
		slog.Int("batch_size", d.cfg.BatchSize),
	)

	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.log.InfoContext(ctx, "dispatcher stopped")
			return ctx.Err()
		case <-ticker.C:
			for {
				n, err := d.processBatch(ctx)
				if err != nil {
					d.log.ErrorContext(ctx, "batch failed", slog.Any("error", err))
					break
				}
				if n < d.cfg.BatchSize {
					break
				}
			}
		}
	}
}

// processBatch claims one batch of pending events and processes each in
// turn. The claim, the handler's writes, and the status flip share one
// transaction per batch.
func (d *Dispatcher) processBatch(ctx context.Context) (int, error) {
	var processed int

	err := d.tx.RunInTx(ctx, func(txCtx context.Context) error {
		events, err := d.outbox.FetchPending(txCtx, d.cfg.BatchSize)
		if err != nil {
			return fmt.Errorf("fetch pending: %w", err)
		}

		for _, ev := range events {
			if err := d.dispatch(txCtx, ev); err != nil {
				return err
			}
			processed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return processed, nil
}

// dispatch routes one event. Handler failures are recorded on the
// event, not returned: a poison event must not wedge its batch.
func (d *Dispatcher) dispatch(ctx context.Context, ev domain.OutboxEvent) error {
	log := d.log.With(
		slog.String("event_id", ev.ID.String()),
		slog.String("event_type", ev.Type.String()),
	)

	handler, ok := d.handlers[ev.Type]
	if !ok {
		// Unknown types are acknowledged so they cannot clog the queue.
		log.WarnContext(ctx, "no handler registered, acknowledging")
		return d.outbox.MarkProcessed(ctx, ev.ID)
	}

	if err := handler(ctx, ev); err != nil {
		terminal := ev.Retries+1 >= d.cfg.MaxRetries
		log.ErrorContext(ctx, "handler failed",
			slog.Any("error", err),
			slog.Int("retries", ev.Retries+1),
			slog.Bool("terminal", terminal),
		)
		if terminal {
			if onFailure, ok := d.onFailure[ev.Type]; ok {
				// A hook failure must not wedge the batch either.
				if hookErr := onFailure(ctx, ev, err); hookErr != nil {
					log.WarnContext(ctx, "failure handler failed", slog.Any("error", hookErr))
				}
			}
		}
		return d.outbox.MarkFailed(ctx, ev.ID, err.Error(), terminal)
	}

	log.DebugContext(ctx, "event processed")
	return d.outbox.MarkProcessed(ctx, ev.ID)
}
