package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hexbolt/taskboard-backend/internal/domain"
)

type coverRepo interface {
	SetSpec(ctx context.Context, cardID, jobID uuid.UUID, spec *domain.CoverSpec, now time.Time) error
	SetSVG(ctx context.Context, cardID, jobID uuid.UUID, svg string, now time.Time) error
	Fail(ctx context.Context, cardID, jobID uuid.UUID, now time.Time) error
}

type outboxAppender interface {
	Append(ctx context.Context, ev *domain.OutboxEvent) error
}

type specGenerator interface {
	GenerateCoverSpec(ctx context.Context, cardTitle string, cardDescription string) (*domain.CoverSpec, error)
}

// CoverSpecHandler handles cover.generate-spec.requested: it asks the
// model for a cover spec, stores it, and chains a render event carrying
// the same job id. The spec write is guarded by job id, so a stale
// event for a requeued cover is a no-op.
type CoverSpecHandler struct {
	log       *slog.Logger
	cards     cardGetter
	covers    coverRepo
	outbox    outboxAppender
	generator specGenerator
	now       func() time.Time
}

// NewCoverSpecHandler creates the cover spec handler.
func NewCoverSpecHandler(
	logger *slog.Logger,
	cards cardGetter,
	covers coverRepo,
	outbox outboxAppender,
	generator specGenerator,
) *CoverSpecHandler {
	return &CoverSpecHandler{
		log:       logger.With("handler", "cover-spec"),
		cards:     cards,
		covers:    covers,
		outbox:    outbox,
		generator: generator,
		now:       time.Now,
	}
}

// Handle implements Handler for cover.generate-spec.requested.
func (h *CoverSpecHandler) Handle(ctx context.Context, ev domain.OutboxEvent) error {
	var payload domain.CardEventPayload
	if err := json.Unmarshal(ev.Payload, &payload); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	card, err := h.cards.GetByID(ctx, ev.OrgID, payload.CardID)
	if err != nil {
		return fmt.Errorf("load card: %w", err)
	}

	var description string
	if card.Description != nil {
		description = *card.Description
	}

	spec, err := h.generator.GenerateCoverSpec(ctx, card.Title, description)
	if err != nil {
		return fmt.Errorf("generate cover spec: %w", err)
	}

	now := h.now().UTC()
	if err := h.covers.SetSpec(ctx, card.ID, ev.ID, spec, now); err != nil {
		return fmt.Errorf("store cover spec: %w", err)
	}

	render := domain.NewOutboxEvent(uuid.New(), domain.EventCoverRenderRequested, ev.OrgID, payload.BoardID,
		domain.CoverRenderPayload{CardID: card.ID, BoardID: payload.BoardID, JobID: ev.ID}, now)
	if err := h.outbox.Append(ctx, render); err != nil {
		return fmt.Errorf("append render event: %w", err)
	}

	h.log.DebugContext(ctx, "cover spec stored",
		slog.String("card_id", card.ID.String()),
		slog.String("job_id", ev.ID.String()),
	)

	return nil
}

// Failed implements FailureHandler for cover.generate-spec.requested:
// when the event exhausts its retry budget the cover job must not stay
// queued forever.
func (h *CoverSpecHandler) Failed(ctx context.Context, ev domain.OutboxEvent, cause error) error {
	var payload domain.CardEventPayload
	if err := json.Unmarshal(ev.Payload, &payload); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	if err := h.covers.Fail(ctx, payload.CardID, ev.ID, h.now().UTC()); err != nil {
		return fmt.Errorf("park cover job: %w", err)
	}

	h.log.WarnContext(ctx, "cover job parked as failed",
		slog.String("card_id", payload.CardID.String()),
		slog.String("job_id", ev.ID.String()),
		slog.Any("cause", cause),
	)

	return nil
}

// CoverRenderHandler handles cover.render.requested: it renders the
// stored spec to SVG deterministically and completes the job. The SVG
// write is guarded by the originating job id.
type CoverRenderHandler struct {
	log    *slog.Logger
	covers coverReader
	now    func() time.Time
}

type coverReader interface {
	GetByCardID(ctx context.Context, orgID, cardID uuid.UUID) (*domain.CardCover, error)
	SetSVG(ctx context.Context, cardID, jobID uuid.UUID, svg string, now time.Time) error
	Fail(ctx context.Context, cardID, jobID uuid.UUID, now time.Time) error
}

// NewCoverRenderHandler creates the cover render handler.
func NewCoverRenderHandler(logger *slog.Logger, covers coverReader) *CoverRenderHandler {
	return &CoverRenderHandler{
		log:    logger.With("handler", "cover-render"),
		covers: covers,
		now:    time.Now,
	}
}

// Handle implements Handler for cover.render.requested.
func (h *CoverRenderHandler) Handle(ctx context.Context, ev domain.OutboxEvent) error {
	var payload domain.CoverRenderPayload
	if err := json.Unmarshal(ev.Payload, &payload); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	cover, err := h.covers.GetByCardID(ctx, ev.OrgID, payload.CardID)
	if err != nil {
		return fmt.Errorf("load cover: %w", err)
	}

	// A requeued cover since this event was written: let it go.
	if cover.JobID != payload.JobID {
		h.log.DebugContext(ctx, "job superseded, skipping",
			slog.String("job_id", payload.JobID.String()))
		return nil
	}
	if cover.Spec == nil {
		return fmt.Errorf("cover %s has no spec to render", payload.CardID)
	}

	svg := RenderCoverSVG(cover.Spec)
	if err := h.covers.SetSVG(ctx, payload.CardID, payload.JobID, svg, h.now().UTC()); err != nil {
		return fmt.Errorf("store svg: %w", err)
	}

	h.log.DebugContext(ctx, "cover rendered",
		slog.String("card_id", payload.CardID.String()),
		slog.String("job_id", payload.JobID.String()),
	)

	return nil
}

// Failed implements FailureHandler for cover.render.requested. The
// Fail write carries the originating job id, so a cover requeued since
// the render was scheduled is untouched.
func (h *CoverRenderHandler) Failed(ctx context.Context, ev domain.OutboxEvent, cause error) error {
	var payload domain.CoverRenderPayload
	if err := json.Unmarshal(ev.Payload, &payload); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	if err := h.covers.Fail(ctx, payload.CardID, payload.JobID, h.now().UTC()); err != nil {
		return fmt.Errorf("park cover job: %w", err)
	}

	h.log.WarnContext(ctx, "cover job parked as failed",
		slog.String("card_id", payload.CardID.String()),
		slog.String("job_id", payload.JobID.String()),
		slog.Any("cause", cause),
	)

	return nil
}
