package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hexbolt/taskboard-backend/internal/domain"
	"github.com/hexbolt/taskboard-backend/internal/service/answer"
)

// retrieveLimit caps how many sibling chunks feed one summary.
const retrieveLimit = 8

type cardGetter interface {
	GetByID(ctx context.Context, orgID, cardID uuid.UUID) (*domain.Card, error)
}

type retrieverRepo interface {
	Chunks(ctx context.Context, boardID, excludeCardID uuid.UUID, limit int) ([]domain.RetrievedChunk, error)
}

type summaryRepo interface {
	JobSeen(ctx context.Context, jobID uuid.UUID) (bool, error)
	Upsert(ctx context.Context, s *domain.CardSummary) error
}

type answerGenerator interface {
	GenerateAnswer(ctx context.Context, cardTitle string, chunks []domain.RetrievedChunk) (*domain.ModelAnswer, error)
}

// Summarizer handles card.created events: it retrieves the card's
// board context, asks the model for a summary, and persists it with
// grounded citations only. A job id that already produced a summary is
// skipped, so redelivery never burns a second model call.
type Summarizer struct {
	log       *slog.Logger
	cards     cardGetter
	retriever retrieverRepo
	summaries summaryRepo
	generator answerGenerator
	modelName string
	now       func() time.Time
}

// NewSummarizer creates the card summarization handler.
func NewSummarizer(
	logger *slog.Logger,
	cards cardGetter,
	retriever retrieverRepo,
	summaries summaryRepo,
	generator answerGenerator,
	modelName string,
) *Summarizer {
	return &Summarizer{
		log:       logger.With("handler", "summarize"),
		cards:     cards,
		retriever: retriever,
		summaries: summaries,
		generator: generator,
		modelName: modelName,
		now:       time.Now,
	}
}

// Handle implements Handler for card.created.
func (h *Summarizer) Handle(ctx context.Context, ev domain.OutboxEvent) error {
	var payload domain.CardEventPayload
	if err := json.Unmarshal(ev.Payload, &payload); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	seen, err := h.summaries.JobSeen(ctx, ev.ID)
	if err != nil {
		return fmt.Errorf("check job: %w", err)
	}
	if seen {
		h.log.DebugContext(ctx, "job already summarized, skipping",
			slog.String("job_id", ev.ID.String()))
		return nil
	}

	card, err := h.cards.GetByID(ctx, ev.OrgID, payload.CardID)
	if err != nil {
		return fmt.Errorf("load card: %w", err)
	}

	chunks, err := h.retriever.Chunks(ctx, payload.BoardID, payload.CardID, retrieveLimit)
	if err != nil {
		return fmt.Errorf("retrieve context: %w", err)
	}

	model, err := h.generator.GenerateAnswer(ctx, card.Title, chunks)
	if err != nil {
		return fmt.Errorf("generate answer: %w", err)
	}

	grounded, err := answer.Ground(model, chunks)
	if err != nil {
		return fmt.Errorf("ground answer: %w", err)
	}

	summary := &domain.CardSummary{
		CardID:    card.ID,
		OrgID:     ev.OrgID,
		JobID:     ev.ID,
		Summary:   grounded.Text,
		Citations: grounded.References,
		Model:     h.modelName,
		UpdatedAt: h.now().UTC(),
	}
	if err := h.summaries.Upsert(ctx, summary); err != nil {
		return fmt.Errorf("store summary: %w", err)
	}

	h.log.DebugContext(ctx, "card summarized",
		slog.String("card_id", card.ID.String()),
		slog.Int("references", len(grounded.References)),
	)

	return nil
}
