package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hexbolt/taskboard-backend/internal/domain"
	"github.com/hexbolt/taskboard-backend/internal/service/kanban"
)

// cardService defines the minimal interface needed by CardHandler.
type cardService interface {
	CreateCard(ctx context.Context, input kanban.CreateCardInput) (*domain.Card, error)
	UpdateCard(ctx context.Context, input kanban.UpdateCardInput) (*domain.Card, error)
	MoveCard(ctx context.Context, input kanban.MoveCardInput) (*domain.Card, error)
	QueueCoverGeneration(ctx context.Context, input kanban.QueueCoverInput) (*domain.JobAccepted, error)
	GetCardSummary(ctx context.Context, cardID uuid.UUID) (*domain.CardSummary, error)
	GetCardCover(ctx context.Context, cardID uuid.UUID) (*domain.CardCover, error)
}

// CardHandler serves card REST endpoints.
type CardHandler struct {
	svc cardService
	log *slog.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(svc cardService, logger *slog.Logger) *CardHandler {
	return &CardHandler{svc: svc, log: logger.With("handler", "card")}
}

type createCardRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

type updateCardRequest struct {
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	ExpectedVersion int64   `json:"expectedVersion"`
}

type moveCardRequest struct {
	ToListID        uuid.UUID `json:"toListId"`
	Position        float64   `json:"position"`
	ExpectedVersion int64     `json:"expectedVersion"`
}

type cardResponse struct {
	ID          string    `json:"id"`
	ListID      string    `json:"listId"`
	BoardID     string    `json:"boardId"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Position    float64   `json:"position"`
	Version     int64     `json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type summaryResponse struct {
	CardID    string             `json:"cardId"`
	Summary   string             `json:"summary"`
	Citations []domain.Reference `json:"citations"`
	Model     string             `json:"model"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

type coverResponse struct {
	CardID    string            `json:"cardId"`
	Status    string            `json:"status"`
	Spec      *domain.CoverSpec `json:"spec,omitempty"`
	SVG       *string           `json:"svg,omitempty"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// Create handles POST /lists/{listID}/cards.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	listID, err := pathUUID(r, "listID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := h.svc.CreateCard(r.Context(), kanban.CreateCardInput{
		ListID:      listID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCardResponse(card))
}

// Update handles PATCH /cards/{cardID}.
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathUUID(r, "cardID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := h.svc.UpdateCard(r.Context(), kanban.UpdateCardInput{
		CardID:          cardID,
		ExpectedVersion: req.ExpectedVersion,
		Title:           req.Title,
		Description:     req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(card))
}

// Move handles POST /cards/{cardID}/move.
func (h *CardHandler) Move(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathUUID(r, "cardID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req moveCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := h.svc.MoveCard(r.Context(), kanban.MoveCardInput{
		CardID:          cardID,
		ToListID:        req.ToListID,
		Position:        req.Position,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(card))
}

// QueueCover handles POST /cards/{cardID}/cover.
func (h *CardHandler) QueueCover(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathUUID(r, "cardID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	job, err := h.svc.QueueCoverGeneration(r.Context(), kanban.QueueCoverInput{
		CardID: cardID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusAccepted, job)
}

// GetSummary handles GET /cards/{cardID}/summary.
func (h *CardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathUUID(r, "cardID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	summary, err := h.svc.GetCardSummary(r.Context(), cardID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		CardID:    summary.CardID.String(),
		Summary:   summary.Summary,
		Citations: summary.Citations,
		Model:     summary.Model,
		UpdatedAt: summary.UpdatedAt,
	})
}

// GetCover handles GET /cards/{cardID}/cover.
func (h *CardHandler) GetCover(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathUUID(r, "cardID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	cover, err := h.svc.GetCardCover(r.Context(), cardID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, coverResponse{
		CardID:    cover.CardID.String(),
		Status:    cover.Status.String(),
		Spec:      cover.Spec,
		SVG:       cover.SVG,
		UpdatedAt: cover.UpdatedAt,
	})
}

func toCardResponse(c *domain.Card) cardResponse {
	return cardResponse{
		ID:          c.ID.String(),
		ListID:      c.ListID.String(),
		BoardID:     c.BoardID.String(),
		Title:       c.Title,
		Description: c.Description,
		Position:    c.Position,
		Version:     c.Version,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
