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

// boardService defines the minimal interface needed by BoardHandler.
type boardService interface {
	CreateBoard(ctx context.Context, input kanban.CreateBoardInput) (*domain.Board, error)
	CreateList(ctx context.Context, input kanban.CreateListInput) (*domain.List, error)
	GetBoard(ctx context.Context, boardID uuid.UUID) (*kanban.BoardView, error)
}

// BoardHandler serves board REST endpoints.
type BoardHandler struct {
	svc boardService
	log *slog.Logger
}

// NewBoardHandler creates a BoardHandler.
func NewBoardHandler(svc boardService, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{svc: svc, log: logger.With("handler", "board")}
}

type createBoardRequest struct {
	Title string `json:"title"`
}

type createListRequest struct {
	Title string `json:"title"`
}

type boardResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type listResponse struct {
	ID        string    `json:"id"`
	BoardID   string    `json:"boardId"`
	Title     string    `json:"title"`
	Position  float64   `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type boardViewResponse struct {
	Board boardResponse      `json:"board"`
	Lists []listViewResponse `json:"lists"`
}

type listViewResponse struct {
	List  listResponse   `json:"list"`
	Cards []cardResponse `json:"cards"`
}

// Create handles POST /boards.
func (h *BoardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	board, err := h.svc.CreateBoard(r.Context(), kanban.CreateBoardInput{
		Title: req.Title,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBoardResponse(board))
}

// Get handles GET /boards/{boardID}.
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathUUID(r, "boardID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	view, err := h.svc.GetBoard(r.Context(), boardID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBoardViewResponse(view))
}

// CreateList handles POST /boards/{boardID}/lists.
func (h *BoardHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathUUID(r, "boardID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req createListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	list, err := h.svc.CreateList(r.Context(), kanban.CreateListInput{
		BoardID: boardID,
		Title:   req.Title,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toListResponse(list))
}

func toBoardResponse(b *domain.Board) boardResponse {
	return boardResponse{
		ID:        b.ID.String(),
		Title:     b.Title,
		Version:   b.Version,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toListResponse(l *domain.List) listResponse {
	return listResponse{
		ID:        l.ID.String(),
		BoardID:   l.BoardID.String(),
		Title:     l.Title,
		Position:  l.Position,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func toBoardViewResponse(view *kanban.BoardView) boardViewResponse {
	lists := make([]listViewResponse, 0, len(view.Lists))
	for _, lv := range view.Lists {
		cards := make([]cardResponse, 0, len(lv.Cards))
		for _, c := range lv.Cards {
			cards = append(cards, toCardResponse(c))
		}
		lists = append(lists, listViewResponse{
			List:  toListResponse(lv.List),
			Cards: cards,
		})
	}
	return boardViewResponse{
		Board: toBoardResponse(view.Board),
		Lists: lists,
	}
}
