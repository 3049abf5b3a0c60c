package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hexbolt/taskboard-backend/internal/domain"
	"github.com/hexbolt/taskboard-backend/internal/service/hygiene"
)

// hygieneService defines the minimal interface needed by HygieneHandler.
type hygieneService interface {
	QueueDetectStuck(ctx context.Context, input hygiene.QueueDetectStuckInput) (*domain.JobAccepted, error)
	GetReport(ctx context.Context, boardID uuid.UUID) (*domain.StuckCardReport, error)
}

// HygieneHandler serves board hygiene REST endpoints.
type HygieneHandler struct {
	svc hygieneService
	log *slog.Logger
}

// NewHygieneHandler creates a HygieneHandler.
func NewHygieneHandler(svc hygieneService, logger *slog.Logger) *HygieneHandler {
	return &HygieneHandler{svc: svc, log: logger.With("handler", "hygiene")}
}

type detectStuckRequest struct {
	ThresholdDays *int `json:"thresholdDays,omitempty"`
}

type reportResponse struct {
	BoardID       string             `json:"boardId"`
	JobID         string             `json:"jobId"`
	Status        string             `json:"status"`
	ThresholdDays int                `json:"thresholdDays"`
	StuckCards    []domain.StuckCard `json:"stuckCards,omitempty"`
	FailureReason *string            `json:"failureReason,omitempty"`
	QueuedAt      time.Time          `json:"queuedAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// DetectStuck handles POST /boards/{boardID}/detect-stuck.
// The body is optional; without one the configured default threshold
// applies.
func (h *HygieneHandler) DetectStuck(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathUUID(r, "boardID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req detectStuckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	job, err := h.svc.QueueDetectStuck(r.Context(), hygiene.QueueDetectStuckInput{
		BoardID:       boardID,
		ThresholdDays: req.ThresholdDays,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusAccepted, job)
}

// Report handles GET /boards/{boardID}/stuck-report.
func (h *HygieneHandler) Report(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathUUID(r, "boardID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	report, err := h.svc.GetReport(r.Context(), boardID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, reportResponse{
		BoardID:       report.BoardID.String(),
		JobID:         report.JobID.String(),
		Status:        report.Status.String(),
		ThresholdDays: report.ThresholdDays,
		StuckCards:    report.StuckCards,
		FailureReason: report.FailureReason,
		QueuedAt:      report.QueuedAt,
		UpdatedAt:     report.UpdatedAt,
	})
}
