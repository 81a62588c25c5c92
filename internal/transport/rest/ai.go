package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/internal/service/suggestion"
)

type suggestionService interface {
	Suggestions(ctx context.Context) ([]domain.Suggestion, error)
	Insights(ctx context.Context, req domain.InsightRequest) ([]domain.Insight, error)
	HabitMotivation(ctx context.Context, habitID uuid.UUID) (*suggestion.Motivation, error)
	Status(ctx context.Context) suggestion.Status
}

// AIHandler serves /api/ai.
type AIHandler struct {
	svc suggestionService
	log *slog.Logger
}

// NewAIHandler creates an AIHandler.
func NewAIHandler(svc suggestionService, logger *slog.Logger) *AIHandler {
	return &AIHandler{svc: svc, log: logger.With("handler", "ai")}
}

// Suggestions handles POST /api/ai/suggestions.
func (h *AIHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Suggestions(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}
	out := make([]suggestionResponse, len(items))
	for i, s := range items {
		out[i] = suggestionResponse(s)
	}
	writeList(w, http.StatusOK, out, "")
}

// Insights handles POST /api/ai/insights with body {timeframe, analysisType}.
func (h *AIHandler) Insights(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Timeframe    domain.Timeframe    `json:"timeframe"`
		AnalysisType domain.AnalysisType `json:"analysisType"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	items, err := h.svc.Insights(r.Context(), domain.InsightRequest{
		Timeframe:    req.Timeframe,
		AnalysisType: req.AnalysisType,
	})
	if err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}
	out := make([]insightResponse, len(items))
	for i, in := range items {
		out[i] = insightResponse(in)
	}
	writeList(w, http.StatusOK, out, "")
}

// Motivation handles POST /api/ai/motivation with body {habitId}.
func (h *AIHandler) Motivation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		HabitID uuid.UUID `json:"habitId"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	m, err := h.svc.HabitMotivation(r.Context(), req.HabitID)
	if err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}
	writeData(w, http.StatusOK, motivationResponse(*m), "")
}

// Status handles GET /api/ai/status.
func (h *AIHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, toAIStatusResponse(h.svc.Status(r.Context())), "")
}
