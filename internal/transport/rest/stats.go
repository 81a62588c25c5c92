package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/habitflow-backend/internal/service/stats"
)

type statsService interface {
	Overview(ctx context.Context, days int) (*stats.Overview, error)
	Calendar(ctx context.Context, input stats.CalendarInput) (*stats.Calendar, error)
}

// StatsHandler serves /api/stats.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

// Overview handles GET /api/stats/overview?days.
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	days := q.queryInt("days")
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}

	o, err := h.svc.Overview(r.Context(), days)
	if err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}
	writeData(w, http.StatusOK, toOverviewResponse(o), "")
}

// Calendar handles GET /api/stats/calendar?month=YYYY-MM&habitId.
func (h *StatsHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	input := stats.CalendarInput{
		Month:   r.URL.Query().Get("month"),
		HabitID: q.queryUUID("habitId"),
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}

	c, err := h.svc.Calendar(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}
	writeData(w, http.StatusOK, toCalendarResponse(c), "")
}
