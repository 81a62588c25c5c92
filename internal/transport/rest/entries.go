package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/internal/service/entry"
)

type entryService interface {
	UpsertEntry(ctx context.Context, input entry.UpsertEntryInput) (*domain.Entry, error)
	ToggleEntry(ctx context.Context, input entry.EntryKeyInput) (*domain.Entry, error)
	BulkUpsert(ctx context.Context, input entry.BulkUpsertInput) ([]*domain.Entry, error)
	GetEntry(ctx context.Context, input entry.EntryKeyInput) (*domain.Entry, error)
	ListEntries(ctx context.Context, input entry.ListEntriesInput) ([]*domain.Entry, error)
	ListHabitEntries(ctx context.Context, input entry.HabitEntriesInput) ([]*domain.Entry, error)
	Export(ctx context.Context, habitIDs []uuid.UUID) ([]domain.ExportRow, error)
	DeleteEntry(ctx context.Context, input entry.EntryKeyInput) error
	HabitStats(ctx context.Context, input entry.HabitStatsInput) (*entry.HabitStats, error)
}

// EntryHandler serves /api/entries.
type EntryHandler struct {
	svc entryService
	log *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(svc entryService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{svc: svc, log: logger.With("handler", "entries")}
}

type entryRequest struct {
	HabitID   uuid.UUID   `json:"habitId"`
	Date      domain.Date `json:"date"`
	Completed bool        `json:"completed"`
}

func (r entryRequest) input() entry.UpsertEntryInput {
	return entry.UpsertEntryInput{HabitID: r.HabitID, Date: r.Date, Completed: r.Completed}
}

// entryKey reads {habitId} and {date} from the path.
func entryKey(q *queryParser) entry.EntryKeyInput {
	return entry.EntryKeyInput{HabitID: q.pathUUID("habitId"), Date: q.pathDate("date")}
}

// List handles GET /api/entries?habitId or ?startDate&endDate[&habitIds&completed].
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	input := entry.ListEntriesInput{
		HabitID:   q.queryUUID("habitId"),
		StartDate: q.queryDate("startDate"),
		EndDate:   q.queryDate("endDate"),
		Completed: q.queryBool("completed"),
		HabitIDs:  q.queryUUIDs("habitIds"),
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err, "entry")
		return
	}

	entries, err := h.svc.ListEntries(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err, "entry")
		return
	}
	writeList(w, http.StatusOK, toEntryResponses(entries), "")
}

// ListByHabit handles GET /api/entries/habits/{habitId}.
func (h *EntryHandler) ListByHabit(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	input := entry.HabitEntriesInput{
		HabitID:   q.pathUUID("habitId"),
		StartDate: q.queryDate("startDate"),
		EndDate:   q.queryDate("endDate"),
		Completed: q.queryBool("completed"),
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}

	entries, err := h.svc.ListHabitEntries(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}
	writeList(w, http.StatusOK, toEntryResponses(entries), "")
}

// Stats handles GET /api/entries/habits/{habitId}/stats?days.
func (h *EntryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	input := entry.HabitStatsInput{
		HabitID: q.pathUUID("habitId"),
		Days:    q.queryInt("days"),
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}

	st, err := h.svc.HabitStats(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}
	writeData(w, http.StatusOK, toHabitStatsResponse(st), "")
}

// Get handles GET /api/entries/habits/{habitId}/{date}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	key := entryKey(q)
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err, "entry")
		return
	}

	e, err := h.svc.GetEntry(r.Context(), key)
	if err != nil {
		handleError(h.log, w, r, err, "entry")
		return
	}
	writeData(w, http.StatusOK, toEntryResponse(e), "")
}

// Upsert handles POST /api/entries.
func (h *EntryHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	e, err := h.svc.UpsertEntry(r.Context(), req.input())
	if err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}
	writeData(w, http.StatusCreated, toEntryResponse(e), "Entry saved successfully")
}

// Update handles PUT /api/entries/habits/{habitId}/{date}.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	key := entryKey(q)
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}

	var req struct {
		Completed *bool `json:"completed"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Completed == nil {
		handleError(h.log, w, r, domain.NewValidationError("completed", "required"), "habit")
		return
	}

	e, err := h.svc.UpsertEntry(r.Context(), entry.UpsertEntryInput{
		HabitID:   key.HabitID,
		Date:      key.Date,
		Completed: *req.Completed,
	})
	if err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}
	writeData(w, http.StatusOK, toEntryResponse(e), "Entry updated successfully")
}

// Toggle handles POST /api/entries/habits/{habitId}/{date}/toggle.
func (h *EntryHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	key := entryKey(q)
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}

	e, err := h.svc.ToggleEntry(r.Context(), key)
	if err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}
	writeData(w, http.StatusOK, toEntryResponse(e), "Entry toggled successfully")
}

// Delete handles DELETE /api/entries/habits/{habitId}/{date}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	key := entryKey(q)
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err, "entry")
		return
	}

	if err := h.svc.DeleteEntry(r.Context(), key); err != nil {
		handleError(h.log, w, r, err, "entry")
		return
	}
	writeData(w, http.StatusOK, nil, "Entry deleted successfully")
}

// Bulk handles POST /api/entries/bulk.
func (h *EntryHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Entries []entryRequest `json:"entries"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	input := entry.BulkUpsertInput{Entries: make([]entry.UpsertEntryInput, len(req.Entries))}
	for i, er := range req.Entries {
		input.Entries[i] = er.input()
	}

	entries, err := h.svc.BulkUpsert(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}
	writeList(w, http.StatusCreated, toEntryResponses(entries), "Entries saved successfully")
}

// Export handles GET /api/entries/export?habitIds.
func (h *EntryHandler) Export(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	ids := q.queryUUIDs("habitIds")
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err, "entry")
		return
	}

	rows, err := h.svc.Export(r.Context(), ids)
	if err != nil {
		handleError(h.log, w, r, err, "entry")
		return
	}
	out := make([]exportRowResponse, len(rows))
	for i := range rows {
		out[i] = exportRowResponse{
			entryResponse: toEntryResponse(&rows[i].Entry),
			HabitName:     rows[i].HabitName,
			HabitCategory: rows[i].HabitCategory,
		}
	}
	writeList(w, http.StatusOK, out, "")
}
