package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/internal/service/habit"
)

type habitService interface {
	CreateHabit(ctx context.Context, input habit.CreateHabitInput) (*domain.Habit, error)
	BulkCreateHabits(ctx context.Context, input habit.BulkCreateHabitsInput) ([]*domain.Habit, error)
	ListHabits(ctx context.Context, input habit.ListHabitsInput) ([]*domain.Habit, error)
	ListHabitsWithStats(ctx context.Context, input habit.ListHabitsInput) ([]domain.HabitWithStats, error)
	Categories(ctx context.Context) ([]domain.CategoryCount, error)
	GetHabit(ctx context.Context, id uuid.UUID) (*domain.Habit, error)
	UpdateHabit(ctx context.Context, input habit.UpdateHabitInput) (*domain.Habit, error)
	DeleteHabit(ctx context.Context, id uuid.UUID) (*domain.Habit, error)
	DestroyHabit(ctx context.Context, id uuid.UUID) error
}

// HabitHandler serves /api/habits.
type HabitHandler struct {
	svc habitService
	log *slog.Logger
}

// NewHabitHandler creates a HabitHandler.
func NewHabitHandler(svc habitService, logger *slog.Logger) *HabitHandler {
	return &HabitHandler{svc: svc, log: logger.With("handler", "habits")}
}

type habitRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Category    string  `json:"category"`
	Color       string  `json:"color"`
	IsActive    *bool   `json:"isActive"`
}

func (r habitRequest) input() habit.CreateHabitInput {
	return habit.CreateHabitInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Color:       r.Color,
		IsActive:    r.IsActive,
	}
}

type habitPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Color       *string `json:"color"`
	IsActive    *bool   `json:"isActive"`
}

// List handles GET /api/habits?isActive&category&withStats.
func (h *HabitHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	input := habit.ListHabitsInput{
		IsActive: q.queryBool("isActive"),
		Category: q.queryString("category"),
	}
	withStats := q.queryBool("withStats")
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}

	if withStats != nil && *withStats {
		habits, err := h.svc.ListHabitsWithStats(r.Context(), input)
		if err != nil {
			handleError(h.log, w, r, err, "habit")
			return
		}
		writeList(w, http.StatusOK, toHabitWithStatsResponses(habits), "")
		return
	}

	habits, err := h.svc.ListHabits(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}
	writeList(w, http.StatusOK, toHabitResponses(habits), "")
}

// Categories handles GET /api/habits/categories.
func (h *HabitHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.Categories(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, "category")
		return
	}
	out := make([]categoryResponse, len(cats))
	for i, c := range cats {
		out[i] = categoryResponse{Category: c.Category, Count: c.Count}
	}
	writeList(w, http.StatusOK, out, "")
}

// Get handles GET /api/habits/{id}.
func (h *HabitHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	id := q.pathUUID("id")
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}

	hb, err := h.svc.GetHabit(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}
	writeData(w, http.StatusOK, toHabitResponse(hb), "")
}

// Create handles POST /api/habits.
func (h *HabitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req habitRequest
	if !decodeBody(w, r, &req) {
		return
	}

	hb, err := h.svc.CreateHabit(r.Context(), req.input())
	if err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}
	writeData(w, http.StatusCreated, toHabitResponse(hb), "Habit created successfully")
}

// BulkCreate handles POST /api/habits/bulk.
func (h *HabitHandler) BulkCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Habits []habitRequest `json:"habits"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	input := habit.BulkCreateHabitsInput{Habits: make([]habit.CreateHabitInput, len(req.Habits))}
	for i, hr := range req.Habits {
		input.Habits[i] = hr.input()
	}

	habits, err := h.svc.BulkCreateHabits(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}
	writeList(w, http.StatusCreated, toHabitResponses(habits), "Habits created successfully")
}

// Update handles PUT /api/habits/{id}.
func (h *HabitHandler) Update(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	id := q.pathUUID("id")
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}

	var req habitPatchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	hb, err := h.svc.UpdateHabit(r.Context(), habit.UpdateHabitInput{
		HabitID:     id,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Color:       req.Color,
		IsActive:    req.IsActive,
	})
	if err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}
	writeData(w, http.StatusOK, toHabitResponse(hb), "Habit updated successfully")
}

// Delete handles DELETE /api/habits/{id}. The habit is deactivated, not removed.
func (h *HabitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	id := q.pathUUID("id")
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}

	hb, err := h.svc.DeleteHabit(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}
	writeData(w, http.StatusOK, toHabitResponse(hb), "Habit deactivated successfully")
}

// Destroy handles DELETE /api/habits/{id}/destroy.
func (h *HabitHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	id := q.pathUUID("id")
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}

	if err := h.svc.DestroyHabit(r.Context(), id); err != nil {
		handleError(h.log, w, r, err, "habit")
		return
	}
	writeData(w, http.StatusOK, nil, "Habit permanently deleted")
}
