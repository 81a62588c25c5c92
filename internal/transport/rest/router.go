package rest

import (
	"net/http"
)

// Handlers groups every handler mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Habits   *HabitHandler
	Entries  *EntryHandler
	Stats    *StatsHandler
	Settings *SettingsHandler
	AI       *AIHandler
}

// NewRouter registers the API routes on a new ServeMux. Unmatched paths
// get a JSON 404.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /api/health", h.Health.Health)
	mux.HandleFunc("GET /api/health/detailed", h.Health.Detailed)
	mux.HandleFunc("GET /api/health/live", h.Health.Live)
	mux.HandleFunc("GET /api/health/ready", h.Health.Ready)

	mux.HandleFunc("GET /api/habits", h.Habits.List)
	mux.HandleFunc("POST /api/habits", h.Habits.Create)
	mux.HandleFunc("POST /api/habits/bulk", h.Habits.BulkCreate)
	mux.HandleFunc("GET /api/habits/categories", h.Habits.Categories)
	mux.HandleFunc("GET /api/habits/{id}", h.Habits.Get)
	mux.HandleFunc("PUT /api/habits/{id}", h.Habits.Update)
	mux.HandleFunc("DELETE /api/habits/{id}", h.Habits.Delete)
	mux.HandleFunc("DELETE /api/habits/{id}/destroy", h.Habits.Destroy)

	mux.HandleFunc("GET /api/entries", h.Entries.List)
	mux.HandleFunc("POST /api/entries", h.Entries.Upsert)
	mux.HandleFunc("POST /api/entries/bulk", h.Entries.Bulk)
	mux.HandleFunc("GET /api/entries/export", h.Entries.Export)
	mux.HandleFunc("GET /api/entries/habits/{habitId}", h.Entries.ListByHabit)
	mux.HandleFunc("GET /api/entries/habits/{habitId}/stats", h.Entries.Stats)
	mux.HandleFunc("GET /api/entries/habits/{habitId}/{date}", h.Entries.Get)
	mux.HandleFunc("PUT /api/entries/habits/{habitId}/{date}", h.Entries.Update)
	mux.HandleFunc("DELETE /api/entries/habits/{habitId}/{date}", h.Entries.Delete)
	mux.HandleFunc("POST /api/entries/habits/{habitId}/{date}/toggle", h.Entries.Toggle)

	mux.HandleFunc("GET /api/stats/overview", h.Stats.Overview)
	mux.HandleFunc("GET /api/stats/calendar", h.Stats.Calendar)

	mux.HandleFunc("GET /api/settings", h.Settings.Get)
	mux.HandleFunc("PUT /api/settings", h.Settings.Update)
	mux.HandleFunc("POST /api/settings/reset", h.Settings.Reset)

	mux.HandleFunc("POST /api/ai/suggestions", h.AI.Suggestions)
	mux.HandleFunc("POST /api/ai/insights", h.AI.Insights)
	mux.HandleFunc("POST /api/ai/motivation", h.AI.Motivation)
	mux.HandleFunc("GET /api/ai/status", h.AI.Status)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, kindNotFound, "route "+r.Method+" "+r.URL.Path+" not found")
	})

	return mux
}
