package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

type settingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error)
	Reset(ctx context.Context) (domain.Settings, error)
}

// SettingsHandler serves /api/settings.
type SettingsHandler struct {
	svc settingsService
	log *slog.Logger
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(svc settingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger.With("handler", "settings")}
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Get(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, "settings")
		return
	}
	writeData(w, http.StatusOK, s, "")
}

// Update handles PUT /api/settings. Only the fields present in the body change.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.SettingsPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	s, err := h.svc.Update(r.Context(), patch)
	if err != nil {
		handleError(h.log, w, r, err, "settings")
		return
	}
	writeData(w, http.StatusOK, s, "Settings updated successfully")
}

// Reset handles POST /api/settings/reset.
func (h *SettingsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Reset(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, "settings")
		return
	}
	writeData(w, http.StatusOK, s, "Settings reset to defaults")
}
