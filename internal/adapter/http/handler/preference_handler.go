package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kashifaziz477/Money-Management-Ledger/internal/adapter/http/dto"
)

// PreferenceService defines the behavior needed by PreferenceHandler.
type PreferenceService interface {
	DarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, enabled bool) error
}

// PreferenceHandler serves the persisted dark-mode preference.
type PreferenceHandler struct {
	prefUC PreferenceService
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(prefUC PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{prefUC: prefUC}
}

// GetDarkMode returns the stored preference; absence means light mode.
func (h *PreferenceHandler) GetDarkMode(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.prefUC.DarkMode(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read preference", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DarkModeResponse{Enabled: enabled})
}

// SetDarkMode persists the preference.
func (h *PreferenceHandler) SetDarkMode(w http.ResponseWriter, r *http.Request) {
	var req dto.SetDarkModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.prefUC.SetDarkMode(r.Context(), req.Enabled); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store preference", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DarkModeResponse{Enabled: req.Enabled})
}
