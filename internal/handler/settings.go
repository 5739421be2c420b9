package handler

import (
	"log/slog"
	"net/http"

	"github.com/securepass/securepass-go/internal/middleware"
	"github.com/securepass/securepass-go/internal/service"
)

// SettingsHandler serves the authenticated profile's settings.
type SettingsHandler struct {
	service *service.SettingsService
}

func NewSettingsHandler(svc *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: svc}
}

// HandleGet handles GET /api/v1/settings requests.
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	settings, err := h.service.Get(r.Context(), profileID)
	if err != nil {
		slog.Error("loading settings", "profile", profileID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// HandlePut handles PUT /api/v1/settings requests. Keys missing from the body
// keep their stored values; the normalised result is returned.
func (h *SettingsHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	current, err := h.service.Get(r.Context(), profileID)
	if err != nil {
		slog.Error("loading settings", "profile", profileID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	next := current
	if !decodeJSON(w, r, maxBodyBytes, &next) {
		return
	}

	saved, err := h.service.Save(r.Context(), profileID, next)
	if err != nil {
		slog.Error("saving settings", "profile", profileID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, saved)
}

