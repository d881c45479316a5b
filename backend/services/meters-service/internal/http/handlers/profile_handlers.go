package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"meterbook/backend/services/meters-service/internal/service"
)

const profileNotFound = "household profile not found"

// ProfileHandlers serves /api/profile.
type ProfileHandlers struct {
	svc    *service.HouseholdService
	logger *zap.Logger
}

// NewProfileHandlers builds handlers.
func NewProfileHandlers(svc *service.HouseholdService, logger *zap.Logger) *ProfileHandlers {
	return &ProfileHandlers{svc: svc, logger: logger}
}

// Get handles GET /api/profile.
func (h *ProfileHandlers) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	profile, err := h.svc.Get(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err, profileNotFound, "failed to load household profile")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// Save handles PUT /api/profile.
func (h *ProfileHandlers) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var input service.HouseholdInput
	if !decodeBody(w, r, &input) {
		return
	}
	profile, err := h.svc.Save(r.Context(), userID, input)
	if err != nil {
		writeServiceError(w, h.logger, err, profileNotFound, "failed to save household profile")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
