package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"meterbook/backend/services/meters-service/internal/service"
)

const locationNotFound = "location not found"

// LocationsHandlers serves /api/locations.
type LocationsHandlers struct {
	svc    *service.LocationsService
	logger *zap.Logger
}

// NewLocationsHandlers builds handlers.
func NewLocationsHandlers(svc *service.LocationsService, logger *zap.Logger) *LocationsHandlers {
	return &LocationsHandlers{svc: svc, logger: logger}
}

// List handles GET /api/locations.
func (h *LocationsHandlers) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	locations, err := h.svc.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err, locationNotFound, "failed to load locations")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"locations": locations})
}

// Create handles POST /api/locations.
func (h *LocationsHandlers) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var input service.LocationInput
	if !decodeBody(w, r, &input) {
		return
	}
	loc, err := h.svc.Create(r.Context(), userID, input)
	if err != nil {
		writeServiceError(w, h.logger, err, locationNotFound, "failed to create location")
		return
	}
	writeJSON(w, http.StatusCreated, loc)
}

// Update handles PUT /api/locations/{id}.
func (h *LocationsHandlers) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var input service.LocationInput
	if !decodeBody(w, r, &input) {
		return
	}
	loc, err := h.svc.Update(r.Context(), userID, id, input)
	if err != nil {
		writeServiceError(w, h.logger, err, locationNotFound, "failed to update location")
		return
	}
	writeJSON(w, http.StatusOK, loc)
}

// Delete handles DELETE /api/locations/{id}.
func (h *LocationsHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, h.logger, err, locationNotFound, "failed to delete location")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
