package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"meterbook/backend/services/meters-service/internal/service"
)

const readingNotFound = "reading not found"

// ReadingsHandlers serves /api/readings.
type ReadingsHandlers struct {
	svc    *service.ReadingsService
	logger *zap.Logger
}

// NewReadingsHandlers builds handlers.
func NewReadingsHandlers(svc *service.ReadingsService, logger *zap.Logger) *ReadingsHandlers {
	return &ReadingsHandlers{svc: svc, logger: logger}
}

// List handles GET /api/readings with an optional meter_id filter.
func (h *ReadingsHandlers) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var meterID *uuid.UUID
	if raw := r.URL.Query().Get("meter_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "must be a valid id", "field": "meter_id"})
			return
		}
		meterID = &id
	}
	readings, err := h.svc.List(r.Context(), userID, meterID)
	if err != nil {
		writeServiceError(w, h.logger, err, readingNotFound, "failed to load readings")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"readings": readings})
}

// Create handles POST /api/readings.
func (h *ReadingsHandlers) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var input service.ReadingInput
	if !decodeBody(w, r, &input) {
		return
	}
	reading, err := h.svc.Create(r.Context(), userID, input)
	if err != nil {
		writeServiceError(w, h.logger, err, meterNotFound, "failed to record reading")
		return
	}
	writeJSON(w, http.StatusCreated, reading)
}

// Update handles PUT /api/readings/{id}.
func (h *ReadingsHandlers) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var input service.ReadingInput
	if !decodeBody(w, r, &input) {
		return
	}
	reading, err := h.svc.Update(r.Context(), userID, id, input)
	if err != nil {
		writeServiceError(w, h.logger, err, readingNotFound, "failed to update reading")
		return
	}
	writeJSON(w, http.StatusOK, reading)
}

// Delete handles DELETE /api/readings/{id}.
func (h *ReadingsHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, h.logger, err, readingNotFound, "failed to delete reading")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
