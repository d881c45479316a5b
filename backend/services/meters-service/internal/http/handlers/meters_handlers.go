package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"meterbook/backend/services/meters-service/internal/consumption"
	"meterbook/backend/services/meters-service/internal/service"
)

const meterNotFound = "meter not found"

// MetersHandlers serves /api/meters and the per-meter analytics.
type MetersHandlers struct {
	svc       *service.MetersService
	analytics *service.AnalyticsService
	logger    *zap.Logger
}

// NewMetersHandlers builds handlers.
func NewMetersHandlers(svc *service.MetersService, analytics *service.AnalyticsService, logger *zap.Logger) *MetersHandlers {
	return &MetersHandlers{svc: svc, analytics: analytics, logger: logger}
}

// List handles GET /api/meters.
func (h *MetersHandlers) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	meters, err := h.svc.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err, meterNotFound, "failed to load meters")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"meters": meters})
}

// Get handles GET /api/meters/{id}.
func (h *MetersHandlers) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	meter, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, h.logger, err, meterNotFound, "failed to load meter")
		return
	}
	writeJSON(w, http.StatusOK, meter)
}

// Create handles POST /api/meters.
func (h *MetersHandlers) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var input service.MeterInput
	if !decodeBody(w, r, &input) {
		return
	}
	meter, err := h.svc.Create(r.Context(), userID, input)
	if err != nil {
		writeServiceError(w, h.logger, err, locationNotFound, "failed to create meter")
		return
	}
	writeJSON(w, http.StatusCreated, meter)
}

// Update handles PUT /api/meters/{id}.
func (h *MetersHandlers) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var input service.MeterInput
	if !decodeBody(w, r, &input) {
		return
	}
	meter, err := h.svc.Update(r.Context(), userID, id, input)
	if err != nil {
		writeServiceError(w, h.logger, err, meterNotFound, "failed to update meter")
		return
	}
	writeJSON(w, http.StatusOK, meter)
}

// Delete handles DELETE /api/meters/{id}.
func (h *MetersHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, h.logger, err, meterNotFound, "failed to delete meter")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Analytics handles GET /api/meters/{id}/analytics?period=1Y|2Y|ALL.
func (h *MetersHandlers) Analytics(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	period, err := consumption.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "must be 1Y, 2Y or ALL", "field": "period"})
		return
	}
	result, err := h.analytics.MeterAnalytics(r.Context(), userID, id, period)
	if err != nil {
		writeServiceError(w, h.logger, err, meterNotFound, "failed to load meter analytics")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
