package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"meterbook/backend/services/meters-service/internal/service"
)

// ReferenceHandlers serves reference tables.
type ReferenceHandlers struct {
	svc    *service.ReferenceService
	logger *zap.Logger
}

// NewReferenceHandlers builds handlers.
func NewReferenceHandlers(svc *service.ReferenceService, logger *zap.Logger) *ReferenceHandlers {
	return &ReferenceHandlers{svc: svc, logger: logger}
}

// MeterTypes handles GET /api/meter-types.
func (h *ReferenceHandlers) MeterTypes(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(w, r); !ok {
		return
	}
	types, err := h.svc.MeterTypes(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "", "failed to load meter types")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"meter_types": types})
}
