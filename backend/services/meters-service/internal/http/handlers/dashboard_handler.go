package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"meterbook/backend/services/meters-service/internal/service"
)

// NewDashboardHandler returns GET /api/dashboard handler.
func NewDashboardHandler(svc *service.DashboardService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		dash, err := svc.Dashboard(r.Context(), userID)
		if err != nil {
			writeServiceError(w, logger, err, "", "failed to load dashboard")
			return
		}
		writeJSON(w, http.StatusOK, dash)
	}
}
