package httpserver

import (
	"net/http"

	"github.com/gorilla/mux"

	"meterbook/backend/services/meters-service/internal/http/handlers"
)

// RouterDeps collects handler dependencies.
type RouterDeps struct {
	Reference     *handlers.ReferenceHandlers
	Locations     *handlers.LocationsHandlers
	Meters        *handlers.MetersHandlers
	Readings      *handlers.ReadingsHandlers
	Profile       *handlers.ProfileHandlers
	Dashboard     http.HandlerFunc
	HealthHandler http.HandlerFunc
	// Metrics serves /metrics and Instrument wraps every matched route. Both are optional.
	Metrics    http.Handler
	Instrument func(http.Handler) http.Handler
}

// NewRouter wires HTTP routes. Everything under /api goes through authMiddleware.
func NewRouter(deps RouterDeps, authMiddleware func(http.Handler) http.Handler) *mux.Router {
	r := mux.NewRouter()
	if deps.Instrument != nil {
		r.Use(deps.Instrument)
	}
	r.HandleFunc("/health", deps.HealthHandler).Methods(http.MethodGet)
	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics).Methods(http.MethodGet)
	}

	// Routes stay on the root router so a wrong method answers 405 rather than 404.
	api := func(path string, h http.HandlerFunc, method string) {
		r.Handle("/api"+path, authMiddleware(h)).Methods(method)
	}

	api("/meter-types", deps.Reference.MeterTypes, http.MethodGet)

	api("/locations", deps.Locations.List, http.MethodGet)
	api("/locations", deps.Locations.Create, http.MethodPost)
	api("/locations/{id}", deps.Locations.Update, http.MethodPut)
	api("/locations/{id}", deps.Locations.Delete, http.MethodDelete)

	api("/meters", deps.Meters.List, http.MethodGet)
	api("/meters", deps.Meters.Create, http.MethodPost)
	api("/meters/{id}", deps.Meters.Get, http.MethodGet)
	api("/meters/{id}", deps.Meters.Update, http.MethodPut)
	api("/meters/{id}", deps.Meters.Delete, http.MethodDelete)
	api("/meters/{id}/analytics", deps.Meters.Analytics, http.MethodGet)

	api("/readings", deps.Readings.List, http.MethodGet)
	api("/readings", deps.Readings.Create, http.MethodPost)
	api("/readings/{id}", deps.Readings.Update, http.MethodPut)
	api("/readings/{id}", deps.Readings.Delete, http.MethodDelete)

	api("/profile", deps.Profile.Get, http.MethodGet)
	api("/profile", deps.Profile.Save, http.MethodPut)

	api("/dashboard", deps.Dashboard, http.MethodGet)

	return r
}
