package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	m := New()
	r := mux.NewRouter()
	r.Use(m.Middleware)
	r.HandleFunc("/api/meters/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	for _, id := range []string{"a", "b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/meters/"+id, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/meters/{id}", http.MethodGet, "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestCacheLookup(t *testing.T) {
	m := New()
	m.CacheLookup("benchmarks", true)
	m.CacheLookup("benchmarks", false)
	m.CacheLookup("benchmarks", false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("benchmarks", "hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("benchmarks", "miss")))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.CacheLookup("meter_types", true) })
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	m.CacheLookup("meter_types", true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `meters_reference_cache_lookups_total{result="hit",table="meter_types"} 1`)
}
