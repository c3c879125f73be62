package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddlewareCountsByRoute(t *testing.T) {
	m := NewMetrics()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/v1/datasets/{datasetId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for i := 0; i < 2; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/datasets/abc", nil))
	}

	got := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("/v1/datasets/{datasetId}", "404"))
	if got != 2 {
		t.Fatalf("expected 2 requests counted, got %v", got)
	}
}

func TestLoadedAndHandler(t *testing.T) {
	m := NewMetrics()
	m.Loaded(2, 10, 3)
	m.LoadFailed("shape_mismatch")
	m.ChartRendered("line")

	if got := testutil.ToFloat64(m.recordsExcluded); got != 3 {
		t.Fatalf("expected 3 excluded, got %v", got)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	for _, name := range []string{"sleep_records_loaded_total 10", "sleep_sources_loaded_total 2", `sleep_charts_rendered_total{kind="line"} 1`} {
		if !strings.Contains(body, name) {
			t.Fatalf("metrics output missing %q", name)
		}
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.Loaded(1, 1, 1)
	m.LoadFailed("x")
	m.ChartRendered("x")

	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}
