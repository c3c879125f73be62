package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors of the service. A nil *Metrics records nothing.
type Metrics struct {
	registry          *prometheus.Registry
	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	sourcesLoaded     prometheus.Counter
	recordsLoaded     prometheus.Counter
	recordsExcluded   prometheus.Counter
	loadFailures      *prometheus.CounterVec
	chartsRendered    *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		sourcesLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sleep_sources_loaded_total",
			Help: "Total export sources read successfully.",
		}),
		recordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sleep_records_loaded_total",
			Help: "Total sleep records read, before the nap filter.",
		}),
		recordsExcluded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sleep_records_excluded_total",
			Help: "Total records dropped because they are not the main sleep.",
		}),
		loadFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sleep_load_failures_total",
			Help: "Total failed loads by error kind.",
		}, []string{"kind"}),
		chartsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sleep_charts_rendered_total",
			Help: "Total charts rendered by kind.",
		}, []string{"kind"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpDuration,
		m.sourcesLoaded,
		m.recordsLoaded,
		m.recordsExcluded,
		m.loadFailures,
		m.chartsRendered,
	)

	return m
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// Middleware counts requests by chi route pattern and status.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(recorder, r)

		if m == nil {
			return
		}
		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Loaded records a successful load.
func (m *Metrics) Loaded(sources, records, excluded int) {
	if m == nil {
		return
	}
	m.sourcesLoaded.Add(float64(sources))
	m.recordsLoaded.Add(float64(records))
	m.recordsExcluded.Add(float64(excluded))
}

func (m *Metrics) LoadFailed(kind string) {
	if m == nil {
		return
	}
	m.loadFailures.WithLabelValues(kind).Inc()
}

func (m *Metrics) ChartRendered(kind string) {
	if m == nil {
		return
	}
	m.chartsRendered.WithLabelValues(kind).Inc()
}
