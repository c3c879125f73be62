package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/fitbit-sleep/docs"
	"github.com/blaisecz/fitbit-sleep/internal/api/handler"
	"github.com/blaisecz/fitbit-sleep/internal/api/middleware"
	"github.com/blaisecz/fitbit-sleep/internal/logger"
	"github.com/blaisecz/fitbit-sleep/internal/metrics"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	datasetHandler   *handler.DatasetHandler
	chartHandler     *handler.ChartHandler
	insightsHandler  *handler.InsightsHandler
	dashboardHandler *handler.DashboardHandler
	metrics          *metrics.Metrics
	log              *logger.Logger
}

func NewRouter(
	datasetHandler *handler.DatasetHandler,
	chartHandler *handler.ChartHandler,
	insightsHandler *handler.InsightsHandler,
	dashboardHandler *handler.DashboardHandler,
	m *metrics.Metrics,
	log *logger.Logger,
) *Router {
	return &Router{
		datasetHandler:   datasetHandler,
		chartHandler:     chartHandler,
		insightsHandler:  insightsHandler,
		dashboardHandler: dashboardHandler,
		metrics:          m,
		log:              log,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(rt.log))
	r.Use(middleware.Logger(rt.log))
	r.Use(middleware.Tracing)
	r.Use(rt.metrics.Middleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Handle("/metrics", rt.metrics.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	r.Get("/", rt.dashboardHandler.Show)

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/datasets", func(r chi.Router) {
			r.Post("/", rt.datasetHandler.Create)
			r.Get("/", rt.datasetHandler.List)

			r.Route("/{datasetId}", func(r chi.Router) {
				r.Get("/", rt.datasetHandler.GetByID)
				r.Get("/rows", rt.datasetHandler.Rows)
				r.Get("/summary", rt.datasetHandler.Summary)
				r.Get("/insights", rt.insightsHandler.GetInsights)
				r.Get("/correlation", rt.chartHandler.Correlation)
				r.Get("/export.xlsx", rt.chartHandler.Export)

				r.Route("/charts", func(r chi.Router) {
					r.Get("/line.png", rt.chartHandler.Line)
					r.Get("/scatter.png", rt.chartHandler.Scatter)
					r.Get("/correlation.png", rt.chartHandler.Heatmap)
				})
			})
		})
	})

	return r
}
