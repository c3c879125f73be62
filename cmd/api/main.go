// Fitbit Sleep API
//
// REST API and dashboard for Fitbit sleep exports.
//
//	@title			Fitbit Sleep API
//	@version		1.0
//	@description	Load Fitbit sleep exports into a unified nightly table and chart it.
//
//	@BasePath	/v1
//
//	@tag.name			datasets
//	@tag.description	Loading and browsing sleep exports
//
//	@tag.name			charts
//	@tag.description	Charts, correlations and exports
//
//	@tag.name			insights
//	@tag.description	LLM explanations of a dataset
package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/fitbit-sleep/internal/api"
	"github.com/blaisecz/fitbit-sleep/internal/api/handler"
	"github.com/blaisecz/fitbit-sleep/internal/config"
	"github.com/blaisecz/fitbit-sleep/internal/fitbit"
	"github.com/blaisecz/fitbit-sleep/internal/llm"
	"github.com/blaisecz/fitbit-sleep/internal/logger"
	"github.com/blaisecz/fitbit-sleep/internal/metrics"
	"github.com/blaisecz/fitbit-sleep/internal/repository"
	"github.com/blaisecz/fitbit-sleep/internal/seed"
	"github.com/blaisecz/fitbit-sleep/internal/service"
	"github.com/blaisecz/fitbit-sleep/internal/telemetry"
)

const (
	serviceName     = "fitbit-sleep-api"
	seededDays      = 90
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, serviceName, os.Stdout)
	if err != nil {
		log.Fatal("Failed to initialize tracing", "error", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Warn("Failed to flush traces", "error", err)
		}
	}()

	dashboard, err := config.LoadDashboard(cfg.DashboardConfig)
	if err != nil {
		log.Fatal("Failed to load dashboard config", "error", err)
	}

	m := metrics.NewMetrics()

	// Initialize repository and services
	repo := repository.NewDatasetRepository()
	datasetService := service.NewDatasetService(repo, m, log)
	chartService := service.NewChartService(repo, m)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel)
	if openaiClient == nil {
		log.Warn("OpenAI API key not configured, insights endpoint will be unavailable")
	}
	insightsService := service.NewInsightsService(repo, openaiClient)

	if err := preload(ctx, cfg, dashboard, datasetService, log); err != nil {
		log.Fatal("Failed to load sleep exports", "error", err)
	}

	// Setup router
	router := api.NewRouter(
		handler.NewDatasetHandler(datasetService),
		handler.NewChartHandler(chartService),
		handler.NewInsightsHandler(insightsService),
		handler.NewDashboardHandler(datasetService, dashboard),
		m,
		log,
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Starting server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", "error", err)
	}
}

// preload loads the configured export files, or a synthetic export when
// SEED=true and no files are configured.
func preload(ctx context.Context, cfg *config.Config, dashboard *config.Dashboard, datasets service.DatasetService, log *logger.Logger) error {
	files := cfg.SleepFiles
	if len(files) == 0 {
		files = dashboard.Sources
	}

	req := service.LoadRequest{DiscoverStages: dashboard.DiscoverStages}
	switch {
	case len(files) > 0:
		req.Sources = fitbit.FileSources(files...)
	case cfg.Seed:
		log.Info("Seeding sample sleep export (SEED=true)", "days", seededDays)
		start := time.Now().UTC().AddDate(0, 0, -seededDays)
		data, err := seed.Generate(start, seededDays, rand.New(rand.NewSource(time.Now().UnixNano())))
		if err != nil {
			return err
		}
		req.Name = "seed"
		req.Sources = []fitbit.Source{fitbit.BytesSource{Label: "seed.json", Data: data}}
	default:
		return nil
	}

	dataset, err := datasets.Load(ctx, req)
	if err != nil {
		return err
	}
	log.Info("Loaded sleep dataset",
		"id", dataset.ID,
		"name", dataset.Name,
		"nights", dataset.Table.Len(),
		"excluded", dataset.Excluded,
	)
	return nil
}
