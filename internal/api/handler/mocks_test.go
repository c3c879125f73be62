package handler

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MockDatasetService is a mock implementation of DatasetService
type MockDatasetService struct {
	loadFunc    func(ctx context.Context, req service.LoadRequest) (*domain.Dataset, error)
	getFunc     func(ctx context.Context, id uuid.UUID) (*domain.Dataset, error)
	listFunc    func(ctx context.Context) ([]*domain.Dataset, error)
	rowsFunc    func(ctx context.Context, id uuid.UUID, filter domain.RowFilter) (*domain.RowListResponse, error)
	summaryFunc func(ctx context.Context, id uuid.UUID) (*domain.DatasetSummary, error)
}

func (m *MockDatasetService) Load(ctx context.Context, req service.LoadRequest) (*domain.Dataset, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, req)
	}
	return sampleDataset(), nil
}

func (m *MockDatasetService) Get(ctx context.Context, id uuid.UUID) (*domain.Dataset, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockDatasetService) List(ctx context.Context) ([]*domain.Dataset, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *MockDatasetService) Rows(ctx context.Context, id uuid.UUID, filter domain.RowFilter) (*domain.RowListResponse, error) {
	if m.rowsFunc != nil {
		return m.rowsFunc(ctx, id, filter)
	}
	return &domain.RowListResponse{}, nil
}

func (m *MockDatasetService) Summary(ctx context.Context, id uuid.UUID) (*domain.DatasetSummary, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, id)
	}
	return &domain.DatasetSummary{}, nil
}

// MockChartService is a mock implementation of ChartService
type MockChartService struct {
	lineFunc        func(ctx context.Context, id uuid.UUID, req domain.LineChartRequest) ([]byte, error)
	scatterFunc     func(ctx context.Context, id uuid.UUID, req domain.ScatterChartRequest) ([]byte, error)
	correlationFunc func(ctx context.Context, id uuid.UUID, req domain.CorrelationRequest) (*domain.HeatmapPayload, error)
	heatmapFunc     func(ctx context.Context, id uuid.UUID, req domain.CorrelationRequest) ([]byte, error)
	exportFunc      func(ctx context.Context, id uuid.UUID, w io.Writer) error
}

func (m *MockChartService) Line(ctx context.Context, id uuid.UUID, req domain.LineChartRequest) ([]byte, error) {
	if m.lineFunc != nil {
		return m.lineFunc(ctx, id, req)
	}
	return []byte("\x89PNG"), nil
}

func (m *MockChartService) Scatter(ctx context.Context, id uuid.UUID, req domain.ScatterChartRequest) ([]byte, error) {
	if m.scatterFunc != nil {
		return m.scatterFunc(ctx, id, req)
	}
	return []byte("\x89PNG"), nil
}

func (m *MockChartService) Correlation(ctx context.Context, id uuid.UUID, req domain.CorrelationRequest) (*domain.HeatmapPayload, error) {
	if m.correlationFunc != nil {
		return m.correlationFunc(ctx, id, req)
	}
	return &domain.HeatmapPayload{}, nil
}

func (m *MockChartService) Heatmap(ctx context.Context, id uuid.UUID, req domain.CorrelationRequest) ([]byte, error) {
	if m.heatmapFunc != nil {
		return m.heatmapFunc(ctx, id, req)
	}
	return []byte("\x89PNG"), nil
}

func (m *MockChartService) Export(ctx context.Context, id uuid.UUID, w io.Writer) error {
	if m.exportFunc != nil {
		return m.exportFunc(ctx, id, w)
	}
	_, err := w.Write([]byte("PK"))
	return err
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, id uuid.UUID) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, id uuid.UUID) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, id)
	}
	return &domain.InsightsResponse{}, nil
}

func sampleDataset() *domain.Dataset {
	date := time.Date(2020, 3, 9, 0, 0, 0, 0, time.UTC)
	return &domain.Dataset{
		ID:      uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		Name:    "sleep-2020-03-09.json",
		Sources: []string{"sleep-2020-03-09.json"},
		Table: &domain.SleepTable{
			Columns: []string{"duration", "dayOfWeek"},
			Rows: []domain.SleepRow{
				{Date: date, Values: map[string]any{"duration": 420.0, "dayOfWeek": "Monday"}},
			},
		},
		Excluded:  1,
		CreatedAt: date,
	}
}

// withDatasetID routes a request the way chi would for /{datasetId} paths.
func withDatasetID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("datasetId", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
