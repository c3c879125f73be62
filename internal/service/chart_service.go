package service

import (
	"context"
	"io"

	"github.com/blaisecz/fitbit-sleep/internal/analysis"
	"github.com/blaisecz/fitbit-sleep/internal/chart"
	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/export"
	"github.com/blaisecz/fitbit-sleep/internal/metrics"
	"github.com/blaisecz/fitbit-sleep/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ChartService renders charts, correlations and exports of stored datasets.
type ChartService interface {
	Line(ctx context.Context, id uuid.UUID, req domain.LineChartRequest) ([]byte, error)
	Scatter(ctx context.Context, id uuid.UUID, req domain.ScatterChartRequest) ([]byte, error)
	Correlation(ctx context.Context, id uuid.UUID, req domain.CorrelationRequest) (*domain.HeatmapPayload, error)
	Heatmap(ctx context.Context, id uuid.UUID, req domain.CorrelationRequest) ([]byte, error)
	Export(ctx context.Context, id uuid.UUID, w io.Writer) error
}

type chartService struct {
	repo    repository.DatasetRepository
	metrics *metrics.Metrics
}

func NewChartService(repo repository.DatasetRepository, m *metrics.Metrics) ChartService {
	return &chartService{repo: repo, metrics: m}
}

// table starts the span of a chart operation and resolves the dataset. The
// caller ends the span on success.
func (s *chartService) table(ctx context.Context, id uuid.UUID, kind string) (trace.Span, *domain.SleepTable, error) {
	ctx, span := otel.Tracer("fitbit-sleep/charts").Start(ctx, "ChartService."+kind,
		trace.WithAttributes(attribute.String("dataset.id", id.String())),
	)
	dataset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.End()
		return span, nil, err
	}
	return span, dataset.Table, nil
}

func (s *chartService) Line(ctx context.Context, id uuid.UUID, req domain.LineChartRequest) ([]byte, error) {
	weekday, err := analysis.ParseWeekday(req.Weekday)
	if err != nil {
		return nil, err
	}
	span, table, err := s.table(ctx, id, "Line")
	if err != nil {
		return nil, err
	}
	defer span.End()
	span.SetAttributes(attribute.StringSlice("chart.columns", req.Columns))

	png, err := chart.Line(table, req.Columns, weekday)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	s.metrics.ChartRendered("line")
	return png, nil
}

func (s *chartService) Scatter(ctx context.Context, id uuid.UUID, req domain.ScatterChartRequest) ([]byte, error) {
	span, table, err := s.table(ctx, id, "Scatter")
	if err != nil {
		return nil, err
	}
	defer span.End()

	png, err := chart.Scatter(table, req.X, req.Y)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	s.metrics.ChartRendered("scatter")
	return png, nil
}

func (s *chartService) Correlation(ctx context.Context, id uuid.UUID, req domain.CorrelationRequest) (*domain.HeatmapPayload, error) {
	span, table, err := s.table(ctx, id, "Correlation")
	if err != nil {
		return nil, err
	}
	defer span.End()

	m, err := analysis.Correlate(table, req.Labels...)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	payload := analysis.ToHeatmap(m)
	return &payload, nil
}

func (s *chartService) Heatmap(ctx context.Context, id uuid.UUID, req domain.CorrelationRequest) ([]byte, error) {
	span, table, err := s.table(ctx, id, "Heatmap")
	if err != nil {
		return nil, err
	}
	defer span.End()

	m, err := analysis.Correlate(table, req.Labels...)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	png, err := chart.Heatmap(m)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	s.metrics.ChartRendered("heatmap")
	return png, nil
}

func (s *chartService) Export(ctx context.Context, id uuid.UUID, w io.Writer) error {
	span, table, err := s.table(ctx, id, "Export")
	if err != nil {
		return err
	}
	defer span.End()

	if err := export.WriteXLSX(w, table); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
