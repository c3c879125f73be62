package service

import (
	"context"
	"encoding/json"
	"math"

	"github.com/blaisecz/fitbit-sleep/internal/analysis"
	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/llm"
	"github.com/blaisecz/fitbit-sleep/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// InsightsService explains a dataset in prose using an LLM.
type InsightsService interface {
	// Generate summarizes the dataset and asks the LLM to explain it.
	Generate(ctx context.Context, id uuid.UUID) (*domain.InsightsResponse, error)
}

type insightsService struct {
	repo      repository.DatasetRepository
	llmClient llm.InsightsLLM
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(repo repository.DatasetRepository, llmClient llm.InsightsLLM) InsightsService {
	return &insightsService{repo: repo, llmClient: llmClient}
}

func (s *insightsService) Generate(ctx context.Context, id uuid.UUID) (*domain.InsightsResponse, error) {
	tracer := otel.Tracer("fitbit-sleep/insights")
	ctx, span := tracer.Start(ctx, "InsightsService.Generate",
		trace.WithAttributes(attribute.String("dataset.id", id.String())),
	)
	defer span.End()

	dataset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	summary := analysis.Summarize(dataset.Table)
	insightsCtx := &domain.InsightsContext{
		Dataset:              dataset.Name,
		Columns:              dataset.Table.Columns,
		Summary:              summary,
		DurationCorrelations: durationCorrelations(dataset.Table),
	}
	if inputJSON, err := json.Marshal(insightsCtx); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	output, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if outputJSON, err := json.Marshal(output); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	resp := &domain.InsightsResponse{
		Summary:  summary,
		Insights: *output,
	}
	if sc := span.SpanContext(); sc.IsValid() {
		resp.TraceID = sc.TraceID().String()
	}
	return resp, nil
}

// durationCorrelations returns the finite correlations of each numeric column with duration.
func durationCorrelations(table *domain.SleepTable) map[string]float64 {
	m, err := analysis.Correlate(table)
	if err != nil {
		return nil
	}
	row := -1
	for i, l := range m.Labels {
		if l == domain.ColumnDuration {
			row = i
		}
	}
	if row < 0 {
		return nil
	}

	out := make(map[string]float64)
	for j, l := range m.Labels {
		r := m.Values[row][j]
		if j == row || math.IsNaN(r) {
			continue
		}
		out[l] = math.Round(r*100) / 100
	}
	return out
}
