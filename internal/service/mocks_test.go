package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/fitbit"
	"github.com/google/uuid"
)

// MockDatasetRepository is a mock implementation of DatasetRepository
type MockDatasetRepository struct {
	datasets map[uuid.UUID]*domain.Dataset
	err      error
}

func NewMockDatasetRepository() *MockDatasetRepository {
	return &MockDatasetRepository{datasets: make(map[uuid.UUID]*domain.Dataset)}
}

func (m *MockDatasetRepository) Create(ctx context.Context, dataset *domain.Dataset) error {
	if m.err != nil {
		return m.err
	}
	m.datasets[dataset.ID] = dataset
	return nil
}

func (m *MockDatasetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dataset, error) {
	if m.err != nil {
		return nil, m.err
	}
	d, ok := m.datasets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

func (m *MockDatasetRepository) List(ctx context.Context) ([]*domain.Dataset, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.Dataset
	for _, d := range m.datasets {
		out = append(out, d)
	}
	return out, nil
}

// MockInsightsLLM records the context it was given
type MockInsightsLLM struct {
	output *domain.InsightsOutput
	err    error
	got    *domain.InsightsContext
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.InsightsOutput, error) {
	m.got = insightsCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

// exportSource builds an in-memory export with one main sleep per night
// starting at 2020-03-09, followed by one nap.
func exportSource(name string, nights int) fitbit.Source {
	var records []map[string]any
	for i := 0; i < nights; i++ {
		date := fmt.Sprintf("2020-03-%02d", 9+i)
		records = append(records, record(date, true, 420+i*10))
	}
	records = append(records, record("2020-03-09", false, 60))
	data, _ := json.Marshal(records)
	return fitbit.BytesSource{Label: name, Data: data}
}

func record(date string, mainSleep bool, minutes int) map[string]any {
	return map[string]any{
		"logId":       1,
		"dateOfSleep": date,
		"startTime":   date + "T23:30:00.000",
		"endTime":     date + "T07:30:00.000",
		"duration":    minutes * 60000,
		"efficiency":  90 + minutes%7,
		"mainSleep":   mainSleep,
		"type":        "stages",
		"levels": map[string]any{
			"summary": map[string]any{
				"deep":  map[string]any{"minutes": minutes / 5, "count": 3},
				"rem":   map[string]any{"minutes": minutes / 4, "count": 5},
				"light": map[string]any{"minutes": minutes / 2, "count": 20},
				"wake":  map[string]any{"minutes": minutes / 20, "count": 15},
			},
			"data":      []any{},
			"shortData": []any{},
		},
	}
}
