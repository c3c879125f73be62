package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/fitbit"
	"github.com/blaisecz/fitbit-sleep/internal/metrics"
	"github.com/google/uuid"
)

var pngMagic = []byte("\x89PNG")

func loadedDataset(t *testing.T, repo *MockDatasetRepository) uuid.UUID {
	t.Helper()
	d, err := newDatasetService(repo).Load(context.Background(), LoadRequest{Sources: []fitbit.Source{exportSource("a.json", 10)}})
	if err != nil {
		t.Fatalf("failed to load dataset: %v", err)
	}
	return d.ID
}

func TestChartService_Charts(t *testing.T) {
	repo := NewMockDatasetRepository()
	id := loadedDataset(t, repo)
	svc := NewChartService(repo, metrics.NewMetrics())
	ctx := context.Background()

	line, err := svc.Line(ctx, id, domain.LineChartRequest{Columns: []string{"rem.%", "deep.%"}})
	if err != nil || !bytes.HasPrefix(line, pngMagic) {
		t.Fatalf("line chart failed: %v", err)
	}

	scatter, err := svc.Scatter(ctx, id, domain.ScatterChartRequest{X: "startMin", Y: "deep.%"})
	if err != nil || !bytes.HasPrefix(scatter, pngMagic) {
		t.Fatalf("scatter chart failed: %v", err)
	}

	heatmap, err := svc.Heatmap(ctx, id, domain.CorrelationRequest{})
	if err != nil || !bytes.HasPrefix(heatmap, pngMagic) {
		t.Fatalf("heatmap failed: %v", err)
	}

	var buf bytes.Buffer
	if err := svc.Export(ctx, id, &buf); err != nil || buf.Len() == 0 {
		t.Fatalf("export failed: %v", err)
	}
}

func TestChartService_Correlation(t *testing.T) {
	repo := NewMockDatasetRepository()
	id := loadedDataset(t, repo)
	svc := NewChartService(repo, nil)

	payload, err := svc.Correlation(context.Background(), id, domain.CorrelationRequest{Labels: []string{"duration", "summary.deep.minutes"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payload.X) != 2 || payload.Z[0][1] == nil || *payload.Z[0][1] < 0.99 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestChartService_Errors(t *testing.T) {
	repo := NewMockDatasetRepository()
	id := loadedDataset(t, repo)
	svc := NewChartService(repo, nil)
	ctx := context.Background()

	if _, err := svc.Line(ctx, uuid.New(), domain.LineChartRequest{Columns: []string{"duration"}}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Line(ctx, id, domain.LineChartRequest{Columns: []string{"duration"}, Weekday: "Funday"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Scatter(ctx, id, domain.ScatterChartRequest{X: "nope", Y: "duration"}); !errors.Is(err, domain.ErrUnknownColumn) {
		t.Fatalf("expected ErrUnknownColumn, got %v", err)
	}
	if _, err := svc.Correlation(ctx, id, domain.CorrelationRequest{Labels: []string{"type"}}); !errors.Is(err, domain.ErrUnknownColumn) {
		t.Fatalf("expected ErrUnknownColumn, got %v", err)
	}
}
