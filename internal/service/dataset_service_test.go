package service

import (
	"context"
	"errors"
	"testing"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/fitbit"
	"github.com/blaisecz/fitbit-sleep/internal/logger"
	"github.com/blaisecz/fitbit-sleep/internal/metrics"
	"github.com/google/uuid"
)

// Mocks are defined in mocks_test.go

func newDatasetService(repo *MockDatasetRepository) DatasetService {
	return NewDatasetService(repo, metrics.NewMetrics(), logger.Nop())
}

func TestDatasetService_Load(t *testing.T) {
	repo := NewMockDatasetRepository()
	svc := newDatasetService(repo)

	d, err := svc.Load(context.Background(), LoadRequest{
		Sources: []fitbit.Source{exportSource("sleep-2020-03-09.json", 3), exportSource("sleep-2020-04-08.json", 2)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Name != "sleep-2020-03-09.json" {
		t.Fatalf("expected name from first source, got %q", d.Name)
	}
	if d.Table.Len() != 5 || d.Excluded != 2 {
		t.Fatalf("expected 5 rows and 2 naps excluded, got %d and %d", d.Table.Len(), d.Excluded)
	}
	if _, ok := repo.datasets[d.ID]; !ok {
		t.Fatalf("dataset was not stored")
	}
	if len(d.Sources) != 2 || d.Sources[1] != "sleep-2020-04-08.json" {
		t.Fatalf("unexpected sources: %v", d.Sources)
	}
}

func TestDatasetService_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		sources []fitbit.Source
		repoErr error
		wantErr error
	}{
		{"no sources", nil, nil, domain.ErrInvalidInput},
		{"malformed", []fitbit.Source{fitbit.BytesSource{Label: "bad.json", Data: []byte("{")}}, nil, domain.ErrMalformedSource},
		{"repository failure", []fitbit.Source{exportSource("a.json", 1)}, errors.New("boom"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockDatasetRepository()
			repo.err = tt.repoErr
			_, err := newDatasetService(repo).Load(context.Background(), LoadRequest{Sources: tt.sources})
			if err == nil {
				t.Fatalf("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDatasetService_Rows(t *testing.T) {
	repo := NewMockDatasetRepository()
	svc := newDatasetService(repo)
	ctx := context.Background()

	d, err := svc.Load(ctx, LoadRequest{Name: "march", Sources: []fitbit.Source{exportSource("a.json", 5)}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	page, err := svc.Rows(ctx, d.ID, domain.RowFilter{Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Data) != 2 || !page.Pagination.HasMore || page.Data[0].Date != "2020-03-09" {
		t.Fatalf("unexpected first page: %+v", page)
	}

	var dates []string
	cursor := ""
	for {
		page, err := svc.Rows(ctx, d.ID, domain.RowFilter{Limit: 2, Cursor: cursor})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, r := range page.Data {
			dates = append(dates, r.Date)
		}
		if !page.Pagination.HasMore {
			break
		}
		cursor = page.Pagination.NextCursor
	}
	if len(dates) != 5 || dates[4] != "2020-03-13" {
		t.Fatalf("pagination did not walk all rows: %v", dates)
	}

	if _, err := svc.Rows(ctx, d.ID, domain.RowFilter{Cursor: "not-a-cursor"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for malformed cursor, got %v", err)
	}
	if _, err := svc.Rows(ctx, uuid.New(), domain.RowFilter{}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDatasetService_RowsStaleCursor(t *testing.T) {
	repo := NewMockDatasetRepository()
	svc := newDatasetService(repo)
	ctx := context.Background()

	long, _ := svc.Load(ctx, LoadRequest{Sources: []fitbit.Source{exportSource("a.json", 5)}})
	short, _ := svc.Load(ctx, LoadRequest{Sources: []fitbit.Source{exportSource("b.json", 1)}})

	page, err := svc.Rows(ctx, long.ID, domain.RowFilter{Limit: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Rows(ctx, short.ID, domain.RowFilter{Cursor: page.Pagination.NextCursor}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for foreign cursor, got %v", err)
	}
}

func TestDatasetService_Summary(t *testing.T) {
	repo := NewMockDatasetRepository()
	svc := newDatasetService(repo)
	ctx := context.Background()

	d, _ := svc.Load(ctx, LoadRequest{Sources: []fitbit.Source{exportSource("a.json", 8)}})
	s, err := svc.Summary(ctx, d.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Nights != 8 || s.Duration.Count != 8 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.Chronotype.Chronotype == domain.ChronotypeUnknown {
		t.Fatalf("expected a chronotype with 8 nights")
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{domain.ErrShapeMismatch, "shape_mismatch"},
		{errors.Join(errors.New("wrapped"), domain.ErrInvalidDate), "invalid_date"},
		{context.Canceled, "canceled"},
		{errors.New("other"), "other"},
	}

	for _, tt := range tests {
		if got := ErrorKind(tt.err); got != tt.want {
			t.Fatalf("ErrorKind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
