package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blaisecz/fitbit-sleep/internal/config"
	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/google/uuid"
)

func TestDashboardHandler_Empty(t *testing.T) {
	handler := NewDashboardHandler(&MockDatasetService{}, config.DefaultDashboard())
	rec := httptest.NewRecorder()

	handler.Show(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No dataset loaded") {
		t.Fatalf("expected empty state, got %s", rec.Body.String())
	}
}

func TestDashboardHandler_Dataset(t *testing.T) {
	sample := sampleDataset()
	svc := &MockDatasetService{
		listFunc: func(ctx context.Context) ([]*domain.Dataset, error) {
			return []*domain.Dataset{sample}, nil
		},
		rowsFunc: func(ctx context.Context, id uuid.UUID, filter domain.RowFilter) (*domain.RowListResponse, error) {
			return &domain.RowListResponse{
				Columns: sample.Table.Columns,
				Data:    []domain.RowResponse{domain.ToRowResponse(sample.Table.Rows[0])},
			}, nil
		},
	}
	handler := NewDashboardHandler(svc, config.DefaultDashboard())
	rec := httptest.NewRecorder()

	handler.Show(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	body := rec.Body.String()
	for _, want := range []string{
		"This is sleep data from 2020-03-09",
		"<td>420</td>",
		"/v1/datasets/" + sample.ID.String() + "/charts/line.png?columns=rem.%25%2Cdeep.%25",
		"charts/scatter.png?x=startMin",
		"charts/correlation.png",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("dashboard missing %q:\n%s", want, body)
		}
	}
}

func TestDashboardHandler_SelectDataset(t *testing.T) {
	handler := NewDashboardHandler(&MockDatasetService{}, config.DefaultDashboard())

	rec := httptest.NewRecorder()
	handler.Show(rec, httptest.NewRequest(http.MethodGet, "/?dataset=nope", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.Show(rec, httptest.NewRequest(http.MethodGet, "/?dataset="+uuid.New().String(), nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{21.428571, "21.43"},
		{420.0, "420"},
		{"stages", "stages"},
		{true, "true"},
		{[]any{1.0}, "[1]"},
	}

	for _, tt := range tests {
		if got := formatCell(tt.in); got != tt.want {
			t.Fatalf("formatCell(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
