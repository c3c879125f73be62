package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/llm"
	"github.com/google/uuid"
)

func TestInsightsHandler_GetInsights(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantStatusCode int
	}{
		{"success", nil, http.StatusOK},
		{"not configured", llm.ErrOpenAIUnavailable, http.StatusServiceUnavailable},
		{"request failed", fmt.Errorf("%w: timeout", llm.ErrOpenAIRequest), http.StatusBadGateway},
		{"bad response", llm.ErrOpenAIResponse, http.StatusBadGateway},
		{"unknown dataset", domain.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewInsightsHandler(&MockInsightsService{
				generateFunc: func(ctx context.Context, id uuid.UUID) (*domain.InsightsResponse, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &domain.InsightsResponse{Insights: domain.InsightsOutput{Markdown: "ok"}}, nil
				},
			})

			id := uuid.New().String()
			req := withDatasetID(httptest.NewRequest(http.MethodGet, "/v1/datasets/"+id+"/insights", nil), id)
			rec := httptest.NewRecorder()

			handler.GetInsights(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("expected status %d, got %d", tt.wantStatusCode, rec.Code)
			}
		})
	}
}
