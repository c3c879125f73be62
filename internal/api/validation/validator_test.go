package validation

import (
	"testing"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
)

func TestValidate_LineChartRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       domain.LineChartRequest
		wantField string
	}{
		{"valid", domain.LineChartRequest{Columns: []string{"rem.%"}, Weekday: "friday"}, ""},
		{"no weekday", domain.LineChartRequest{Columns: []string{"rem.%"}}, ""},
		{"no columns", domain.LineChartRequest{}, "columns"},
		{"bad weekday", domain.LineChartRequest{Columns: []string{"rem.%"}, Weekday: "Funday"}, "weekday"},
		{"too many", domain.LineChartRequest{Columns: make9()}, "columns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.req)
			if tt.wantField == "" {
				if errs != nil {
					t.Fatalf("unexpected errors: %+v", errs)
				}
				return
			}
			if len(errs) == 0 || errs[0].Field != tt.wantField {
				t.Fatalf("expected error on %s, got %+v", tt.wantField, errs)
			}
		})
	}
}

func make9() []string {
	cols := make([]string, 9)
	for i := range cols {
		cols[i] = "duration"
	}
	return cols
}

func TestToSnakeCase(t *testing.T) {
	if got := toSnakeCase("NextCursor"); got != "next_cursor" {
		t.Fatalf("unexpected snake case: %s", got)
	}
}
