package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Dataset is a loaded sleep table held in memory for the session.
type Dataset struct {
	ID        uuid.UUID
	Name      string
	Sources   []string
	Table     *SleepTable
	Excluded  int
	CreatedAt time.Time
}

// DatasetResponse is the response body for dataset endpoints.
// @Description Loaded sleep dataset metadata.
type DatasetResponse struct {
	// Unique dataset identifier
	ID uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Display name
	Name string `json:"name" example:"fitbit 2020"`
	// Names of the export sources, in load order
	Sources []string `json:"sources" example:"sleep-2020-03-09.json,sleep-2020-04-08.json"`
	// Table columns in order
	Columns []string `json:"columns"`
	// Number of nights retained
	Rows int `json:"rows" example:"120"`
	// Number of nap records excluded
	Excluded int `json:"excluded" example:"4"`
	// First sleep date
	From time.Time `json:"from" example:"2020-03-09T00:00:00Z"`
	// Last sleep date
	To time.Time `json:"to" example:"2020-07-07T00:00:00Z"`
	// Load timestamp
	CreatedAt time.Time `json:"created_at" example:"2024-01-16T07:05:00Z"`
}

func (d *Dataset) ToResponse() DatasetResponse {
	return DatasetResponse{
		ID:        d.ID,
		Name:      d.Name,
		Sources:   d.Sources,
		Columns:   d.Table.Columns,
		Rows:      d.Table.Len(),
		Excluded:  d.Excluded,
		From:      d.Table.From(),
		To:        d.Table.To(),
		CreatedAt: d.CreatedAt,
	}
}

// DatasetListResponse lists loaded datasets.
// @Description Loaded datasets, newest first.
type DatasetListResponse struct {
	Data []DatasetResponse `json:"data"`
}

// RowResponse is one table row with non-finite numbers rendered as null.
// @Description One night of the unified sleep table.
type RowResponse struct {
	// Sleep date (YYYY-MM-DD)
	Date string `json:"date" example:"2020-03-09"`
	// Cells keyed by column name
	Values map[string]any `json:"values"`
}

// ToRowResponse converts a row into its JSON-safe form.
func ToRowResponse(r SleepRow) RowResponse {
	values := make(map[string]any, len(r.Values))
	for k, v := range r.Values {
		if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			values[k] = nil
			continue
		}
		values[k] = v
	}
	return RowResponse{Date: r.Date.Format(DateLayout), Values: values}
}

// DateLayout is the calendar date format of the export and of responses.
const DateLayout = "2006-01-02"

// RowListResponse is the response body for listing table rows.
// @Description Paginated rows of a sleep table.
type RowListResponse struct {
	Columns    []string           `json:"columns"`
	Data       []RowResponse      `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJvZmZzZXQiOjIwLCJkYXRlIjoiMjAyMC0wMy0yOSJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// RowFilter contains paging parameters for listing rows.
type RowFilter struct {
	Limit  int
	Cursor string
}

// LineChartRequest selects the columns of a time-series chart.
type LineChartRequest struct {
	Columns []string `json:"columns" validate:"required,min=1,max=8,dive,required"`
	Weekday string   `json:"weekday" validate:"omitempty,weekday"`
}

// ScatterChartRequest selects the two axes of a scatter chart.
type ScatterChartRequest struct {
	X string `json:"x" validate:"required"`
	Y string `json:"y" validate:"required"`
}

// CorrelationRequest optionally fixes the label ordering of a correlation matrix.
type CorrelationRequest struct {
	Labels []string `json:"labels" validate:"omitempty,dive,required"`
}
