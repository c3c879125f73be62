package domain

import "time"

// ChronotypeType represents the sleeper's chronotype classification.
// @Description Chronotype classification based on mid-sleep time.
type ChronotypeType string

const (
	ChronotypeEarlyBird    ChronotypeType = "early_bird"
	ChronotypeIntermediate ChronotypeType = "intermediate"
	ChronotypeNightOwl     ChronotypeType = "night_owl"
	ChronotypeUnknown      ChronotypeType = "unknown"
)

// ChronotypeResult contains the computed chronotype and supporting data.
// @Description Chronotype analysis result.
type ChronotypeResult struct {
	// Chronotype classification
	Chronotype ChronotypeType `json:"chronotype" example:"intermediate"`
	// Median mid-sleep time (HH:MM format)
	MidSleepLocalTime string `json:"mid_sleep_local_time" example:"03:45"`
	// Minutes after midnight for mid-sleep
	MidSleepMinutesAfterMidnight int `json:"mid_sleep_minutes_after_midnight" example:"225"`
	// Number of nights used in calculation
	SleepsUsed int `json:"sleeps_used" example:"28"`
}

// DescriptiveStats holds basic statistical measures.
// @Description Basic statistical measures for a column.
type DescriptiveStats struct {
	Avg   float64 `json:"avg" example:"412.5"`
	Std   float64 `json:"std" example:"38.2"`
	Min   float64 `json:"min" example:"301"`
	Max   float64 `json:"max" example:"520"`
	Count int     `json:"count" example:"30"`
}

// DatasetSummary aggregates a sleep table.
// @Description Summary statistics of a loaded sleep dataset.
type DatasetSummary struct {
	// Number of nights in the table
	Nights int `json:"nights" example:"120"`
	// First sleep date
	From time.Time `json:"from" example:"2020-03-09T00:00:00Z"`
	// Last sleep date
	To time.Time `json:"to" example:"2020-07-07T00:00:00Z"`
	// Duration statistics in minutes
	Duration DescriptiveStats `json:"duration"`
	// Efficiency statistics (percentage)
	Efficiency DescriptiveStats `json:"efficiency"`
	// Sleep start statistics in minutes after midnight (late starts shifted by 1440)
	StartMin DescriptiveStats `json:"start_min"`
	// Mean share of duration per stage, keyed by stage name
	StagePercent map[string]float64 `json:"stage_percent"`
	// Chronotype derived from mid-sleep
	Chronotype ChronotypeResult `json:"chronotype"`
}

// CorrelationMatrix holds pairwise correlations in label order.
type CorrelationMatrix struct {
	Labels []string    `json:"labels"`
	Values [][]float64 `json:"values"`
}

// HeatmapPayload is the {z, x, y} form consumed by heatmap widgets.
// @Description Correlation heatmap payload.
type HeatmapPayload struct {
	Z [][]*float64 `json:"z"`
	X []string     `json:"x"`
	Y []string     `json:"y"`
}

// InsightsOutput contains the structured output from the LLM.
// @Description LLM-generated explanation of a sleep dataset.
type InsightsOutput struct {
	// Markdown explanation shown above the dashboard charts
	Markdown string `json:"markdown" example:"Between 2020-03-09 and 2020-07-07 you slept..."`
	// Observations about patterns (3-6 items)
	Observations []string `json:"observations" example:"[\"Deep sleep share is higher on nights that start before midnight\"]"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Dataset summary plus LLM insights.
type InsightsResponse struct {
	Summary  DatasetSummary `json:"summary"`
	Insights InsightsOutput `json:"insights"`
	// Trace ID (only present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
}

// InsightsContext is the JSON context handed to the LLM.
type InsightsContext struct {
	Dataset string         `json:"dataset"`
	Columns []string       `json:"columns"`
	Summary DatasetSummary `json:"summary"`
	// Strongest correlations with duration, keyed by column
	DurationCorrelations map[string]float64 `json:"duration_correlations,omitempty"`
}
