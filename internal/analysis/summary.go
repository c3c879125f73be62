package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
)

const (
	// MinDurationMinutes is the minimum sleep duration to consider (90 minutes).
	MinDurationMinutes = 90

	// MinChronotypeSleeps is the number of nights needed to classify a chronotype.
	MinChronotypeSleeps = 7

	// Chronotype thresholds (minutes after midnight for mid-sleep)
	EarlyBirdThreshold    = 150 // < 150 = early bird (mid-sleep before 2:30 AM)
	IntermediateThreshold = 270 // 150-269 = intermediate, >= 270 = night owl (4:30 AM)
)

// Summarize aggregates a sleep table.
func Summarize(table *domain.SleepTable) domain.DatasetSummary {
	summary := domain.DatasetSummary{
		Nights:       table.Len(),
		From:         table.From(),
		To:           table.To(),
		StagePercent: make(map[string]float64),
	}

	if durations, err := table.Float(domain.ColumnDuration); err == nil {
		summary.Duration = Describe(durations)
	}
	if eff, err := table.Float(domain.ColumnEfficiency); err == nil {
		summary.Efficiency = Describe(eff)
	}
	if starts, err := table.Float(domain.ColumnStartMin); err == nil {
		summary.StartMin = Describe(starts)
	}

	for _, stage := range append(append([]string(nil), domain.Stages...), domain.LegacyStages...) {
		values, err := table.Float(domain.StagePercentColumn(stage))
		if err != nil {
			continue
		}
		if stats := Describe(values); stats.Count > 0 {
			summary.StagePercent[stage] = stats.Avg
		}
	}

	summary.Chronotype = Chronotype(table, MinChronotypeSleeps)
	return summary
}

// Chronotype classifies the median mid-sleep time of nights lasting at
// least MinDurationMinutes.
func Chronotype(table *domain.SleepTable, minSleeps int) domain.ChronotypeResult {
	starts, errStart := table.Float(domain.ColumnStartMin)
	durations, errDur := table.Float(domain.ColumnDuration)

	var midMinutes []int
	if errStart == nil && errDur == nil {
		for i := range starts {
			if !isFinite(starts[i]) || !isFinite(durations[i]) || durations[i] < MinDurationMinutes {
				continue
			}
			midMinutes = append(midMinutes, midSleepMinutes(starts[i]+durations[i]/2))
		}
	}

	result := domain.ChronotypeResult{SleepsUsed: len(midMinutes)}

	// If not enough valid sleeps, return unknown
	if len(midMinutes) == 0 || len(midMinutes) < minSleeps {
		result.Chronotype = domain.ChronotypeUnknown
		return result
	}

	medianMid := median(midMinutes)
	result.MidSleepMinutesAfterMidnight = medianMid
	result.MidSleepLocalTime = minutesToTimeString(medianMid)
	result.Chronotype = classifyChronotype(medianMid)
	return result
}

// midSleepMinutes folds a minute count onto the clock, with evening times
// negative so they sort before early-morning ones.
func midSleepMinutes(m float64) int {
	mid := ((int(math.Round(m)) % 1440) + 1440) % 1440
	if mid >= 720 {
		mid -= 1440
	}
	return mid
}

// median calculates the median of a slice of integers.
func median(values []int) int {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// minutesToTimeString converts minutes after midnight to HH:MM format.
func minutesToTimeString(minutes int) string {
	minutes = ((minutes % 1440) + 1440) % 1440
	h := minutes / 60
	m := minutes % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}

func classifyChronotype(midMinutes int) domain.ChronotypeType {
	if midMinutes < EarlyBirdThreshold {
		return domain.ChronotypeEarlyBird
	}
	if midMinutes < IntermediateThreshold {
		return domain.ChronotypeIntermediate
	}
	return domain.ChronotypeNightOwl
}
