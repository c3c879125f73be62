package analysis

import (
	"math"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Finite drops NaN and infinite values.
func Finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

// Describe calculates descriptive statistics over the finite values.
func Describe(values []float64) domain.DescriptiveStats {
	finite := Finite(values)
	if len(finite) == 0 {
		return domain.DescriptiveStats{}
	}

	avg, std := stat.MeanStdDev(finite, nil)
	if len(finite) < 2 {
		std = 0
	}

	return domain.DescriptiveStats{
		Avg:   round2(avg),
		Std:   round2(std),
		Min:   round2(floats.Min(finite)),
		Max:   round2(floats.Max(finite)),
		Count: len(finite),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
