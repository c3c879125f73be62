package analysis

import (
	"fmt"
	"math"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"gonum.org/v1/gonum/stat"
)

// Correlate computes the Pearson correlation of every pair of numeric
// columns, using only rows where both values are finite. Labels fix the
// ordering; without labels all numeric columns are used in table order.
func Correlate(table *domain.SleepTable, labels ...string) (*domain.CorrelationMatrix, error) {
	if len(labels) == 0 {
		labels = table.NumericColumns()
	} else {
		numeric := make(map[string]bool)
		for _, c := range table.NumericColumns() {
			numeric[c] = true
		}
		for _, l := range labels {
			if !numeric[l] {
				return nil, fmt.Errorf("%w: %s is not a numeric column", domain.ErrUnknownColumn, l)
			}
		}
	}

	columns := make([][]float64, len(labels))
	for i, l := range labels {
		col, err := table.Float(l)
		if err != nil {
			return nil, err
		}
		columns[i] = col
	}

	values := make([][]float64, len(labels))
	for i := range values {
		values[i] = make([]float64, len(labels))
	}
	for i := range labels {
		for j := i; j < len(labels); j++ {
			r := pairwise(columns[i], columns[j])
			if i == j && !math.IsNaN(r) {
				r = 1
			}
			values[i][j] = r
			values[j][i] = r
		}
	}

	return &domain.CorrelationMatrix{Labels: labels, Values: values}, nil
}

// pairwise correlates the complete observations of x and y.
func pairwise(x, y []float64) float64 {
	var xs, ys []float64
	for k := range x {
		if isFinite(x[k]) && isFinite(y[k]) {
			xs = append(xs, x[k])
			ys = append(ys, y[k])
		}
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	r := stat.Correlation(xs, ys, nil)
	if math.IsInf(r, 0) {
		return math.NaN()
	}
	return r
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ToHeatmap converts a matrix to the {z, x, y} payload; NaN cells become null.
func ToHeatmap(m *domain.CorrelationMatrix) domain.HeatmapPayload {
	z := make([][]*float64, len(m.Values))
	for i, row := range m.Values {
		z[i] = make([]*float64, len(row))
		for j, v := range row {
			if isFinite(v) {
				v := v
				z[i][j] = &v
			}
		}
	}
	return domain.HeatmapPayload{Z: z, X: m.Labels, Y: m.Labels}
}
