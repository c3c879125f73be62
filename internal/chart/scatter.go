package chart

import (
	"fmt"
	"math"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
)

const (
	scatterWidth  = 800
	scatterHeight = 600
	pointRadius   = 3
)

// Scatter plots column y against column x, one point per night with both values finite.
func Scatter(table *domain.SleepTable, x, y string) ([]byte, error) {
	xs, err := table.Float(x)
	if err != nil {
		return nil, err
	}
	ys, err := table.Float(y)
	if err != nil {
		return nil, err
	}

	var px, py []float64
	for i := range xs {
		if finite(xs[i]) && finite(ys[i]) {
			px = append(px, xs[i])
			py = append(py, ys[i])
		}
	}
	if len(px) == 0 {
		return nil, fmt.Errorf("%w: no night has both %s and %s", domain.ErrNoData, x, y)
	}

	dc := newCanvas(scatterWidth, scatterHeight)
	f := newFrame(dc, minOf(px), maxOf(px), minOf(py), maxOf(py))
	f.axes("Sleep plot", x, y)
	f.xTicks(5, formatTick)

	dc.SetColor(palette[0])
	for i := range px {
		dc.DrawCircle(f.px(px[i]), f.py(py[i]), pointRadius)
		dc.Fill()
	}
	return encode(dc)
}

func minOf(values []float64) float64 {
	m := math.Inf(1)
	for _, v := range values {
		m = math.Min(m, v)
	}
	return m
}

func maxOf(values []float64) float64 {
	m := math.Inf(-1)
	for _, v := range values {
		m = math.Max(m, v)
	}
	return m
}
