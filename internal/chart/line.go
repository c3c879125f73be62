package chart

import (
	"fmt"
	"math"
	"time"

	"github.com/blaisecz/fitbit-sleep/internal/analysis"
	"github.com/blaisecz/fitbit-sleep/internal/domain"
)

const (
	lineWidth  = 1200
	lineHeight = 400
)

// Line plots columns against the date index with a vertical marker at
// every night whose dayOfWeek is the reference weekday.
func Line(table *domain.SleepTable, columns []string, weekday time.Weekday) ([]byte, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no columns selected", domain.ErrInvalidInput)
	}

	series := make([][]float64, len(columns))
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for i, c := range columns {
		values, err := table.Float(c)
		if err != nil {
			return nil, err
		}
		series[i] = values
		for _, v := range values {
			if finite(v) {
				yMin = math.Min(yMin, v)
				yMax = math.Max(yMax, v)
			}
		}
	}
	if math.IsInf(yMin, 1) {
		return nil, fmt.Errorf("%w: columns %v have no finite values", domain.ErrNoData, columns)
	}

	dates := table.Dates()
	xMin, xMax := dayNumber(dates[0]), dayNumber(dates[len(dates)-1])

	dc := newCanvas(lineWidth, lineHeight)
	f := newFrame(dc, xMin, xMax, yMin, yMax)
	f.axes("Sleep plot", domain.ColumnDateOfSleep, "")
	f.xTicks(6, func(v float64) string {
		return fromDayNumber(v).Format(domain.DateLayout)
	})

	dc.SetColor(markColor)
	dc.SetLineWidth(1)
	for _, d := range analysis.WeeklyMarkers(table, weekday) {
		x := f.px(dayNumber(d))
		dc.DrawLine(x, f.top, x, f.bottom)
		dc.Stroke()
	}

	dc.SetLineWidth(2)
	for i, values := range series {
		dc.SetColor(palette[i%len(palette)])
		penDown := false
		for k, v := range values {
			if !finite(v) {
				penDown = false
				continue
			}
			x, y := f.px(dayNumber(dates[k])), f.py(v)
			if penDown {
				dc.LineTo(x, y)
			} else {
				dc.MoveTo(x, y)
				penDown = true
			}
		}
		dc.Stroke()
	}

	legend(f, columns)
	return encode(dc)
}

func legend(f *frame, names []string) {
	dc := f.dc
	x := f.right - 10
	y := f.top + 12
	for i, name := range names {
		w, _ := dc.MeasureString(name)
		dc.SetColor(palette[i%len(palette)])
		dc.DrawRectangle(x-w-18, y-5, 10, 10)
		dc.Fill()
		dc.SetColor(axisColor)
		dc.DrawStringAnchored(name, x, y, 1, 0.5)
		y += 16
	}
}

func dayNumber(t time.Time) float64 {
	return float64(t.Unix()) / 86400
}

func fromDayNumber(v float64) time.Time {
	return time.Unix(int64(math.Round(v*86400)), 0).UTC()
}
