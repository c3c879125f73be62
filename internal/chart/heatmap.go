package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/fogleman/gg"
)

const (
	cellSize    = 36
	charWidth   = 7
	barWidth    = 18
	heatPadding = 20
)

// Heatmap draws a correlation matrix with labels in matrix order and a colour bar.
func Heatmap(m *domain.CorrelationMatrix) ([]byte, error) {
	n := len(m.Labels)
	if n == 0 {
		return nil, fmt.Errorf("%w: correlation matrix is empty", domain.ErrNoData)
	}

	longest := 0
	for _, l := range m.Labels {
		if len(l) > longest {
			longest = len(l)
		}
	}
	labelSpace := float64(longest*charWidth + 10)
	left, top := labelSpace+heatPadding, 40.0
	grid := float64(n * cellSize)

	width := int(left + grid + heatPadding*2 + barWidth + 40)
	height := int(top + grid + labelSpace + heatPadding)
	dc := newCanvas(width, height)

	dc.SetColor(axisColor)
	dc.DrawStringAnchored("Correlation Matrix", float64(width)/2, top/2, 0.5, 0.5)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dc.SetColor(divergingColor(m.Values[i][j]))
			dc.DrawRectangle(left+float64(j*cellSize), top+float64(i*cellSize), cellSize, cellSize)
			dc.Fill()
		}
	}

	dc.SetColor(axisColor)
	for i, l := range m.Labels {
		mid := float64(i*cellSize) + cellSize/2
		dc.DrawStringAnchored(l, left-6, top+mid, 1, 0.5)

		// Column labels read bottom-up below the grid
		x, y := left+mid, top+grid+6
		dc.Push()
		dc.RotateAbout(-math.Pi/2, x, y)
		dc.DrawStringAnchored(l, x, y, 1, 0.5)
		dc.Pop()
	}

	colourBar(dc, left+grid+heatPadding, top, grid)
	return encode(dc)
}

func colourBar(dc *gg.Context, x, top, height float64) {
	steps := int(height)
	for s := 0; s < steps; s++ {
		v := 1 - 2*float64(s)/float64(steps)
		dc.SetColor(divergingColor(v))
		dc.DrawRectangle(x, top+float64(s), barWidth, 1)
		dc.Fill()
	}
	dc.SetColor(axisColor)
	dc.DrawStringAnchored("1", x+barWidth+4, top, 0, 0.5)
	dc.DrawStringAnchored("0", x+barWidth+4, top+height/2, 0, 0.5)
	dc.DrawStringAnchored("-1", x+barWidth+4, top+height, 0, 0.5)
}

// divergingColor maps -1 to blue, 0 to white and 1 to red. NaN is grey.
func divergingColor(v float64) color.Color {
	if !finite(v) {
		return missColor
	}
	v = math.Max(-1, math.Min(1, v))
	fade := func(c float64) uint8 { return uint8(math.Round(255 - (255-c)*math.Abs(v))) }
	if v >= 0 {
		return color.RGBA{fade(0xd6), fade(0x27), fade(0x28), 0xff}
	}
	return color.RGBA{fade(0x1f), fade(0x77), fade(0xb4), 0xff}
}
