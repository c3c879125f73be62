// Package chart renders the dashboard charts of a sleep table as PNG images.
package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

var (
	background = color.White
	axisColor  = color.RGBA{0x33, 0x33, 0x33, 0xff}
	gridColor  = color.RGBA{0xe5, 0xe5, 0xe5, 0xff}
	markColor  = color.RGBA{0x1f, 0x77, 0xb4, 0x80}
	missColor  = color.RGBA{0xd0, 0xd0, 0xd0, 0xff}

	// palette follows the usual ten-colour categorical scheme.
	palette = []color.Color{
		color.RGBA{0x1f, 0x77, 0xb4, 0xff},
		color.RGBA{0xff, 0x7f, 0x0e, 0xff},
		color.RGBA{0x2c, 0xa0, 0x2c, 0xff},
		color.RGBA{0xd6, 0x27, 0x28, 0xff},
		color.RGBA{0x94, 0x67, 0xbd, 0xff},
		color.RGBA{0x8c, 0x56, 0x4b, 0xff},
		color.RGBA{0xe3, 0x77, 0xc2, 0xff},
		color.RGBA{0x7f, 0x7f, 0x7f, 0xff},
		color.RGBA{0xbc, 0xbd, 0x22, 0xff},
		color.RGBA{0x17, 0xbe, 0xcf, 0xff},
	}
)

const yTicks = 5

// frame maps data coordinates onto the plot area of a canvas.
type frame struct {
	dc                       *gg.Context
	left, right, top, bottom float64
	xMin, xMax, yMin, yMax   float64
}

func newCanvas(width, height int) *gg.Context {
	dc := gg.NewContext(width, height)
	dc.SetColor(background)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)
	return dc
}

func newFrame(dc *gg.Context, xMin, xMax, yMin, yMax float64) *frame {
	if xMin == xMax {
		xMin, xMax = xMin-1, xMax+1
	}
	if yMin == yMax {
		yMin, yMax = yMin-1, yMax+1
	} else {
		pad := (yMax - yMin) * 0.05
		yMin, yMax = yMin-pad, yMax+pad
	}
	return &frame{
		dc:     dc,
		left:   70,
		right:  float64(dc.Width()) - 20,
		top:    40,
		bottom: float64(dc.Height()) - 50,
		xMin:   xMin, xMax: xMax,
		yMin: yMin, yMax: yMax,
	}
}

func (f *frame) px(x float64) float64 {
	return f.left + (x-f.xMin)/(f.xMax-f.xMin)*(f.right-f.left)
}

func (f *frame) py(y float64) float64 {
	return f.bottom - (y-f.yMin)/(f.yMax-f.yMin)*(f.bottom-f.top)
}

// axes draws the plot border, horizontal grid, y tick labels and titles.
func (f *frame) axes(title, xLabel, yLabel string) {
	dc := f.dc

	dc.SetLineWidth(1)
	for i := 0; i <= yTicks; i++ {
		v := f.yMin + (f.yMax-f.yMin)*float64(i)/yTicks
		y := f.py(v)
		dc.SetColor(gridColor)
		dc.DrawLine(f.left, y, f.right, y)
		dc.Stroke()
		dc.SetColor(axisColor)
		dc.DrawStringAnchored(formatTick(v), f.left-6, y, 1, 0.5)
	}

	dc.SetColor(axisColor)
	dc.DrawRectangle(f.left, f.top, f.right-f.left, f.bottom-f.top)
	dc.Stroke()

	dc.DrawStringAnchored(title, float64(dc.Width())/2, f.top/2, 0.5, 0.5)
	if xLabel != "" {
		dc.DrawStringAnchored(xLabel, (f.left+f.right)/2, f.bottom+36, 0.5, 0.5)
	}
	if yLabel != "" {
		drawVertical(dc, yLabel, 14, (f.top+f.bottom)/2)
	}
}

// xTicks labels the x axis at n evenly spaced positions.
func (f *frame) xTicks(n int, label func(float64) string) {
	dc := f.dc
	dc.SetColor(axisColor)
	for i := 0; i <= n; i++ {
		v := f.xMin + (f.xMax-f.xMin)*float64(i)/float64(n)
		x := f.px(v)
		dc.DrawLine(x, f.bottom, x, f.bottom+4)
		dc.Stroke()
		dc.DrawStringAnchored(label(v), x, f.bottom+16, 0.5, 0.5)
	}
}

func drawVertical(dc *gg.Context, s string, x, y float64) {
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), x, y)
	dc.DrawStringAnchored(s, x, y, 0.5, 0.5)
	dc.Pop()
}

func formatTick(v float64) string {
	if math.Abs(v) < 1e-9 {
		v = 0
	}
	return fmt.Sprintf("%.4g", v)
}

func encode(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// LineFilename names a time-series chart file after its columns.
func LineFilename(columns []string) string {
	return "sleep-" + strings.Join(columns, "-") + ".png"
}

// ScatterFilename names a scatter chart file after its axes.
func ScatterFilename(x, y string) string {
	return "sleep-scatter-" + x + "-" + y + ".png"
}

// HeatmapFilename is the file name of the correlation chart.
const HeatmapFilename = "sleep-correlation.png"
