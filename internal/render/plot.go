package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"

	"github.com/World-hackr/Advance-stacked-encoding/internal/envelope"
)

const (
	plotWidth  = 1600
	plotHeight = 400
)

// canvas maps sample space onto a fixed-size image. X spans the sample
// indices, Y the amplitude range with a small margin.
type canvas struct {
	img  *image.NRGBA
	n    int
	yMin float64
	yMax float64
}

func newCanvas(n int, yMin, yMax float64, bg RGB) *canvas {
	img := image.NewNRGBA(image.Rect(0, 0, plotWidth, plotHeight))
	bgc := color.NRGBA{bg.R, bg.G, bg.B, 255}
	for y := 0; y < plotHeight; y++ {
		for x := 0; x < plotWidth; x++ {
			img.SetNRGBA(x, y, bgc)
		}
	}
	if yMax <= yMin {
		yMax = yMin + 1
	}
	return &canvas{img: img, n: n, yMin: yMin, yMax: yMax}
}

func (c *canvas) xPix(x float64) int {
	den := float64(c.n - 1)
	if den < 1 {
		den = 1
	}
	return int(math.Round(x / den * float64(plotWidth-1)))
}

func (c *canvas) yPix(y float64) int {
	t := (y - c.yMin) / (c.yMax - c.yMin)
	return int(math.Round((1 - t) * float64(plotHeight-1)))
}

// line draws a Bresenham segment between two sample-space points.
func (c *canvas) line(x0, y0, x1, y1 float64, col RGB) {
	px0, py0 := c.xPix(x0), c.yPix(y0)
	px1, py1 := c.xPix(x1), c.yPix(y1)
	pc := color.NRGBA{col.R, col.G, col.B, 255}

	dx := absInt(px1 - px0)
	sx := -1
	if px0 < px1 {
		sx = 1
	}
	dy := -absInt(py1 - py0)
	sy := -1
	if py0 < py1 {
		sy = 1
	}
	err := dx + dy

	for {
		if px0 >= 0 && px0 < plotWidth && py0 >= 0 && py0 < plotHeight {
			c.img.SetNRGBA(px0, py0, pc)
		}
		if px0 == px1 && py0 == py1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			px0 += sx
		}
		if e2 <= dx {
			err += dx
			py0 += sy
		}
	}
}

// polyline draws ys against its indices in a single color.
func (c *canvas) polyline(ys []float64, col RGB) {
	for i := 1; i < len(ys); i++ {
		c.line(float64(i-1), ys[i-1], float64(i), ys[i], col)
	}
}

func (c *canvas) save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating plot: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, c.img); err != nil {
		return fmt.Errorf("encoding plot: %w", err)
	}
	return nil
}

// yRange returns the plot amplitude range: the largest magnitude across all
// series, padded by 10%.
func yRange(series ...[]float64) (float64, float64) {
	maxAmp := 0.0
	for _, s := range series {
		if len(s) == 0 {
			continue
		}
		maxAmp = math.Max(maxAmp, math.Abs(floats.Max(s)))
		maxAmp = math.Max(maxAmp, math.Abs(floats.Min(s)))
	}
	if maxAmp == 0 {
		maxAmp = 1
	}
	pad := 0.1 * maxAmp
	return -maxAmp - pad, maxAmp + pad
}

// SaveDrawing writes the editing view: the source waveform as a faint trace
// with the drawn positive and negative envelopes on top.
func SaveDrawing(path string, samples []float64, env *envelope.Envelope, theme Theme) error {
	offset := env.Offset()
	pos := make([]float64, env.Len())
	neg := make([]float64, env.Len())
	for i := range pos {
		pos[i] = env.Positive()[i] + offset
		neg[i] = env.Negative()[i] + offset
	}

	lo, hi := yRange(samples, pos, neg)
	c := newCanvas(len(samples), lo, hi, theme.Background)
	c.polyline(samples, blend(theme.Positive, theme.Background, 0.15))
	c.polyline(pos, theme.Positive)
	c.polyline(neg, theme.Negative)
	return c.save(path)
}

// SaveNatural writes the modified wave as one continuous curve, strictly
// colored by sign. Each segment takes the color of its starting point, with
// zero crossings subdivided so no color bleeds across the axis.
func SaveNatural(path string, modified []float64, theme Theme) error {
	xs := make([]float64, len(modified))
	for i := range xs {
		xs[i] = float64(i)
	}
	pts := PartitionBySign(xs, modified)

	lo, hi := yRange(modified)
	c := newCanvas(len(modified), lo, hi, theme.Background)
	for i := 1; i < len(pts); i++ {
		col := theme.Positive
		if pts[i-1].Tag == TagNegative {
			col = theme.Negative
		}
		c.line(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, col)
	}
	return c.save(path)
}

// SaveComparison writes the original and modified waves overlaid, the
// original dimmed so the reshaped wave reads on top.
func SaveComparison(path string, original, modified []float64, theme Theme) error {
	lo, hi := yRange(original, modified)
	c := newCanvas(len(original), lo, hi, theme.Background)
	c.polyline(original, blend(theme.Negative, theme.Background, 0.6))
	c.polyline(modified, blend(theme.Positive, theme.Background, 0.8))
	return c.save(path)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
