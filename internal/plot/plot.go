// Package plot renders temperature readings as images and terminal charts.
package plot

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/five82/templog/internal/chart"
	"github.com/five82/templog/internal/reading"
)

// ErrTooFewReadings is returned when an image would have no line to draw.
var ErrTooFewReadings = errors.New("at least two readings are needed to plot")

const (
	Title     = "Temperature Over Time"
	XAxisName = "Date and Time"
	YAxisName = "Temperature (°C)"
	Series    = "Temperature"

	DefaultWidth  = 1200
	DefaultHeight = 600
)

// Format selects the image encoding.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// FormatFromPath picks the format from the output file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".svg":
		return SVG, nil
	default:
		return "", fmt.Errorf("unsupported image extension %q (want .png or .svg)", filepath.Ext(path))
	}
}

// Options configure RenderImage. Zero sizes use the defaults.
type Options struct {
	Format Format
	Width  int
	Height int
}

// RenderImage draws readings as a time series image and writes it to w.
func RenderImage(w io.Writer, readings []reading.Reading, opts Options) error {
	if len(readings) < 2 {
		return ErrTooFewReadings
	}

	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	var provider gochart.RendererProvider
	switch opts.Format {
	case PNG, "":
		provider = gochart.PNG
	case SVG:
		provider = gochart.SVG
	default:
		return fmt.Errorf("unsupported format %q", opts.Format)
	}

	times := make([]time.Time, len(readings))
	for i, r := range readings {
		times[i] = r.Timestamp
	}

	ch := gochart.Chart{
		Title:      Title,
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 24, Bottom: 16}},
		XAxis: gochart.XAxis{
			Name:           XAxisName,
			ValueFormatter: gochart.TimeValueFormatterWithFormat(reading.LabelLayout),
			Range:          timeRange(times),
		},
		YAxis: gochart.YAxis{
			Name:  YAxisName,
			Range: valueRange(readings),
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name:    Series,
				XValues: times,
				YValues: reading.Values(readings),
				Style: gochart.Style{
					StrokeColor: drawing.ColorFromHex("ff0000"),
					StrokeWidth: 2,
				},
			},
		},
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("render %s: %w", opts.Format, err)
	}
	return nil
}

// timeRange widens a zero-length time span so the axis stays valid.
func timeRange(times []time.Time) *gochart.ContinuousRange {
	lo, hi := times[0], times[0]
	for _, t := range times[1:] {
		if t.Before(lo) {
			lo = t
		}
		if t.After(hi) {
			hi = t
		}
	}
	if !hi.After(lo) {
		lo, hi = lo.Add(-time.Second), hi.Add(time.Second)
	}
	return &gochart.ContinuousRange{Min: gochart.TimeToFloat64(lo), Max: gochart.TimeToFloat64(hi)}
}

// valueRange pads the temperature span, including a flat line.
func valueRange(readings []reading.Reading) *gochart.ContinuousRange {
	lo, hi, _ := reading.Bounds(readings)
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 0.5
	}
	return &gochart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

// RenderText writes readings as a plain terminal chart.
func RenderText(w io.Writer, readings []reading.Reading, width, height int) error {
	out, _ := chart.Render(Points(readings), chart.Options{
		Width:  width,
		Height: height,
		Cursor: chart.NoPosition,
		Empty:  "No readings",
	})
	_, err := fmt.Fprintln(w, out)
	return err
}

// Points converts readings to chart points labelled by timestamp.
func Points(readings []reading.Reading) []chart.Point {
	points := make([]chart.Point, len(readings))
	for i, r := range readings {
		points[i] = chart.Point{Label: r.Label(), Value: r.Celsius}
	}
	return points
}
