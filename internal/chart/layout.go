package chart

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// NoPosition is returned when a column does not map to a point.
const NoPosition = -1

const (
	minPlotWidth  = 2
	minPlotHeight = 2
	xAxisRows     = 2 // axis line + label row
	axisGap       = 1
)

// Point is one plotted value with its x label.
type Point struct {
	Label string
	Value float64
}

// Layout maps terminal cells to point positions for a given chart size.
type Layout struct {
	Points     int
	AxisWidth  int // y labels plus the axis line
	PlotWidth  int
	PlotHeight int
	Min, Max   float64
}

// NewLayout sizes a chart of width x height cells for points.
func NewLayout(points []Point, width, height int) Layout {
	l := Layout{Points: len(points)}
	if len(points) > 0 {
		l.Min, l.Max = points[0].Value, points[0].Value
		for _, p := range points[1:] {
			l.Min = math.Min(l.Min, p.Value)
			l.Max = math.Max(l.Max, p.Value)
		}
	}
	labelWidth := max(utf8.RuneCountInString(formatValue(l.Min)), utf8.RuneCountInString(formatValue(l.Max)))
	l.AxisWidth = labelWidth + axisGap + 1
	l.PlotWidth = max(minPlotWidth, width-l.AxisWidth)
	l.PlotHeight = max(minPlotHeight, height-xAxisRows)
	return l
}

// Width returns the total rendered width.
func (l Layout) Width() int {
	return l.AxisWidth + l.PlotWidth
}

// Height returns the total rendered height.
func (l Layout) Height() int {
	return l.PlotHeight + xAxisRows
}

// Contains reports whether the cell (x, y), relative to the chart's top-left
// corner, lies inside the plotted area.
func (l Layout) Contains(x, y int) bool {
	col := x - l.AxisWidth
	return col >= 0 && col < l.PlotWidth && y >= 0 && y < l.PlotHeight
}

// PositionAt returns the point position under cell (x, y), or NoPosition when
// the cell is outside the plotted area.
func (l Layout) PositionAt(x, y int) int {
	if !l.Contains(x, y) {
		return NoPosition
	}
	return l.PositionAtColumn(x - l.AxisWidth)
}

// PositionAtColumn maps a plot column to the point drawn there.
func (l Layout) PositionAtColumn(col int) int {
	if l.Points == 0 || col < 0 || col >= l.PlotWidth {
		return NoPosition
	}
	if l.Points == 1 || l.PlotWidth == 1 {
		return 0
	}
	step := float64(l.Points-1) / float64(l.PlotWidth-1)
	return int(math.Round(float64(col) * step))
}

// ColumnOf returns the plot column where position pos is drawn.
func (l Layout) ColumnOf(pos int) int {
	if l.Points <= 1 || pos <= 0 {
		return 0
	}
	if pos >= l.Points-1 {
		return l.PlotWidth - 1
	}
	step := float64(l.PlotWidth-1) / float64(l.Points-1)
	col := int(math.Round(float64(pos) * step))
	// Columns are sampled, so walk to the first column that actually shows pos
	// or a later point.
	for col > 0 && l.PositionAtColumn(col-1) >= pos {
		col--
	}
	for col < l.PlotWidth-1 && l.PositionAtColumn(col) < pos {
		col++
	}
	return col
}

// rowOf returns the grid row for value v, 0 being the top row.
func (l Layout) rowOf(v float64) int {
	if l.Max <= l.Min {
		return l.PlotHeight / 2
	}
	ratio := (v - l.Min) / (l.Max - l.Min)
	row := l.PlotHeight - 1 - int(math.Round(ratio*float64(l.PlotHeight-1)))
	return min(max(row, 0), l.PlotHeight-1)
}

func formatValue(v float64) string {
	return fmt.Sprintf("%.1f°C", v)
}
