package chart

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

const (
	glyphPoint     = '•'
	glyphConnector = '│'
	glyphBand      = '░'
	glyphCursor    = '┊'
)

// Styles colors the chart. A nil *Styles renders plain text.
type Styles struct {
	Line   lipgloss.Style
	Band   lipgloss.Style // applied to band cells, usually a background
	Cursor lipgloss.Style
	Axis   lipgloss.Style
	Label  lipgloss.Style
}

// Options configure a render.
type Options struct {
	Width  int
	Height int
	// Band highlights positions lo..hi inclusive while a selection is dragged.
	Band     bool
	BandLo   int
	BandHi   int
	Cursor   int // NoPosition hides the cursor
	Styles   *Styles
	Empty    string // shown instead of the plot when there are no points
	NoLabels bool
}

type cellKind int

const (
	cellEmpty cellKind = iota
	cellLine
	cellBand
	cellBandLine
	cellCursor
)

// Render draws points as a line chart and returns it with its layout.
func Render(points []Point, opts Options) (string, Layout) {
	layout := NewLayout(points, opts.Width, opts.Height)
	r := renderer{layout: layout, opts: opts}
	if len(points) == 0 {
		return r.empty(), layout
	}
	return r.render(points), layout
}

type renderer struct {
	layout Layout
	opts   Options
}

func (r renderer) empty() string {
	msg := r.opts.Empty
	if msg == "" {
		msg = "No data"
	}
	width := r.layout.Width()
	lines := make([]string, r.layout.Height())
	for i := range lines {
		lines[i] = strings.Repeat(" ", width)
	}
	mid := len(lines) / 2
	pad := max(0, (width-utf8.RuneCountInString(msg))/2)
	lines[mid] = strings.Repeat(" ", pad) + r.paint(cellEmpty, msg)
	return strings.Join(lines, "\n")
}

func (r renderer) render(points []Point) string {
	l := r.layout
	grid := make([][]rune, l.PlotHeight)
	for row := range grid {
		grid[row] = []rune(strings.Repeat(" ", l.PlotWidth))
	}

	lastRow := -1
	for col := 0; col < l.PlotWidth; col++ {
		pos := l.PositionAtColumn(col)
		row := l.rowOf(points[pos].Value)
		if lastRow >= 0 {
			lo, hi := lastRow, row
			if lo > hi {
				lo, hi = hi, lo
			}
			for rr := lo + 1; rr < hi; rr++ {
				grid[rr][col] = glyphConnector
			}
		}
		grid[row][col] = glyphPoint
		lastRow = row
	}

	cursorCol := -1
	if r.opts.Cursor >= 0 && r.opts.Cursor < len(points) {
		cursorCol = l.ColumnOf(r.opts.Cursor)
	}

	labels := r.yLabels()
	lines := make([]string, 0, l.Height())
	for row := 0; row < l.PlotHeight; row++ {
		var b strings.Builder
		b.WriteString(r.paint(cellEmpty, padLeft(labels[row], l.AxisWidth-1-axisGap)+strings.Repeat(" ", axisGap)))
		b.WriteString(r.axis("┤", "│", labels[row] != ""))
		b.WriteString(r.plotRow(grid[row], cursorCol))
		lines = append(lines, b.String())
	}

	lines = append(lines, r.paintAxis(strings.Repeat(" ", l.AxisWidth-1)+"└"+strings.Repeat("─", l.PlotWidth)))
	if !r.opts.NoLabels {
		lines = append(lines, r.xLabels(points))
	}
	return strings.Join(lines, "\n")
}

// plotRow renders one grid row, grouping runs of equally styled cells.
func (r renderer) plotRow(cells []rune, cursorCol int) string {
	var out strings.Builder
	var run strings.Builder
	runKind := cellEmpty
	flush := func() {
		if run.Len() > 0 {
			out.WriteString(r.paint(runKind, run.String()))
			run.Reset()
		}
	}

	for col, ch := range cells {
		kind := cellEmpty
		inBand := r.inBand(col)
		switch {
		case ch != ' ' && inBand:
			kind = cellBandLine
		case ch != ' ':
			kind = cellLine
		case inBand:
			kind = cellBand
			if r.opts.Styles == nil {
				ch = glyphBand
			}
		case col == cursorCol:
			kind = cellCursor
			ch = glyphCursor
		}
		if kind != runKind {
			flush()
			runKind = kind
		}
		run.WriteRune(ch)
	}
	flush()
	return out.String()
}

func (r renderer) inBand(col int) bool {
	if !r.opts.Band {
		return false
	}
	pos := r.layout.PositionAtColumn(col)
	return pos >= r.opts.BandLo && pos <= r.opts.BandHi
}

func (r renderer) yLabels() []string {
	l := r.layout
	labels := make([]string, l.PlotHeight)
	labels[0] = formatValue(l.Max)
	labels[l.PlotHeight-1] = formatValue(l.Min)
	if l.PlotHeight >= 5 && l.Max > l.Min {
		labels[l.PlotHeight/2] = formatValue(l.Min + (l.Max-l.Min)*float64(l.PlotHeight-1-l.PlotHeight/2)/float64(l.PlotHeight-1))
	}
	return labels
}

// xLabels places the first, middle and last labels under the plot when they fit.
func (r renderer) xLabels(points []Point) string {
	l := r.layout
	row := []rune(strings.Repeat(" ", l.PlotWidth))
	place := func(label string, at int) bool {
		runes := []rune(label)
		if at < 0 || at+len(runes) > len(row) {
			return false
		}
		for i := at; i < at+len(runes); i++ {
			if row[i] != ' ' || (i > 0 && i == at && row[i-1] != ' ') {
				return false
			}
		}
		copy(row[at:], runes)
		return true
	}

	first := points[0].Label
	last := points[len(points)-1].Label
	place(first, 0)
	if len(points) > 1 {
		place(last, l.PlotWidth-utf8.RuneCountInString(last))
	}
	if len(points) > 2 {
		mid := points[len(points)/2].Label
		col := l.ColumnOf(len(points) / 2)
		place(mid, col-utf8.RuneCountInString(mid)/2)
	}
	return strings.Repeat(" ", l.AxisWidth) + r.paintLabel(strings.TrimRight(string(row), " "))
}

func (r renderer) axis(tick, plain string, withTick bool) string {
	if withTick {
		return r.paintAxis(tick)
	}
	return r.paintAxis(plain)
}

func (r renderer) paint(kind cellKind, text string) string {
	s := r.opts.Styles
	if s == nil {
		return text
	}
	switch kind {
	case cellLine:
		return s.Line.Render(text)
	case cellBand:
		return s.Band.Render(text)
	case cellBandLine:
		return s.Line.Inherit(s.Band).Render(text)
	case cellCursor:
		return s.Cursor.Render(text)
	default:
		return s.Label.Render(text)
	}
}

func (r renderer) paintAxis(text string) string {
	if r.opts.Styles == nil {
		return text
	}
	return r.opts.Styles.Axis.Render(text)
}

func (r renderer) paintLabel(text string) string {
	if r.opts.Styles == nil {
		return text
	}
	return r.opts.Styles.Label.Render(text)
}

func padLeft(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}
