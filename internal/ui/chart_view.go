package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/templog/internal/chart"
	"github.com/five82/templog/internal/plot"
	"github.com/five82/templog/internal/reading"
)

// chartOptions builds the render options for the current model state. View and
// mouse hit-testing share it so both see the same layout.
func (m Model) chartOptions() chart.Options {
	width, height := m.chartSize()
	opts := chart.Options{
		Width:  width,
		Height: height,
		Cursor: chart.NoPosition,
		Styles: m.theme.ChartStyles(),
		Empty:  emptyMessage,
	}
	if m.snapshot.Loaded {
		opts.Empty = "No temperature readings in " + m.snapshot.Path
	}
	if len(m.displayed()) > 0 {
		opts.Cursor = m.cursor
	}
	if lo, hi, ok := m.zoom.Band(); ok {
		opts.Band, opts.BandLo, opts.BandHi = true, lo, hi
	}
	return opts
}

func (m Model) chartLayout() chart.Layout {
	opts := m.chartOptions()
	return chart.NewLayout(plot.Points(m.displayed()), opts.Width, opts.Height)
}

func (m Model) renderChart() string {
	out, _ := chart.Render(plot.Points(m.displayed()), m.chartOptions())
	return out
}

// focused returns the reading under the mouse, falling back to the cursor.
func (m Model) focused() (reading.Reading, bool) {
	displayed := m.displayed()
	pos := m.cursor
	if m.hover != chart.NoPosition {
		pos = m.hover
	}
	if pos < 0 || pos >= len(displayed) {
		return reading.Reading{}, false
	}
	return displayed[pos], true
}

// renderStatusBar shows the focused reading and the selection or zoom bounds.
func (m Model) renderStatusBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	var parts []string
	if r, ok := m.focused(); ok {
		parts = append(parts,
			bg.Render(r.Label(), styles.Text),
			bg.Render(fmt.Sprintf("%.1f°C", r.Celsius), styles.WarningText.Bold(true)),
			bg.Render(fmt.Sprintf("#%d", r.Index), styles.FaintText),
		)
	}

	displayed := m.displayed()
	if lo, hi, ok := m.zoom.Band(); ok {
		parts = append(parts, bg.Render(
			fmt.Sprintf("selecting %s → %s (%d points)", displayed[lo].Label(), displayed[hi].Label(), hi-lo+1),
			styles.AccentText))
	} else if sel, ok := m.zoom.Selection(); ok {
		parts = append(parts, bg.Render(
			fmt.Sprintf("zoom #%d-#%d of %d", sel.Start, sel.End, len(m.zoom.Full())),
			styles.MutedText))
	}

	if lo, hi, ok := reading.Bounds(displayed); ok {
		parts = append(parts, bg.Render(fmt.Sprintf("min %.1f°C  max %.1f°C", lo, hi), styles.FaintText))
	}

	return oneRow(styles.Footer.Background(lipgloss.Color(m.theme.SurfaceAlt)), m.width).
		Render(bg.Join(parts, "  "))
}

func (m Model) renderFooter() string {
	return m.help.View(m.keys)
}
