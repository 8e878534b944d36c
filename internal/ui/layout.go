package ui

import "github.com/charmbracelet/lipgloss"

// Screen regions, top to bottom: header, command bar, chart, status bar, help.
const (
	headerRows = 2
	footerRows = 2

	minChartHeight = 6
	minChartWidth  = 20
)

// LayoutCompactWidth is the threshold below which the header drops details.
const LayoutCompactWidth = 90

// oneRow sizes a bar style to the terminal width and clips it to one row.
func oneRow(style lipgloss.Style, width int) lipgloss.Style {
	return style.Width(width).MaxWidth(width).MaxHeight(1)
}

// chartTop is the screen row of the chart's first line.
func chartTop() int {
	return headerRows
}

func (m Model) chartSize() (width, height int) {
	width = max(minChartWidth, m.width)
	height = max(minChartHeight, m.height-headerRows-footerRows)
	return width, height
}
