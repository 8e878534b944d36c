package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/templog/internal/chart"
	"github.com/five82/templog/internal/zoom"
)

// handleKey processes keyboard input outside of modals.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		m.modal = newOpenModal(m.snapshot.Path)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Refresh):
		if m.snapshot.Path == "" || m.loading {
			return m, nil
		}
		return m.startLoad(m.snapshot.Path)

	case key.Matches(msg, m.keys.Reset):
		m.zoom = m.zoom.Reset()
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		return m.toggleKeyboardSelection(), nil

	case key.Matches(msg, m.keys.Left):
		return m.moveCursor(m.cursor - 1), nil
	case key.Matches(msg, m.keys.Right):
		return m.moveCursor(m.cursor + 1), nil
	case key.Matches(msg, m.keys.Start):
		return m.moveCursor(0), nil
	case key.Matches(msg, m.keys.End):
		return m.moveCursor(len(m.displayed()) - 1), nil
	}

	return m, nil
}

// toggleKeyboardSelection anchors a selection at the cursor, or completes the
// one in progress.
func (m Model) toggleKeyboardSelection() Model {
	if len(m.displayed()) == 0 {
		return m
	}
	if !m.zoom.Dragging() {
		m.zoom = m.zoom.BeginDrag(m.cursor)
		return m
	}
	return m.applyRelease(m.cursor)
}

func (m Model) moveCursor(pos int) Model {
	n := len(m.displayed())
	if n == 0 {
		return m
	}
	m.cursor = min(max(pos, 0), n-1)
	m.hover = chart.NoPosition
	if m.zoom.Dragging() {
		m.zoom = m.zoom.UpdateDrag(m.cursor)
	}
	return m
}

// handleMouse drives the zoom controller from left-button drags on the plot.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pos := m.positionAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if pos == chart.NoPosition {
			return m, nil
		}
		m.zoom = m.zoom.BeginDrag(pos)
		m.cursor = pos
		m.hover = pos

	case tea.MouseActionMotion:
		m.hover = pos
		if m.zoom.Dragging() {
			m.zoom = m.zoom.UpdateDrag(offPlot(pos))
		}

	case tea.MouseActionRelease:
		if m.zoom.Dragging() {
			m = m.applyRelease(offPlot(pos))
		}
	}
	return m, nil
}

// applyRelease completes a drag at pos. The cursor moves to the start of the
// new range when the view changed.
func (m Model) applyRelease(pos int) Model {
	before, _ := m.zoom.Selection()
	m.zoom = m.zoom.Release(pos)
	if after, ok := m.zoom.Selection(); ok && (after.Start != before.Start || after.End != before.End) {
		m.cursor = 0
		m.hover = chart.NoPosition
	}
	m.clampCursor()
	return m
}

func (m *Model) clampCursor() {
	n := len(m.displayed())
	switch {
	case n == 0:
		m.cursor = 0
	case m.cursor >= n:
		m.cursor = n - 1
	case m.cursor < 0:
		m.cursor = 0
	}
}

// positionAt maps a screen cell to a displayed position.
func (m Model) positionAt(x, y int) int {
	return m.chartLayout().PositionAt(x, y-chartTop())
}

func offPlot(pos int) int {
	if pos == chart.NoPosition {
		return zoom.OffPlot
	}
	return pos
}
