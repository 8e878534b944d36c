package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// emptyMessage is shown in place of the chart before a file is loaded.
const emptyMessage = "Select a temperature log file to visualize the data"

// Header detail levels. The header drops details until it fits on one row.
const (
	headerNoPath = iota
	headerBaseName
	headerFullPath
	headerLoadTime
)

// renderHeader renders the title bar: file, reading counts and load state.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	avail := m.width - styles.Header.GetHorizontalFrameSize()

	detail := headerLoadTime
	if m.width < LayoutCompactWidth {
		detail = headerBaseName
	}
	line := bg.Join(m.headerParts(detail), "  ")
	for detail > headerNoPath && lipgloss.Width(line) > avail {
		detail--
		line = bg.Join(m.headerParts(detail), "  ")
	}

	return oneRow(styles.Header, m.width).Render(line)
}

func (m Model) headerParts(detail int) []string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("templog", styles.Logo)}

	snap := m.snapshot
	if snap.Path != "" && detail >= headerBaseName {
		name := filepath.Base(snap.Path)
		if detail >= headerFullPath {
			name = truncateMiddle(snap.Path, 48)
		}
		parts = append(parts, bg.Render(name, styles.Text.Bold(true)))
	}

	if snap.Loaded {
		parts = append(parts, bg.Render(fmt.Sprintf("%d data points loaded", len(snap.Readings)), styles.MutedText))
	}
	if m.zoom.Zoomed() {
		parts = append(parts, bg.Render(fmt.Sprintf("showing %d points", len(m.displayed())), styles.AccentText))
	}

	if m.loading {
		parts = append(parts, m.spinner.View()+bg.Render(" loading", styles.WarningText))
	} else if snap.LastError != nil {
		parts = append(parts, bg.Render(truncate(snap.LastError.Error(), max(20, m.width/2)), styles.DangerText))
	} else if !snap.LoadedAt.IsZero() && detail >= headerLoadTime {
		parts = append(parts, bg.Render("loaded "+snap.LoadedAt.Format("15:04:05"), styles.FaintText))
	}
	return parts
}

// renderCommandBar renders the key hints for the current mode.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd
	switch {
	case m.zoom.Dragging():
		commands = []cmd{
			{"←/→", "Extend"},
			{"space", "Zoom"},
			{"esc", "Reset"},
		}
	case m.zoom.Zoomed():
		commands = []cmd{
			{"drag", "Zoom further"},
			{"z", "Reset"},
			{"←/→", "Cursor"},
			{"o", "Open"},
			{"r", "Reload"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"drag", "Zoom"},
			{"space", "Select"},
			{"←/→", "Cursor"},
			{"o", "Open"},
			{"r", "Reload"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	// Drop trailing hints that do not fit.
	avail := m.width - styles.Header.GetHorizontalFrameSize()
	line := strings.Join(segments, bg.Spaces(2))
	for len(segments) > 1 && lipgloss.Width(line) > avail {
		segments = segments[:len(segments)-1]
		line = strings.Join(segments, bg.Spaces(2))
	}

	return oneRow(styles.Header, m.width).Render(line)
}

// truncate shortens s to limit runes, adding an ellipsis.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// truncateMiddle shortens s from the middle, keeping more of the end (the file name).
func truncateMiddle(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 5 {
		return string(runes[:limit])
	}
	endLen := (limit - 3) * 2 / 3
	startLen := limit - 3 - endLen
	return string(runes[:startLen]) + "..." + string(runes[len(runes)-endLen:])
}
