package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// File
	Open    key.Binding
	Refresh key.Binding

	// Chart
	Left   key.Binding
	Right  key.Binding
	Start  key.Binding
	End    key.Binding
	Select key.Binding
	Reset  key.Binding

	// Prompt
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Open log file"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload file"),
		),

		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Cursor left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Cursor right"),
		),
		Start: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "First reading"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "Last reading"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "Start/finish selection"),
		),
		Reset: key.NewBinding(
			key.WithKeys("z", "esc"),
			key.WithHelp("z/esc", "Reset zoom"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Select, k.Reset, k.Refresh, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay, one column per section.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// File
		{k.Open, k.Refresh},
		// Chart
		{k.Left, k.Right, k.Start, k.End, k.Select, k.Reset},
		// General
		{k.CycleTheme, k.Help, k.Quit},
	}
}
