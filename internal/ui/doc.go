// Package ui provides the terminal user interface for templog.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea model. It draws one temperature chart and
// turns mouse drags and key presses into zoom.Controller transitions. All
// state lives in the Model value; Update returns a new Model and never
// blocks.
//
// # Package Structure
//
//   - app.go: Model, Init/Update/View, load command and Run
//   - input.go: keyboard and mouse handling
//   - chart_view.go: chart options, hit-testing and the status bar
//   - header.go: title bar and command bar
//   - help.go, modal.go: help overlay and the open-file prompt
//   - keys.go, theme.go, style_helpers.go: bindings and Lip Gloss styling
//
// # Screen Layout
//
//	row 0        title bar: file, "N data points loaded", "showing M points"
//	row 1        command bar
//	rows 2..     chart (y labels, plot, x axis, x labels)
//	row h-2      status bar: reading under the mouse or cursor
//	row h-1      short help
//
// # Event Flow
//
//  1. A file path (argument, open prompt or refresh) starts loadCmd, which
//     reads and parses off the UI goroutine via state.Store.LoadFile.
//  2. loadedMsg replaces the controller with zoom.New over the new readings.
//     A failed refresh keeps the current view.
//  3. Left press on the plot begins a drag; motion updates it; release zooms.
//     Motion or release outside the plot reports zoom.OffPlot.
//  4. Space does the same from the keyboard at the cursor; z or esc resets.
package ui
