// Package zoom implements drag-to-zoom over a sequence of readings.
//
// # State
//
// A Controller combines two orthogonal pieces of state:
//
//   - view mode: the full sequence, or a Selection produced by a completed drag
//   - gesture: idle, or dragging with an anchor and a live endpoint
//
// Gesture positions are positions in the displayed sequence. A Selection is
// stored with reading.Index bounds so a second zoom inside an already zoomed
// view is always cut from the full sequence:
//
//	c := zoom.New(readings)          // full, idle
//	c = c.BeginDrag(2)               // dragging, anchor 2
//	c = c.UpdateDrag(5)              // live endpoint 5
//	c = c.EndDrag()                  // zoomed to Index 2..5, idle
//	c = c.BeginDrag(1).Release(2)    // zoomed to Index 3..4
//	c = c.Reset()                    // full, idle
//
// # Edge Cases
//
//   - A release at the anchor (a click) applies no zoom.
//   - A pointer outside the plot, reported as OffPlot, moves the endpoint to
//     the last displayed position. Releasing there zooms to the end of the view.
//   - UpdateDrag and EndDrag are ignored while idle.
//
// Controllers are values. Every transition returns a new Controller, so a
// caller holding an older value still sees the state it had.
package zoom
