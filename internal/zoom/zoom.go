package zoom

import (
	"github.com/five82/templog/internal/reading"
)

// OffPlot is the position reported for a pointer outside the plotted area.
const OffPlot = -1

// Selection is an active zoomed view over the full sequence.
type Selection struct {
	Data []reading.Reading
	// Start and End are inclusive reading.Index bounds within the full sequence.
	Start int
	End   int
}

// Len returns the number of readings in the selection.
func (s Selection) Len() int {
	return len(s.Data)
}

// drag is an in-progress press-drag gesture. Positions index the displayed
// sequence, not the full one.
type drag struct {
	anchor   int
	endpoint int
}

// Controller tracks the view mode and drag gesture over one loaded sequence.
// The zero value is an empty, idle controller. Transitions return a new
// Controller and never modify the receiver.
type Controller struct {
	full      []reading.Reading
	selection *Selection
	drag      *drag
}

// New returns an idle controller showing the full sequence.
func New(full []reading.Reading) Controller {
	return Controller{full: full}
}

// Full returns the full sequence.
func (c Controller) Full() []reading.Reading {
	return c.full
}

// Displayed returns the sequence currently rendered.
func (c Controller) Displayed() []reading.Reading {
	if c.selection != nil {
		return c.selection.Data
	}
	return c.full
}

// Zoomed reports whether a selection is active.
func (c Controller) Zoomed() bool {
	return c.selection != nil
}

// Selection returns the active selection, if any.
func (c Controller) Selection() (Selection, bool) {
	if c.selection == nil {
		return Selection{}, false
	}
	return *c.selection, true
}

// Dragging reports whether a gesture is in progress.
func (c Controller) Dragging() bool {
	return c.drag != nil
}

// Anchor returns the anchor and live endpoint of the in-progress gesture.
func (c Controller) Anchor() (anchor, endpoint int, ok bool) {
	if c.drag == nil {
		return 0, 0, false
	}
	return c.drag.anchor, c.drag.endpoint, true
}

// Band returns the normalized displayed positions to highlight while dragging.
func (c Controller) Band() (lo, hi int, ok bool) {
	if c.drag == nil {
		return 0, 0, false
	}
	lo, hi = minMax(c.drag.anchor, c.drag.endpoint)
	return lo, hi, true
}

// BeginDrag starts a gesture anchored at pos. Positions outside the displayed
// sequence are ignored. Beginning while already dragging re-anchors.
func (c Controller) BeginDrag(pos int) Controller {
	if pos < 0 || pos >= len(c.Displayed()) {
		return c
	}
	c.drag = &drag{anchor: pos, endpoint: pos}
	return c
}

// UpdateDrag moves the live endpoint. A position outside the displayed
// sequence snaps to its last position.
func (c Controller) UpdateDrag(pos int) Controller {
	if c.drag == nil {
		return c
	}
	if last := len(c.Displayed()) - 1; pos < 0 || pos > last {
		pos = last
	}
	c.drag = &drag{anchor: c.drag.anchor, endpoint: pos}
	return c
}

// EndDrag finalizes the gesture. Equal endpoints leave the view unchanged.
func (c Controller) EndDrag() Controller {
	if c.drag == nil {
		return c
	}
	lo, hi := minMax(c.drag.anchor, c.drag.endpoint)
	c.drag = nil
	if lo == hi {
		return c
	}

	displayed := c.Displayed()
	if c.selection == nil {
		c.selection = &Selection{
			Data:  displayed[lo : hi+1],
			Start: lo,
			End:   hi,
		}
		return c
	}

	start := displayed[lo].Index
	end := displayed[hi].Index
	c.selection = &Selection{
		Data:  between(c.full, start, end),
		Start: start,
		End:   end,
	}
	return c
}

// Release moves the endpoint to pos and finalizes the gesture.
func (c Controller) Release(pos int) Controller {
	return c.UpdateDrag(pos).EndDrag()
}

// Reset returns to the full view and discards any gesture.
func (c Controller) Reset() Controller {
	return Controller{full: c.full}
}

// between returns the readings of full whose Index lies in [start, end].
func between(full []reading.Reading, start, end int) []reading.Reading {
	out := make([]reading.Reading, 0, end-start+1)
	for _, r := range full {
		if r.Index >= start && r.Index <= end {
			out = append(out, r)
		}
	}
	return out
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
