package zoom

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/templog/internal/reading"
)

func makeReadings(n int) []reading.Reading {
	start := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)
	out := make([]reading.Reading, n)
	for i := range out {
		out[i] = reading.Reading{
			Timestamp: start.Add(time.Duration(i) * time.Minute),
			Celsius:   20 + float64(i),
			Index:     i,
		}
	}
	return out
}

func indices(readings []reading.Reading) []int {
	out := make([]int, len(readings))
	for i, r := range readings {
		out[i] = r.Index
	}
	return out
}

func TestController_InitialStateIsFullAndIdle(t *testing.T) {
	full := makeReadings(5)
	c := New(full)

	assert.False(t, c.Zoomed())
	assert.False(t, c.Dragging())
	assert.Equal(t, full, c.Displayed())
	_, ok := c.Selection()
	assert.False(t, ok)
	_, _, ok = c.Band()
	assert.False(t, ok)
}

func TestController_ZoomScenario(t *testing.T) {
	full := makeReadings(10)

	c := New(full).BeginDrag(2).UpdateDrag(5).EndDrag()

	sel, ok := c.Selection()
	require.True(t, ok)
	assert.Equal(t, 4, sel.Len())
	assert.Equal(t, 2, sel.Start)
	assert.Equal(t, 5, sel.End)
	assert.Equal(t, []int{2, 3, 4, 5}, indices(c.Displayed()))
	assert.False(t, c.Dragging())

	c = c.BeginDrag(1).UpdateDrag(2).EndDrag()

	nested, ok := c.Selection()
	require.True(t, ok)
	assert.Equal(t, 2, nested.Len())
	assert.Equal(t, 3, nested.Start)
	assert.Equal(t, 4, nested.End)
	assert.GreaterOrEqual(t, nested.Start, sel.Start)
	assert.LessOrEqual(t, nested.End, sel.End)
	assert.Equal(t, []int{3, 4}, indices(c.Displayed()))
}

func TestController_ReverseDragNormalizes(t *testing.T) {
	c := New(makeReadings(10)).BeginDrag(7).UpdateDrag(3).EndDrag()

	sel, ok := c.Selection()
	require.True(t, ok)
	assert.Equal(t, 3, sel.Start)
	assert.Equal(t, 7, sel.End)
}

func TestController_NestedZoomStaysWithinBounds(t *testing.T) {
	full := makeReadings(40)
	c := New(full).BeginDrag(5).Release(30)
	prev, ok := c.Selection()
	require.True(t, ok)

	drags := [][2]int{{0, 20}, {3, 9}, {6, 0}, {1, 2}}
	for _, d := range drags {
		c = c.BeginDrag(d[0]).Release(d[1])
		next, ok := c.Selection()
		require.True(t, ok)
		assert.GreaterOrEqual(t, next.Start, prev.Start, "drag %v", d)
		assert.LessOrEqual(t, next.End, prev.End, "drag %v", d)
		assert.Equal(t, next.End-next.Start+1, next.Len(), "drag %v", d)
		prev = next
	}
}

func TestController_NestedZoomCutsFromFullSequence(t *testing.T) {
	full := makeReadings(10)
	c := New(full).BeginDrag(2).Release(8)
	c = c.BeginDrag(1).Release(3)

	sel, ok := c.Selection()
	require.True(t, ok)
	assert.Equal(t, full[3:6], sel.Data)
}

func TestController_ResetRestoresFullView(t *testing.T) {
	full := makeReadings(10)
	c := New(full).BeginDrag(2).Release(5).BeginDrag(0).Release(2)
	require.True(t, c.Zoomed())

	c = c.Reset()

	assert.False(t, c.Zoomed())
	assert.False(t, c.Dragging())
	assert.Equal(t, full, c.Displayed())
}

func TestController_ResetDiscardsGesture(t *testing.T) {
	c := New(makeReadings(10)).BeginDrag(2).UpdateDrag(4)
	require.True(t, c.Dragging())

	c = c.Reset()

	assert.False(t, c.Dragging())
	assert.False(t, c.EndDrag().Zoomed())
}

func TestController_ClickIsNoOp(t *testing.T) {
	full := makeReadings(10)

	c := New(full).BeginDrag(4).EndDrag()
	assert.False(t, c.Zoomed())
	assert.False(t, c.Dragging())
	assert.Equal(t, full, c.Displayed())

	zoomed := New(full).BeginDrag(2).Release(6)
	before, _ := zoomed.Selection()
	after, ok := zoomed.BeginDrag(1).UpdateDrag(3).UpdateDrag(1).EndDrag().Selection()
	require.True(t, ok)
	assert.Equal(t, before, after)
}

func TestController_OffPlotSnapsToLastDisplayed(t *testing.T) {
	full := makeReadings(10)

	c := New(full).BeginDrag(6).UpdateDrag(OffPlot)
	anchor, endpoint, ok := c.Anchor()
	require.True(t, ok)
	assert.Equal(t, 6, anchor)
	assert.Equal(t, 9, endpoint)

	c = c.UpdateDrag(42)
	_, endpoint, _ = c.Anchor()
	assert.Equal(t, 9, endpoint)

	c = c.EndDrag()
	sel, ok := c.Selection()
	require.True(t, ok)
	assert.Equal(t, 6, sel.Start)
	assert.Equal(t, 9, sel.End)
}

func TestController_ReleaseOffPlotWhileZoomed(t *testing.T) {
	full := makeReadings(10)
	c := New(full).BeginDrag(2).Release(6)

	c = c.BeginDrag(1).Release(OffPlot)

	sel, ok := c.Selection()
	require.True(t, ok)
	assert.Equal(t, 3, sel.Start)
	assert.Equal(t, 6, sel.End)
}

func TestController_IgnoresEventsOutsideGesture(t *testing.T) {
	full := makeReadings(5)
	c := New(full)

	assert.Equal(t, c, c.UpdateDrag(3))
	assert.Equal(t, c, c.EndDrag())
	assert.False(t, c.BeginDrag(-1).Dragging())
	assert.False(t, c.BeginDrag(5).Dragging())
	assert.False(t, New(nil).BeginDrag(0).Dragging())
}

func TestController_BeginWhileDraggingReanchors(t *testing.T) {
	c := New(makeReadings(10)).BeginDrag(2).UpdateDrag(5).BeginDrag(7)

	anchor, endpoint, ok := c.Anchor()
	require.True(t, ok)
	assert.Equal(t, 7, anchor)
	assert.Equal(t, 7, endpoint)
}

func TestController_BandTracksLiveEndpoint(t *testing.T) {
	c := New(makeReadings(10)).BeginDrag(6).UpdateDrag(2)

	lo, hi, ok := c.Band()
	require.True(t, ok)
	assert.Equal(t, 2, lo)
	assert.Equal(t, 6, hi)
	assert.False(t, c.Zoomed())
}

func TestController_TransitionsDoNotMutateReceiver(t *testing.T) {
	base := New(makeReadings(10))
	dragging := base.BeginDrag(2)
	moved := dragging.UpdateDrag(5)
	zoomed := moved.EndDrag()

	assert.False(t, base.Dragging())
	_, endpoint, _ := dragging.Anchor()
	assert.Equal(t, 2, endpoint)
	assert.True(t, moved.Dragging())
	assert.False(t, moved.Zoomed())
	assert.True(t, zoomed.Zoomed())
	assert.False(t, zoomed.Reset().Zoomed())
	assert.True(t, zoomed.Zoomed())
}

func TestController_NewSequenceStartsFull(t *testing.T) {
	c := New(makeReadings(10)).BeginDrag(2).Release(5).BeginDrag(1)

	reloaded := New(makeReadings(3))

	assert.False(t, reloaded.Zoomed())
	assert.False(t, reloaded.Dragging())
	assert.Len(t, reloaded.Displayed(), 3)
	assert.True(t, c.Zoomed())
}
