package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWidget(value int, columns int) *Widget {
	opts := DefaultOptions()
	opts.Columns = columns
	return NewWidget(value, opts)
}

func TestClickEarthCascade(t *testing.T) {
	tests := []struct {
		name  string
		start int
		pos   int
		want  int
	}{
		{name: "engage farthest pulls all four", start: 0, pos: 3, want: 4},
		{name: "engage nearest pulls only it", start: 0, pos: 0, want: 1},
		{name: "engage middle pulls the gap shut", start: 1, pos: 2, want: 3},
		{name: "disengage nearest drops the stack", start: 4, pos: 0, want: 0},
		{name: "disengage middle drops outer beads", start: 4, pos: 2, want: 2},
		{name: "re-engaging engaged is covered by toggle", start: 3, pos: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWidget(tt.start, 1)
			w.ClickEarth(0, tt.pos)
			assert.Equal(t, tt.want, w.Value())
		})
	}
}

func TestClickHeavenToggle(t *testing.T) {
	w := newTestWidget(7, 1)
	w.ClickHeaven(0)
	assert.Equal(t, 2, w.Value())
	w.ClickHeaven(0)
	assert.Equal(t, 7, w.Value())
}

func TestClickEarthToggleSequence(t *testing.T) {
	// Clicking the same engaged bead twice returns below it, not to the start:
	// engage pos 2 from empty gives 3, clicking pos 2 again gives 2.
	w := newTestWidget(0, 1)
	w.ClickEarth(0, 2)
	require.Equal(t, 3, w.Value())
	w.ClickEarth(0, 2)
	assert.Equal(t, 2, w.Value())
}

func TestColumnInvariantAfterClicks(t *testing.T) {
	w := newTestWidget(0, 3)
	clicks := []struct{ col, pos int }{
		{0, 3}, {1, 0}, {2, 2}, {0, 1}, {1, 3}, {2, 0}, {0, 0}, {1, 1},
	}
	for _, c := range clicks {
		w.ClickEarth(c.col, c.pos)
		for _, state := range w.Columns() {
			assert.GreaterOrEqual(t, state.Earth, 0)
			assert.LessOrEqual(t, state.Earth, earthBeadsPerColumn)
			assert.GreaterOrEqual(t, state.Digit(), 0)
			assert.LessOrEqual(t, state.Digit(), 9)
		}
	}
}

func TestSetValueRebuildsColumns(t *testing.T) {
	w := newTestWidget(999, 0)
	require.Equal(t, 3, w.ColumnCount())

	w.SetValue(7)
	assert.Equal(t, 7, w.Value())
	assert.Equal(t, 1, w.ColumnCount())

	w.SetValue(-5)
	assert.Equal(t, 0, w.Value())
}

func TestSetValueDiscardsGestures(t *testing.T) {
	w := newTestWidget(0, 2)
	desc := BeadDescriptor{Kind: EarthBead, Column: 1, Position: 0}
	w.BeginGesture(desc, 0, 100)
	require.Equal(t, 1, w.ActiveGestures())

	w.SetValue(55)
	assert.Equal(t, 0, w.ActiveGestures())

	// A move against the dead session must not mutate anything.
	w.MoveGesture(desc, 0, 0)
	assert.Equal(t, 55, w.Value())
}

func TestKeyboardEntry(t *testing.T) {
	w := newTestWidget(0, 3)
	require.Equal(t, -1, w.Focus())

	w.SetFocus(0)
	w.TypeDigit(5)
	assert.Equal(t, 500, w.Value())
	assert.Equal(t, 1, w.Focus())

	w.TypeDigit(4)
	assert.Equal(t, 540, w.Value())
	assert.Equal(t, 2, w.Focus())

	w.TypeDigit(2)
	assert.Equal(t, 542, w.Value())
	// Last column: focus stays, no wraparound.
	assert.Equal(t, 2, w.Focus())

	w.TypeDigit(9)
	assert.Equal(t, 549, w.Value())
	assert.Equal(t, 2, w.Focus())
}

func TestTypeDigitWithoutFocus(t *testing.T) {
	w := newTestWidget(31, 2)
	w.TypeDigit(9)
	assert.Equal(t, 31, w.Value())
}

func TestFocusNavigation(t *testing.T) {
	w := newTestWidget(0, 3)

	w.FocusNext()
	assert.Equal(t, 0, w.Focus())
	w.FocusNext()
	w.FocusNext()
	assert.Equal(t, 2, w.Focus())
	w.FocusNext()
	assert.Equal(t, 0, w.Focus(), "tab wraps forward")

	w.FocusPrev()
	assert.Equal(t, 2, w.Focus(), "shift+tab wraps backward")

	w.ClearFocus()
	assert.Equal(t, -1, w.Focus())
	w.FocusPrev()
	assert.Equal(t, 2, w.Focus(), "prev from no focus lands on the last column")
}

func TestFocusClampedBySetValue(t *testing.T) {
	w := newTestWidget(1234, 0)
	w.SetFocus(3)
	w.SetValue(9)
	assert.Equal(t, -1, w.Focus(), "focus beyond the new layout is dropped")
}

func TestObserverNotifications(t *testing.T) {
	w := newTestWidget(0, 1)

	var values []int
	var events []BeadEvent
	w.OnValue(func(v int) { values = append(values, v) })
	w.OnBead(func(ev BeadEvent) { events = append(events, ev) })

	w.ClickEarth(0, 1)
	w.ClickHeaven(0)
	w.SetValue(3)
	w.SetValue(3) // no change, no notification

	assert.Equal(t, []int{2, 7, 3}, values)
	require.Len(t, events, 2)
	assert.Equal(t, EarthBead, events[0].Kind)
	assert.True(t, events[0].Engaged)
	assert.Equal(t, HeavenBead, events[1].Kind)
	assert.True(t, events[1].Engaged)
}

func TestColumnsReturnsCopy(t *testing.T) {
	w := newTestWidget(5, 1)
	cols := w.Columns()
	cols[0].Earth = 4
	assert.Equal(t, 5, w.Value())
}
