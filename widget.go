package main

import "time"

// BeadEvent reports one toggle, with the bead's resulting engagement.
type BeadEvent struct {
	Kind     BeadKind
	Column   int
	Position int
	Engaged  bool
}

// Widget owns one abacus. It is the only writer of the column states: the
// layout engine and the codec read, pointer/gesture/keyboard input mutates
// through the methods below, and every mutation that changes the composed
// value notifies the observer after the state is already updated.
type Widget struct {
	columns []ColumnState
	opts    Options
	geom    Geometry

	focus     int // column with edit focus, -1 for none
	sessions  map[beadKey]*gestureSession
	muteUntil time.Time
	now       func() time.Time

	onBead  func(BeadEvent)
	onValue func(int)
}

func NewWidget(value int, opts Options) *Widget {
	opts = opts.Normalize()
	if value < 0 {
		value = 0
	}
	w := &Widget{
		opts:     opts,
		geom:     NewGeometry(opts.Scale),
		focus:    -1,
		sessions: make(map[beadKey]*gestureSession),
		now:      time.Now,
	}
	w.columns = padColumns(Decompose(value), opts.columnCount(value))
	return w
}

func (w *Widget) Options() Options   { return w.opts }
func (w *Widget) Geometry() Geometry { return w.geom }

// Columns returns a copy of the column states, most significant first.
func (w *Widget) Columns() []ColumnState {
	out := make([]ColumnState, len(w.columns))
	copy(out, w.columns)
	return out
}

func (w *Widget) ColumnCount() int { return len(w.columns) }

func (w *Widget) Value() int { return Compose(w.columns) }

// SetValue replaces the whole state from an external value. The column
// decomposition is rebuilt from scratch, never diffed, and any in-flight
// gesture loses: the external value wins and live sessions are discarded.
func (w *Widget) SetValue(value int) {
	if value < 0 {
		value = 0
	}
	old := w.Value()
	w.columns = padColumns(Decompose(value), w.opts.columnCount(value))
	w.sessions = make(map[beadKey]*gestureSession)
	if w.focus >= len(w.columns) {
		w.focus = -1
	}
	if value != old {
		w.notifyValue()
	}
}

func (w *Widget) OnBead(fn func(BeadEvent)) { w.onBead = fn }
func (w *Widget) OnValue(fn func(int))      { w.onValue = fn }

func (w *Widget) notifyValue() {
	if w.onValue != nil {
		w.onValue(w.Value())
	}
}

func (w *Widget) notifyBead(ev BeadEvent) {
	if w.onBead != nil {
		w.onBead(ev)
	}
}

// ClickHeaven flips a heaven bead unconditionally.
func (w *Widget) ClickHeaven(column int) {
	if column < 0 || column >= len(w.columns) {
		return
	}
	w.columns[column].Heaven = !w.columns[column].Heaven
	w.notifyBead(BeadEvent{Kind: HeavenBead, Column: column, Engaged: w.columns[column].Heaven})
	w.notifyValue()
}

// ClickEarth toggles the earth bead at pos with the cascade a physical rod
// imposes: engaging a bead drags every bead between it and the bar along,
// disengaging drops every bead farther out.
func (w *Widget) ClickEarth(column, pos int) {
	if column < 0 || column >= len(w.columns) || pos < 0 || pos >= earthBeadsPerColumn {
		return
	}
	c := &w.columns[column]
	if pos < c.Earth {
		// Engaged bead clicked: release it and everything past it.
		c.Earth = min(c.Earth, pos)
	} else {
		c.Earth = max(c.Earth, pos+1)
	}
	w.notifyBead(BeadEvent{Kind: EarthBead, Column: column, Position: pos, Engaged: pos < c.Earth})
	w.notifyValue()
}

// Click dispatches a pointer click to the targeted bead. Clicks are ignored
// inside the post-gesture cooldown so a drag that already toggled does not
// fire again from the synthetic click that follows release.
func (w *Widget) Click(desc BeadDescriptor) {
	if w.now().Before(w.muteUntil) {
		return
	}
	if desc.Kind == HeavenBead {
		w.ClickHeaven(desc.Column)
	} else {
		w.ClickEarth(desc.Column, desc.Position)
	}
}

// setDirected applies an explicit activate/deactivate, the gesture-driven
// variant of the click cascade. Reports whether state changed.
func (w *Widget) setDirected(kind BeadKind, column, pos int, activate bool) bool {
	if column < 0 || column >= len(w.columns) {
		return false
	}
	c := &w.columns[column]
	switch kind {
	case HeavenBead:
		if c.Heaven == activate {
			return false
		}
		c.Heaven = activate
		w.notifyBead(BeadEvent{Kind: HeavenBead, Column: column, Engaged: activate})
	case EarthBead:
		if pos < 0 || pos >= earthBeadsPerColumn {
			return false
		}
		before := c.Earth
		if activate {
			c.Earth = max(c.Earth, pos+1)
		} else {
			c.Earth = min(c.Earth, pos)
		}
		if c.Earth == before {
			return false
		}
		w.notifyBead(BeadEvent{Kind: EarthBead, Column: column, Position: pos, Engaged: activate})
	}
	w.notifyValue()
	return true
}

// Focus handling for keyboard place-value entry. Exactly one column may hold
// edit focus, or none; pointer toggling is unaffected by focus.

func (w *Widget) Focus() int { return w.focus }

func (w *Widget) SetFocus(column int) {
	if column < 0 || column >= len(w.columns) {
		w.focus = -1
		return
	}
	w.focus = column
}

func (w *Widget) ClearFocus() { w.focus = -1 }

// FocusNext advances focus, wrapping past the last column.
func (w *Widget) FocusNext() {
	if len(w.columns) == 0 {
		return
	}
	w.focus = (w.focus + 1) % len(w.columns)
}

// FocusPrev moves focus back, wrapping before the first column.
func (w *Widget) FocusPrev() {
	if len(w.columns) == 0 {
		return
	}
	if w.focus <= 0 {
		w.focus = len(w.columns) - 1
	} else {
		w.focus--
	}
}

// TypeDigit replaces the focused column with the digit's bead pattern, then
// advances focus to the next column if one exists. No wraparound: typing
// into the last column leaves focus there.
func (w *Widget) TypeDigit(d int) {
	if w.focus < 0 || w.focus >= len(w.columns) || d < 0 || d > 9 {
		return
	}
	col := w.focus
	w.columns[col] = digitToColumn(d)
	if col+1 < len(w.columns) {
		w.focus = col + 1
	}
	w.notifyValue()
}

// Descriptors lists every bead for rendering and gesture targeting.
func (w *Widget) Descriptors() []BeadDescriptor {
	descs, _ := w.geom.Frames(w.columns, w.opts.Shape)
	return descs
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
