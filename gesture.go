package main

import "time"

// beadKey identifies one bead for gesture tracking. Position is 0 for the
// heaven bead.
type beadKey struct {
	Kind     BeadKind
	Column   int
	Position int
}

// gestureSession is the drag state of a single bead. Sessions are fully
// independent: dragging one bead never pushes a neighbor, the cascade only
// happens when a direction commits. lastEmitted makes the toggle
// edge-triggered, so holding a direction across many motion events applies
// it once, and walking the bead back and forth reverses it cleanly.
type gestureSession struct {
	startX, startY float64
	threshold      float64
	lastEmitted    int // 0 none, +1 activate, -1 deactivate
}

// clickMuteWindow suppresses the synthetic click that follows a
// threshold-crossing drag release.
const clickMuteWindow = 250 * time.Millisecond

// BeginGesture opens a drag session for the bead at (x, y). An existing
// session for the same bead is replaced.
func (w *Widget) BeginGesture(desc BeadDescriptor, x, y float64) {
	if !w.opts.Gestures {
		return
	}
	if desc.Column < 0 || desc.Column >= len(w.columns) {
		return
	}
	w.sessions[beadKey{desc.Kind, desc.Column, desc.Position}] = &gestureSession{
		startX:    x,
		startY:    y,
		threshold: w.geom.GestureThreshold(),
	}
}

// MoveGesture feeds a pointer position into the bead's session. Beads travel
// vertically, so only the y displacement from the reference point counts.
// For the heaven bead, moving down (toward the bar) activates; for earth
// beads the sense inverts, up is toward the bar. Direction is recomputed on
// every event, so a mid-drag reversal re-toggles.
func (w *Widget) MoveGesture(desc BeadDescriptor, x, y float64) {
	key := beadKey{desc.Kind, desc.Column, desc.Position}
	s, ok := w.sessions[key]
	if !ok {
		// Session was discarded (external value change) or never started.
		return
	}
	dy := y - s.startY
	if abs64(dy) <= s.threshold {
		return
	}
	dir := gestureDirection(desc.Kind, dy)
	if dir == s.lastEmitted {
		return
	}
	w.setDirected(desc.Kind, desc.Column, desc.Position, dir > 0)
	s.lastEmitted = dir
}

// EndGesture closes the bead's session and reports whether it ever committed
// a direction. The on-screen bead snaps back to its logical position either
// way; a drag that crossed the threshold also mutes clicks briefly so the
// release's synthetic click cannot double-fire.
func (w *Widget) EndGesture(desc BeadDescriptor) bool {
	key := beadKey{desc.Kind, desc.Column, desc.Position}
	s, ok := w.sessions[key]
	if !ok {
		return false
	}
	delete(w.sessions, key)
	if s.lastEmitted == 0 {
		return false
	}
	w.muteUntil = w.now().Add(clickMuteWindow)
	return true
}

// ActiveGestures reports how many drag sessions are live.
func (w *Widget) ActiveGestures() int {
	return len(w.sessions)
}

func gestureDirection(kind BeadKind, dy float64) int {
	if kind == HeavenBead {
		// Downward, toward the bar, activates.
		if dy > 0 {
			return 1
		}
		return -1
	}
	// Earth beads sit below the bar; upward activates.
	if dy < 0 {
		return 1
	}
	return -1
}
