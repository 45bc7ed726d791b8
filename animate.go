package main

// animator eases bead centers toward their logical positions. It is a purely
// visual decorator: it reads logical frames and keeps its own displayed
// coordinates, and nothing ever flows from here back into column state.
// Disabling it changes smoothness, not correctness.
type animator struct {
	pos map[beadKey]float64
}

// easing fraction applied per display tick.
const animEasing = 0.45

// snap distance in pixels under which a bead lands exactly on target.
const animSnap = 0.75

func newAnimator() *animator {
	return &animator{pos: make(map[beadKey]float64)}
}

// Advance moves every displayed position one step toward the logical frames
// and reports whether any bead is still in flight. Beads never seen before
// start directly on target.
func (a *animator) Advance(descs []BeadDescriptor, frames []BeadFrame) bool {
	moving := false
	seen := make(map[beadKey]bool, len(descs))
	for i, d := range descs {
		key := beadKey{d.Kind, d.Column, d.Position}
		seen[key] = true
		target := frames[i].CY
		cur, ok := a.pos[key]
		if !ok {
			a.pos[key] = target
			continue
		}
		delta := target - cur
		if abs64(delta) <= animSnap {
			a.pos[key] = target
			continue
		}
		a.pos[key] = cur + delta*animEasing
		moving = true
	}
	// Drop beads that left the layout (column-count shrink).
	for key := range a.pos {
		if !seen[key] {
			delete(a.pos, key)
		}
	}
	return moving
}

// DisplayedY returns the eased center for a bead, falling back to the
// logical position for beads with no animation history.
func (a *animator) DisplayedY(key beadKey, logical float64) float64 {
	if y, ok := a.pos[key]; ok {
		return y
	}
	return logical
}

// Reset snaps everything to its logical position on the next Advance.
func (a *animator) Reset() {
	a.pos = make(map[beadKey]float64)
}
