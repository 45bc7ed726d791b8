package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimatorSeedsOnTarget(t *testing.T) {
	g := unitGeometry()
	a := newAnimator()

	descs, frames := g.Frames(Decompose(0), ShapeDiamond)
	assert.False(t, a.Advance(descs, frames), "first sight of a bead lands it on target")

	key := beadKey{EarthBead, 0, 0}
	assert.Equal(t, frames[1].CY, a.DisplayedY(key, frames[1].CY))
}

func TestAnimatorConverges(t *testing.T) {
	g := unitGeometry()
	a := newAnimator()

	descs, frames := g.Frames(Decompose(0), ShapeDiamond)
	a.Advance(descs, frames)

	// The column flips to 4: every earth bead gets a new target.
	descs, frames = g.Frames(Decompose(4), ShapeDiamond)
	require.True(t, a.Advance(descs, frames), "beads are in flight after the change")

	steps := 1
	for a.Advance(descs, frames) {
		steps++
		require.Less(t, steps, 50, "easing must settle")
	}

	key := beadKey{EarthBead, 0, 3}
	assert.Equal(t, frames[4].CY, a.DisplayedY(key, frames[4].CY))
}

func TestAnimatorMonotoneApproach(t *testing.T) {
	g := unitGeometry()
	a := newAnimator()

	descs, frames := g.Frames(Decompose(0), ShapeDiamond)
	a.Advance(descs, frames)
	start := g.EarthBeadY(0, 0)

	descs, frames = g.Frames(Decompose(1), ShapeDiamond)
	target := frames[1].CY
	prev := start
	for a.Advance(descs, frames) {
		cur := a.DisplayedY(beadKey{EarthBead, 0, 0}, target)
		assert.Less(t, abs64(cur-target), abs64(prev-target), "each tick moves closer")
		prev = cur
	}
}

func TestAnimatorPrunesDepartedBeads(t *testing.T) {
	g := unitGeometry()
	a := newAnimator()

	descs, frames := g.Frames(Decompose(1234), ShapeDiamond)
	a.Advance(descs, frames)
	assert.Len(t, a.pos, 20)

	descs, frames = g.Frames(Decompose(7), ShapeDiamond)
	a.Advance(descs, frames)
	assert.Len(t, a.pos, 5, "beads of dropped columns are forgotten")
}

func TestAnimatorReset(t *testing.T) {
	g := unitGeometry()
	a := newAnimator()

	descs, frames := g.Frames(Decompose(5), ShapeDiamond)
	a.Advance(descs, frames)
	a.Reset()
	assert.Empty(t, a.pos)
	assert.Equal(t, 42.0, a.DisplayedY(beadKey{HeavenBead, 0, 0}, 42.0))
}
