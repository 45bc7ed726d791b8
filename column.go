package main

import (
	"fmt"
	"os"
)

// ColumnState is one decimal place of the abacus. The digit it shows is
// (heaven ? 5 : 0) + earth, always in [0,9]. Earth counts the lowest N beads,
// the ones nearest the bar; beads cannot pass each other so there are never
// gaps in the engaged stack.
type ColumnState struct {
	Heaven bool
	Earth  int
}

func (c ColumnState) Digit() int {
	d := c.Earth
	if c.Heaven {
		d += 5
	}
	return d
}

// BeadDescriptor is a read-only view of one bead, used for rendering and
// gesture targeting. For earth beads Position runs 0 (nearest the bar)
// through 3 (farthest); for the heaven bead it is always 0.
type BeadDescriptor struct {
	Kind     BeadKind
	Column   int
	Position int
	Engaged  bool
}

// clampColumn repairs a column that violates the digit invariant. In
// development builds (SOROBAN_DEV set) it panics instead, since an
// out-of-range column means a logic defect, not bad input.
func clampColumn(c ColumnState) ColumnState {
	if c.Earth >= 0 && c.Earth <= earthBeadsPerColumn {
		return c
	}
	devAssert(false, fmt.Sprintf("column earth count %d out of range", c.Earth))
	if c.Earth < 0 {
		c.Earth = 0
	} else {
		c.Earth = earthBeadsPerColumn
	}
	return c
}

func devAssert(cond bool, msg string) {
	if !cond && os.Getenv("SOROBAN_DEV") != "" {
		panic("soroban: " + msg)
	}
}

// padColumns resizes states to exactly count columns. Missing columns are
// synthesized as zeros at the front; excess columns are dropped from the
// front, keeping the rightmost (least significant) places.
func padColumns(states []ColumnState, count int) []ColumnState {
	if count < 1 {
		count = 1
	}
	if len(states) == count {
		return states
	}
	if len(states) > count {
		return states[len(states)-count:]
	}
	padded := make([]ColumnState, count)
	copy(padded[count-len(states):], states)
	return padded
}
