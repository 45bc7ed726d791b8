package main

import "fmt"

// digitCount returns the number of decimal digits in v (1 for zero).
func digitCount(v int) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

// digitToColumn maps a single decimal digit onto bead positions.
func digitToColumn(d int) ColumnState {
	devAssert(d >= 0 && d <= 9, fmt.Sprintf("digit %d out of range", d))
	if d < 0 {
		d = 0
	}
	if d > 9 {
		d = 9
	}
	return ColumnState{Heaven: d >= 5, Earth: d % 5}
}

// Decompose converts a non-negative integer into column states, most
// significant place first. Zero yields a single all-disengaged column.
// Negative input is treated as zero (the configuration boundary is
// fail-soft, never raising).
func Decompose(value int) []ColumnState {
	if value < 0 {
		value = 0
	}
	n := digitCount(value)
	states := make([]ColumnState, n)
	for i := n - 1; i >= 0; i-- {
		states[i] = digitToColumn(value % 10)
		value /= 10
	}
	return states
}

// Compose folds column states back into the integer they display. It is the
// left inverse of Decompose for every non-negative value; padded states
// compose to the same integer with the leading zeros ignored.
func Compose(states []ColumnState) int {
	value := 0
	for _, c := range states {
		value = value*10 + clampColumn(c).Digit()
	}
	return value
}
