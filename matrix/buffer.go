// SPDX-License-Identifier: MIT

// Package matrix - growable flat buffer shared by Vector and Matrix rows.
//
// Purpose:
//   - One growth discipline for Vector.Push and Matrix.PushRow: capacity starts
//     at 2 and doubles when exhausted; Pop/PopRow halve it once usage drops to
//     a quarter, so both directions stay amortized O(1).
//   - Capacity is counted in "slots": elements for a Vector, rows for a Matrix.
//
// Complexity quicksheet:
//   - growSlots/shrinkSlots: O(log n) arithmetic; resize: O(n) copy, amortized O(1).

package matrix

import "math"

// minSlots is the first non-zero capacity handed out by growSlots.
const minSlots = 2

// growSlots returns the smallest doubling of cur (starting at minSlots) that
// holds need slots. Returns cur unchanged when it already suffices.
func growSlots(cur, need int) int {
	if need <= cur {
		return cur
	}
	c := cur
	if c < minSlots {
		c = minSlots
	}
	for c < need {
		c *= 2
	}

	return c
}

// shrinkSlots halves cur when used has fallen to a quarter of it.
// Never drops below minSlots, so a drained container keeps a small arena.
func shrinkSlots(cur, used int) int {
	if cur <= minSlots || used > cur/4 {
		return cur
	}

	return max(cur/2, minSlots)
}

// resize reallocates buf to newLen elements, preserving the first keep.
func resize(buf []float64, keep, newLen int) []float64 {
	out := make([]float64, newLen)
	copy(out, buf[:keep])

	return out
}

// areaFits reports whether rows*cols is representable as an int.
// Both arguments must be non-negative.
func areaFits(rows, cols int) bool {
	return cols == 0 || rows <= math.MaxInt/cols
}
