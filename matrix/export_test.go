// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private growth helpers and options.
//
// Purpose:
//   - Expose UNEXPORTED buffer arithmetic and the resolved option snapshot to
//     matrix_test ONLY, without widening the production API.
//
// Build Policy:
//   - *_test.go in package matrix: compiled only by `go test`.

var (
	// ExportedGrowSlots exposes growSlots for white-box tests.
	ExportedGrowSlots = growSlots
	// ExportedShrinkSlots exposes shrinkSlots for white-box tests.
	ExportedShrinkSlots = shrinkSlots
	// ExportedAreaFits exposes areaFits for white-box tests.
	ExportedAreaFits = areaFits
	// ExportedApproxEqual exposes approxEqual for white-box tests.
	ExportedApproxEqual = approxEqual
)

// OptionsSnapshot is a read-only view of resolved Options.
type OptionsSnapshot struct {
	Eps            float64
	PivotTol       float64
	ValidateNaNInf bool
	HasRand        bool
	Lo, Hi         float64
}

// GatherOptionsSnapshot_TestOnly resolves opts against defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Eps:            o.eps,
		PivotTol:       o.pivotTol,
		ValidateNaNInf: o.validateNaNInf,
		HasRand:        o.rng != nil,
		Lo:             o.lo,
		Hi:             o.hi,
	}
}
