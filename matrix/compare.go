// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Tolerant equality for Vector and Matrix, against a scalar (every element
//     equals it) or against the same kind (same shape, all pairs equal).
//   - All-element ordering predicates (Greater, Less, ...), each true only
//     when the relation holds at every position.
//
// Numeric policy:
//   - Two values a, b are equal when |a-b| <= eps * max(1, |a|, |b|), with eps
//     taken from the receiver (DefaultEpsilon unless WithEpsilon was given).
//     This is an absolute test near zero and a relative one for large values.
//   - Empty containers satisfy every scalar predicate (vacuous truth).
//   - A nil receiver satisfies no predicate; only Equal(nil) reports true.

package matrix

import "math"

// approxEqual is the single tolerant comparison used across the package.
func approxEqual(a, b, eps float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return math.Abs(a-b) <= eps*scale
}

// allPairs reports whether rel holds for every (a[k], b[k]).
func allPairs(a, b []float64, rel func(x, y float64) bool) bool {
	for k := range a {
		if !rel(a[k], b[k]) {
			return false
		}
	}

	return true
}

// allScalar reports whether rel holds for every (a[k], s).
func allScalar(a []float64, s float64, rel func(x, y float64) bool) bool {
	for _, x := range a {
		if !rel(x, s) {
			return false
		}
	}

	return true
}

func gt(x, y float64) bool { return x > y }
func ge(x, y float64) bool { return x >= y }
func lt(x, y float64) bool { return x < y }
func le(x, y float64) bool { return x <= y }

func eqWithin(eps float64) func(x, y float64) bool {
	return func(x, y float64) bool { return approxEqual(x, y, eps) }
}

// ---------- Matrix ----------

// Equal reports same shape and all elements equal within the receiver's eps.
// A nil operand is equal only to nil.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}

	return m.EqualWithin(o, m.pol.eps)
}

// EqualWithin is Equal with an explicit tolerance.
func (m *Matrix) EqualWithin(o *Matrix, eps float64) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}

	return allPairs(m.values(), o.values(), eqWithin(eps))
}

// EqualScalar reports whether every element equals s within eps.
func (m *Matrix) EqualScalar(s float64) bool {
	if m == nil {
		return false
	}

	return allScalar(m.values(), s, eqWithin(m.pol.eps))
}

// EqualRows compares against a literal, element for element.
// Ragged or differently shaped literals compare unequal.
func (m *Matrix) EqualRows(rows [][]float64) bool {
	if m == nil || len(rows) != m.r {
		return false
	}
	eq := eqWithin(m.pol.eps)
	for i, row := range rows {
		if len(row) != m.c || !allPairs(m.data[i*m.c:(i+1)*m.c], row, eq) {
			return false
		}
	}

	return true
}

// Greater reports same shape and m[i,j] > o[i,j] everywhere.
func (m *Matrix) Greater(o *Matrix) bool { return m.order(o, gt) }

// GreaterEqual reports same shape and m[i,j] >= o[i,j] everywhere.
func (m *Matrix) GreaterEqual(o *Matrix) bool { return m.order(o, ge) }

// Less reports same shape and m[i,j] < o[i,j] everywhere.
func (m *Matrix) Less(o *Matrix) bool { return m.order(o, lt) }

// LessEqual reports same shape and m[i,j] <= o[i,j] everywhere.
func (m *Matrix) LessEqual(o *Matrix) bool { return m.order(o, le) }

// GreaterScalar reports m[i,j] > s everywhere.
func (m *Matrix) GreaterScalar(s float64) bool { return m.scalar(s, gt) }

// GreaterEqualScalar reports m[i,j] >= s everywhere.
func (m *Matrix) GreaterEqualScalar(s float64) bool { return m.scalar(s, ge) }

// LessScalar reports m[i,j] < s everywhere.
func (m *Matrix) LessScalar(s float64) bool { return m.scalar(s, lt) }

// LessEqualScalar reports m[i,j] <= s everywhere.
func (m *Matrix) LessEqualScalar(s float64) bool { return m.scalar(s, le) }

func (m *Matrix) scalar(s float64, rel func(x, y float64) bool) bool {
	if m == nil {
		return false
	}

	return allScalar(m.values(), s, rel)
}

func (m *Matrix) order(o *Matrix, rel func(x, y float64) bool) bool {
	if ValidateSameShape(m, o) != nil {
		return false
	}

	return allPairs(m.values(), o.values(), rel)
}

// ---------- Vector ----------

// Equal reports equal lengths and all elements equal within the receiver's eps.
// A nil operand is equal only to nil.
func (v *Vector) Equal(o *Vector) bool {
	if v == nil || o == nil {
		return v == o
	}

	return v.EqualWithin(o, v.pol.eps)
}

// EqualWithin is Equal with an explicit tolerance.
func (v *Vector) EqualWithin(o *Vector, eps float64) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.n != o.n {
		return false
	}

	return allPairs(v.values(), o.values(), eqWithin(eps))
}

// EqualScalar reports whether every element equals s within eps.
func (v *Vector) EqualScalar(s float64) bool {
	if v == nil {
		return false
	}

	return allScalar(v.values(), s, eqWithin(v.pol.eps))
}

// EqualSlice compares against a literal, element for element.
func (v *Vector) EqualSlice(xs []float64) bool {
	if v == nil || len(xs) != v.n {
		return false
	}

	return allPairs(v.values(), xs, eqWithin(v.pol.eps))
}

// Greater reports equal lengths and v[i] > o[i] everywhere.
func (v *Vector) Greater(o *Vector) bool { return v.order(o, gt) }

// GreaterEqual reports equal lengths and v[i] >= o[i] everywhere.
func (v *Vector) GreaterEqual(o *Vector) bool { return v.order(o, ge) }

// Less reports equal lengths and v[i] < o[i] everywhere.
func (v *Vector) Less(o *Vector) bool { return v.order(o, lt) }

// LessEqual reports equal lengths and v[i] <= o[i] everywhere.
func (v *Vector) LessEqual(o *Vector) bool { return v.order(o, le) }

// GreaterScalar reports v[i] > s everywhere.
func (v *Vector) GreaterScalar(s float64) bool { return v.scalar(s, gt) }

// GreaterEqualScalar reports v[i] >= s everywhere.
func (v *Vector) GreaterEqualScalar(s float64) bool { return v.scalar(s, ge) }

// LessScalar reports v[i] < s everywhere.
func (v *Vector) LessScalar(s float64) bool { return v.scalar(s, lt) }

// LessEqualScalar reports v[i] <= s everywhere.
func (v *Vector) LessEqualScalar(s float64) bool { return v.scalar(s, le) }

func (v *Vector) scalar(s float64, rel func(x, y float64) bool) bool {
	if v == nil {
		return false
	}

	return allScalar(v.values(), s, rel)
}

func (v *Vector) order(o *Vector, rel func(x, y float64) bool) bool {
	if ValidateSameLen(v, o) != nil {
		return false
	}

	return allPairs(v.values(), o.values(), rel)
}
