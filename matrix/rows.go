// SPDX-License-Identifier: MIT

// Package matrix - dynamic row and column editing.
//
// Purpose:
//   - PushRow/PopRow reuse Vector's growth discipline: capacity is counted in
//     rows, doubles when full and halves once usage drops to a quarter.
//   - PushCol/PopCol change the row stride, so they relayout the buffer
//     (O(r*c)) and leave a tight row capacity behind.
//
// Error safety:
//   - Every check runs before the first write; a failed call leaves the matrix
//     exactly as it was.

package matrix

import "fmt"

// PushRow appends v as a new last row.
// MAIN DESCRIPTION:
//   - len(v) must equal Cols(), except on a matrix with zero rows, where the
//     pushed row fixes Cols().
//
// Implementation:
//   - Stage 1: validate v (non-nil, length, numeric policy).
//   - Stage 2: grow row capacity by doubling when Rows() == Capacity().
//   - Stage 3: copy v into the new row and bump Rows().
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrNaNInf.
//   - ErrInvalidSize when the grown buffer length would overflow int.
//
// Complexity:
//   - Amortized O(c); a single reallocation is O(r*c).
func (m *Matrix) PushRow(v *Vector) error {
	if v == nil {
		return opErrorf(opPushRow, ErrNilMatrix)
	}
	if m.r > 0 && v.n != m.c {
		return opErrorf(opPushRow, fmt.Errorf("row of %d values for %d columns: %w", v.n, m.c, ErrShapeMismatch))
	}
	if err := validateAdmitted(m.pol, v.values()); err != nil {
		return opErrorf(opPushRow, err)
	}

	if m.r == 0 && v.n != m.c {
		// Empty matrix adopts the row length; nothing to preserve.
		m.c = v.n
		m.rowCap = growSlots(0, 1)
		m.data = make([]float64, m.rowCap*m.c)
	} else if m.r == m.rowCap {
		nc := growSlots(m.rowCap, m.r+1)
		if !areaFits(nc, m.c) {
			return opErrorf(opPushRow, ErrInvalidSize)
		}
		m.data = resize(m.data, m.r*m.c, nc*m.c)
		m.rowCap = nc
	}
	copy(m.data[m.r*m.c:(m.r+1)*m.c], v.values())
	m.r++

	return nil
}

// PopRow removes the last row and returns it as a new Vector.
// Errors: ErrEmptyCollection when Rows() == 0.
// Complexity: amortized O(c).
func (m *Matrix) PopRow() (*Vector, error) {
	if m.r == 0 {
		return nil, opErrorf(opPopRow, ErrEmptyCollection)
	}
	row := m.rowVector(m.r - 1)
	m.r--
	if nc := shrinkSlots(m.rowCap, m.r); nc != m.rowCap {
		m.data = resize(m.data, m.r*m.c, nc*m.c)
		m.rowCap = nc
	}

	return row, nil
}

// PushCol appends v as a new last column.
// len(v) must equal Rows(), except on a matrix with zero columns, where the
// pushed column fixes Rows().
// Errors: ErrNilMatrix, ErrShapeMismatch, ErrNaNInf, ErrInvalidSize.
// Complexity: O(r*c).
func (m *Matrix) PushCol(v *Vector) error {
	if v == nil {
		return opErrorf(opPushCol, ErrNilMatrix)
	}
	if m.c > 0 && v.n != m.r {
		return opErrorf(opPushCol, fmt.Errorf("column of %d values for %d rows: %w", v.n, m.r, ErrShapeMismatch))
	}
	if err := validateAdmitted(m.pol, v.values()); err != nil {
		return opErrorf(opPushCol, err)
	}

	r, nc := v.n, m.c+1
	if !areaFits(r, nc) {
		return opErrorf(opPushCol, ErrInvalidSize)
	}
	buf := make([]float64, r*nc)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < m.c; j++ {
			buf[i*nc+j] = m.data[i*m.c+j]
		}
		buf[i*nc+m.c] = v.data[i]
	}
	m.r, m.c, m.rowCap, m.data = r, nc, r, buf

	return nil
}

// PopCol removes the last column and returns it as a new Vector.
// Errors: ErrEmptyCollection when Cols() == 0.
// Complexity: O(r*c).
func (m *Matrix) PopCol() (*Vector, error) {
	if m.c == 0 {
		return nil, opErrorf(opPopCol, ErrEmptyCollection)
	}
	col := m.colVector(m.c - 1)
	nc := m.c - 1
	buf := make([]float64, m.r*nc)
	for i := 0; i < m.r; i++ {
		copy(buf[i*nc:(i+1)*nc], m.data[i*m.c:i*m.c+nc])
	}
	m.c, m.rowCap, m.data = nc, m.r, buf

	return col, nil
}
