// SPDX-License-Identifier: MIT

// Package matrix - textual rendering shared by Vector.String and Matrix.String.
//
// The format is fixed so external debugger printers that read Rows, Cols and
// the raw buffer produce byte-identical output:
//   - element:  strconv 'f' with 2 decimals ("1.50", "-0.25")
//   - row:      "[" + elements joined by ", " + "]"
//   - matrix:   "[\n" + rows joined by ",\n" + "\n]"

package matrix

import "strconv"

// ---------- Formatting literals ----------
const (
	_fmtRowOpen    = "["
	_fmtRowClose   = "]"
	_fmtSep        = ", "
	_fmtRowSep     = ",\n"
	_fmtBlockOpen  = "[\n"
	_fmtBlockClose = "\n]"
	_fmtPrecision  = 2
)

// appendRow appends "[a, b, ...]" for vals to dst.
func appendRow(dst []byte, vals []float64) []byte {
	dst = append(dst, _fmtRowOpen...)
	for j, x := range vals {
		if j > 0 {
			dst = append(dst, _fmtSep...)
		}
		dst = strconv.AppendFloat(dst, x, 'f', _fmtPrecision, 64)
	}

	return append(dst, _fmtRowClose...)
}
