// SPDX-License-Identifier: MIT

package converters

import "errors"

// ErrEmptyMatrix is returned when a zero-area matrix or vector is handed to a
// library that cannot represent it (gonum and sparse both reject 0 dimensions).
var ErrEmptyMatrix = errors.New("converters: empty matrix")
