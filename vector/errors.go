// SPDX-License-Identifier: MIT

package vector

import "errors"

var (
	// ErrArity is returned by New when the value count differs from N.
	ErrArity = errors.New("vector: value count does not match dimension")

	// ErrOutOfRange is returned by Unit in debug builds when the basis index
	// is outside [0, N).
	ErrOutOfRange = errors.New("vector: index out of range")
)
