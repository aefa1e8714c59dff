// SPDX-License-Identifier: MIT

package staticarray

import "errors"

// ErrArity is returned when a list constructor receives a value count that
// differs from the array's dimension.
var ErrArity = errors.New("staticarray: value count does not match dimension")
