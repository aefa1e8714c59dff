// SPDX-License-Identifier: MIT

package matrix

import "errors"

// ErrArity is returned by New when the value count differs from R*C.
// Shape mismatches between operands never reach run time; they are type errors.
var ErrArity = errors.New("matrix: value count does not match shape")
