// SPDX-License-Identifier: MIT

//go:build !nanidebug

package vector_test

import (
	"testing"

	"github.com/katalvlaran/nani/dim"
	"github.com/katalvlaran/nani/vector"
	"github.com/stretchr/testify/assert"
)

// TestUnitUncheckedOutsideDebug verifies normal builds skip the bounds check, so an
// invalid basis index reaches the runtime bounds check instead of returning an error.
func TestUnitUncheckedOutsideDebug(t *testing.T) {
	assert.Panics(t, func() { _, _ = vector.Unit[float64, dim.D2](2) })
	assert.Panics(t, func() { _, _ = vector.Unit[float64, dim.D2](-1) })
}
