// SPDX-License-Identifier: MIT

//go:build !nanidebug

package meta_test

import (
	"testing"

	"github.com/katalvlaran/nani/meta"
	"github.com/stretchr/testify/assert"
)

// TestDefaultBuildIsRelease verifies a build without the nanidebug tag reports release mode.
func TestDefaultBuildIsRelease(t *testing.T) {
	assert.False(t, meta.DebugBuild)
	assert.False(t, meta.IsDebugBuild())
}
