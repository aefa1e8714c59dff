// SPDX-License-Identifier: MIT

//go:build nanidebug

package meta_test

import (
	"testing"

	"github.com/katalvlaran/nani/meta"
	"github.com/stretchr/testify/assert"
)

// TestTaggedBuildIsDebug verifies the nanidebug tag switches debug mode on.
func TestTaggedBuildIsDebug(t *testing.T) {
	assert.True(t, meta.DebugBuild)
	assert.True(t, meta.IsDebugBuild())
}
