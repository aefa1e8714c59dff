// SPDX-License-Identifier: MIT

//go:build nanidebug

package meta

// DebugBuild reports whether the binary was compiled with the nanidebug tag.
const DebugBuild = true
