// SPDX-License-Identifier: MIT

package meta

// IsDebugBuild returns DebugBuild. Kept as a function so call sites read the
// same way whichever file the build tag selected.
func IsDebugBuild() bool { return DebugBuild }
