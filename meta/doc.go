// SPDX-License-Identifier: MIT

// Package meta exposes build configuration to the rest of the kernel.
//
// The only switch is the debug build, selected with the `nanidebug` build
// tag:
//
//	go test -tags nanidebug ./...
//
// Code that branches on IsDebugBuild compiles the check away in normal builds,
// since the answer is a constant.
package meta
