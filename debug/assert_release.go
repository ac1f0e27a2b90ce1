//go:build !debug

// Package debug provides assertions that can be enabled with the debug build
// tag or will otherwise compile to no-ops, and the logger shared by all
// packages of this module.
//
// Assertions guard preconditions the display framework promises to uphold.
// A release build must keep scanning out even if one is violated, so callers
// still handle the failure after asserting.
package debug

// Guard assertions that are expensive to evaluate with `if debug.Enabled{...}`,
// otherwise they can't be removed in release builds.
const Enabled = false

// Assert panics if b is false.
func Assert(b bool, message string) {}

// Assertf panics with a formatted message if b is false.
func Assertf(b bool, format string, args ...any) {}

// AssertErrNil panics if err is not nil.
func AssertErrNil(err error) {}
