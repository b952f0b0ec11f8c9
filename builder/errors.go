// SPDX-License-Identifier: MIT
// Package: trianglepath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Constructors attach context with %w ("Random: lo=5 > hi=1: ...").
//   • Option constructors panic on programmer errors; builders never do.

package builder

import "errors"

// ErrBadSize indicates a row count below the allowed minimum.
var ErrBadSize = errors.New("builder: invalid size")

// ErrBadRange indicates a value range whose lower bound exceeds the upper one.
var ErrBadRange = errors.New("builder: invalid value range")
