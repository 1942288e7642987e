// SPDX-License-Identifier: MIT
// Package: algovibe/wallgen
//
// errors.go: sentinel errors for the wallgen package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generators attach context ("Pulse: n=0") with %w.
//   • Generators never panic; validation panics live in WithX constructors.

package wallgen

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a requested wall length below one segment.
var ErrBadSize = errors.New("wallgen: invalid wall length")

// ErrUnknownShape indicates a generator name other than pulse, random or ramp.
var ErrUnknownShape = errors.New("wallgen: unknown shape")

// sizeError wraps ErrBadSize with the generator name and requested length.
func sizeError(method string, n int) error {
	return fmt.Errorf("%s: n=%d: %w", method, n, ErrBadSize)
}
