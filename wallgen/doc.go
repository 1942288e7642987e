// SPDX-License-Identifier: MIT

// Package wallgen generates deterministic walls of segment strengths for
// demos, fixtures and benchmarks.
//
// Generators:
//   - Pulse:  repeating strong/weak blocks (period, duty)
//   - Random: uniform strengths in [base, base+amplitude]
//   - Ramp:   linear rise from base to base+amplitude
//
// Every generator takes the wall length n and functional options. Output
// depends only on (n, options): the same seed always yields the same wall.
//
// Errors:
//   - ErrBadSize      n < 1
//   - ErrUnknownShape ByName with an unknown generator name
//
// Option constructors panic on meaningless values (WithAmplitude(0),
// WithDuty(1.5), WithRand(nil)); generators never panic.
package wallgen
