// SPDX-License-Identifier: MIT
// Package: algovibe/wallgen
//
// generators.go: deterministic wall generators.
//
// Contract:
//   • Every generator returns a slice of exactly n non-negative strengths,
//     or ErrBadSize when n < 1.
//   • Output is a pure function of (n, options); O(n) time and memory.

package wallgen

import (
	"fmt"
)

const (
	methodPulse  = "Pulse"
	methodRandom = "Random"
	methodRamp   = "Ramp"
)

// Pulse returns a rectangular pulse wall: within every period the first
// duty share of segments is strong (base+amplitude), the rest weak (base).
//
// With the defaults every period of 8 holds 4 strong segments at 90
// followed by 4 weak ones at 10.
func Pulse(n int, opts ...Option) ([]int, error) {
	if n < 1 {
		return nil, sizeError(methodPulse, n)
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg)

	on := cfg.duty * float64(cfg.period)
	out := make([]int, n)
	for i := range out {
		v := cfg.base
		if float64(i%cfg.period) < on {
			v += cfg.amplitude
		}
		out[i] = jitter(cfg, rng, v)
	}
	return out, nil
}

// Random returns strengths drawn uniformly from [base, base+amplitude].
func Random(n int, opts ...Option) ([]int, error) {
	if n < 1 {
		return nil, sizeError(methodRandom, n)
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg)

	out := make([]int, n)
	for i := range out {
		out[i] = jitter(cfg, rng, cfg.base+rng.Intn(cfg.amplitude+1))
	}
	return out, nil
}

// Ramp returns strengths rising linearly from base to base+amplitude.
// A single-segment ramp is just base.
func Ramp(n int, opts ...Option) ([]int, error) {
	if n < 1 {
		return nil, sizeError(methodRamp, n)
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg)

	out := make([]int, n)
	for i := range out {
		v := cfg.base
		if n > 1 {
			v += cfg.amplitude * i / (n - 1)
		}
		out[i] = jitter(cfg, rng, v)
	}
	return out, nil
}

// ByName dispatches to Pulse, Random or Ramp by their lower-case name.
func ByName(name string, n int, opts ...Option) ([]int, error) {
	switch name {
	case "pulse":
		return Pulse(n, opts...)
	case "random":
		return Random(n, opts...)
	case "ramp":
		return Ramp(n, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
}
