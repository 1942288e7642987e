// SPDX-License-Identifier: MIT
// Package: algovibe/wallgen
//
// options.go: functional options for wall generators.
//
// Policy:
//   • Option constructors validate eagerly and panic on meaningless values.
//     Generators themselves never panic.

package wallgen

import (
	"math/rand"
)

// Option customizes a generator call.
type Option func(*genConfig)

// WithSeed seeds the local RNG used when no WithRand stream is given.
func WithSeed(seed int64) Option {
	return func(c *genConfig) { c.seed = seed }
}

// WithRand shares an RNG stream across generator calls.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("wallgen: WithRand(nil)")
	}
	return func(c *genConfig) { c.rng = r }
}

// WithBase sets the strength of weak segments (and the floor of Random/Ramp).
func WithBase(base int) Option {
	if base < 0 {
		panic("wallgen: WithBase(base<0)")
	}
	return func(c *genConfig) { c.base = base }
}

// WithAmplitude sets the strength added on top of base.
func WithAmplitude(a int) Option {
	if a <= 0 {
		panic("wallgen: WithAmplitude(a<=0)")
	}
	return func(c *genConfig) { c.amplitude = a }
}

// WithDuty sets the strong share of each Pulse period.
func WithDuty(d float64) Option {
	if d < 0 || d > 1 {
		panic("wallgen: WithDuty(d∉[0,1])")
	}
	return func(c *genConfig) { c.duty = d }
}

// WithPeriod sets the Pulse period in segments.
func WithPeriod(p int) Option {
	if p < 1 {
		panic("wallgen: WithPeriod(p<1)")
	}
	return func(c *genConfig) { c.period = p }
}

// WithNoise adds uniform integer jitter in [-j, j] to every segment.
func WithNoise(j int) Option {
	if j < 0 {
		panic("wallgen: WithNoise(j<0)")
	}
	return func(c *genConfig) { c.noise = j }
}
