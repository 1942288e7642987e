// SPDX-License-Identifier: MIT
// Package: algovibe/wallgen
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • genConfig is the single source of truth for all generator knobs.
//   • newConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • seed      = 1     (used when no *rand.Rand is supplied)
//   • base      = 10    (strength of a weak segment)
//   • amplitude = 80    (added on top of base for strong segments)
//   • duty      = 0.5   (share of each period that is strong)
//   • period    = 8     (segments per pulse period)
//   • noise     = 0     (no jitter)

package wallgen

import (
	"math/rand"
)

// genConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators.
type genConfig struct {
	rng  *rand.Rand // shared stream; nil means "seed a local one"
	seed int64

	base      int     // ≥0
	amplitude int     // >0
	duty      float64 // [0,1]
	period    int     // ≥1
	noise     int     // ≥0, jitter in [-noise, noise]
}

const (
	defaultSeed      = 1
	defaultBase      = 10
	defaultAmplitude = 80
	defaultDuty      = 0.5
	defaultPeriod    = 8
	defaultNoise     = 0
)

// newConfig resolves options on top of the defaults.
func newConfig(opts ...Option) genConfig {
	cfg := genConfig{
		seed:      defaultSeed,
		base:      defaultBase,
		amplitude: defaultAmplitude,
		duty:      defaultDuty,
		period:    defaultPeriod,
		noise:     defaultNoise,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// rngFrom returns cfg.rng if present, else a local rand seeded by cfg.seed.
func rngFrom(cfg genConfig) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}
	return rand.New(rand.NewSource(cfg.seed))
}

// jitter returns v shifted by a uniform value in [-noise, noise],
// clamped at zero so strengths stay non-negative.
func jitter(cfg genConfig, rng *rand.Rand, v int) int {
	if cfg.noise > 0 {
		v += rng.Intn(2*cfg.noise+1) - cfg.noise
	}
	if v < 0 {
		return 0
	}
	return v
}
