// SPDX-License-Identifier: MIT
// Package: trianglepath/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors panic on meaningless inputs; builders never panic.
//   • Seeding is explicit: WithSeed or WithRand, else DefaultSeed.

package builder

import (
	"math/rand"
)

// DefaultSeed seeds the RNG when no option selects one.
const DefaultSeed int64 = 1

// builderConfig is the resolved configuration shared by all constructors.
type builderConfig struct {
	rng *rand.Rand
}

// Option customizes a constructor by mutating builderConfig.
type Option func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and on the command line to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// newBuilderConfig applies opts over the defaults.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}
