// Package: partbench/parts
//
// options.go - functional options for Generate.
//
// Contract:
//   • WithRand panics on nil (programmer error, surfaced early).
//   • Out-of-domain numeric values are recorded and returned by Generate
//     as ErrInvalidParameter, never panicked.
//   • Later options override earlier ones.

package parts

import (
	"fmt"
	"math/rand"
	"time"
)

// Option customizes Generate.
type Option func(*genConfig)

// genConfig carries the resolved generator knobs.
type genConfig struct {
	rng      *rand.Rand
	seed     int64
	seeded   bool
	maxNodes int // 0 = no cap beyond nodes-1
	err      error
}

// WithSeed makes generation reproducible: same seed, same PartMap.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = nil
		c.seed = seed
		c.seeded = true
	}
}

// WithRand supplies an explicit random source. The seed reported by
// GenerateSeeded is 0 in that case since it is not known to the generator.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("parts: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
		c.seeded = false
		c.seed = 0
	}
}

// WithMaxNodes caps the per-part sample size. n == 0 removes the cap.
func WithMaxNodes(n int) Option {
	return func(c *genConfig) {
		if n != 0 && n < MinPartSize {
			c.err = fmt.Errorf("maxNodes=%d < %d: %w", n, MinPartSize, ErrInvalidParameter)
			return
		}
		c.maxNodes = n
	}
}

// newGenConfig applies opts and resolves the random source. Without an
// explicit seed or source the seed is derived from the wall clock.
func newGenConfig(opts ...Option) genConfig {
	var cfg genConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		if !cfg.seeded {
			cfg.seed = time.Now().UnixNano()
			cfg.seeded = true
		}
		cfg.rng = rand.New(rand.NewSource(cfg.seed))
	}

	return cfg
}
