// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Allocate.
// This file defines:
//   - AllocOption (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherAllocOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultFill is the value Allocate writes into every cell when no fill
// option is given. It matches the benchmark fixture used by cmd/parmul.
const DefaultFill float32 = 17.5

// AllocOption customizes Allocate by mutating an allocConfig before the
// buffer is filled.
// Complexity: applying N options costs O(N) time, O(1) space.
type AllocOption func(*allocConfig)

// allocConfig is the resolved Allocate configuration.
//   - fill: constant written into every cell (ignored when fillFn != nil).
//   - fillFn: per-cell generator, called in row-major order.
type allocConfig struct {
	fill   float32
	fillFn func(i, j int) float32
}

// WithFill sets the constant written into every cell.
// Complexity: O(1).
func WithFill(v float32) AllocOption {
	return func(c *allocConfig) {
		c.fill = v
		c.fillFn = nil
	}
}

// WithFillFunc sets a per-cell generator f(i, j). Cells are visited in
// row-major order, so a seeded RNG inside f stays reproducible.
// Panics on nil to surface programmer error early.
func WithFillFunc(f func(i, j int) float32) AllocOption {
	if f == nil {
		panic("matrix: WithFillFunc(nil)")
	}
	return func(c *allocConfig) {
		c.fillFn = f
	}
}

// gatherAllocOptions applies opts over the documented defaults.
func gatherAllocOptions(opts ...AllocOption) allocConfig {
	cfg := allocConfig{fill: DefaultFill}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
