// CineRank - Movie Rating API and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package recommend

import (
	"fmt"
	"time"
)

// Config contains the engine's request defaults, limits and resilience settings.
type Config struct {
	// DefaultNeighbors is the neighbor count used when a request leaves K at zero.
	DefaultNeighbors int `json:"default_neighbors"`

	// DefaultTopN is the result size used when a request leaves TopN at zero.
	DefaultTopN int `json:"default_top_n"`

	// MaxNeighbors caps K.
	MaxNeighbors int `json:"max_neighbors"`

	// MaxTopN caps TopN.
	MaxTopN int `json:"max_top_n"`

	// BreakerFailureThreshold is the number of consecutive snapshot load
	// failures that opens the circuit.
	BreakerFailureThreshold uint32 `json:"breaker_failure_threshold"`

	// BreakerTimeout is how long the circuit stays open before probing again.
	BreakerTimeout time.Duration `json:"breaker_timeout"`
}

// DefaultConfig returns the engine defaults (k=2 neighbors, top 3 titles).
func DefaultConfig() Config {
	return Config{
		DefaultNeighbors:        2,
		DefaultTopN:             3,
		MaxNeighbors:            100,
		MaxTopN:                 100,
		BreakerFailureThreshold: 5,
		BreakerTimeout:          30 * time.Second,
	}
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if c.DefaultNeighbors < 1 {
		return fmt.Errorf("default_neighbors must be at least 1, got %d", c.DefaultNeighbors)
	}
	if c.DefaultTopN < 1 {
		return fmt.Errorf("default_top_n must be at least 1, got %d", c.DefaultTopN)
	}
	if c.MaxNeighbors < c.DefaultNeighbors {
		return fmt.Errorf("max_neighbors (%d) must be >= default_neighbors (%d)", c.MaxNeighbors, c.DefaultNeighbors)
	}
	if c.MaxTopN < c.DefaultTopN {
		return fmt.Errorf("max_top_n (%d) must be >= default_top_n (%d)", c.MaxTopN, c.DefaultTopN)
	}
	if c.BreakerFailureThreshold == 0 {
		return fmt.Errorf("breaker_failure_threshold must be positive")
	}
	if c.BreakerTimeout <= 0 {
		return fmt.Errorf("breaker_timeout must be positive, got %v", c.BreakerTimeout)
	}
	return nil
}
