// SPDX-License-Identifier: MIT
// Package: mcflow/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = decimalID          ("0","1","2",...)
//   • rng         = nil                (pure/deterministic unless seeded)
//   • capacityFn  = ConstantFn(1)
//   • costFn      = ConstantFn(0)
//   • left/right  = "L" / "R"

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn       func(int) string
	rng        *rand.Rand // nil means no randomness
	capacityFn ValueFn
	costFn     ValueFn

	// Bipartite ID prefixes. Empty → defaults.
	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
	defaultCapacity    = int64(1)
	defaultCost        = int64(0)
)

// newBuilderConfig applies opts in order (last wins) over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        decimalID,
		capacityFn:  ConstantFn(defaultCapacity),
		costFn:      ConstantFn(defaultCost),
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

func decimalID(i int) string {
	return strconv.Itoa(i)
}
