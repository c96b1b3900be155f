// SPDX-License-Identifier: MIT
// Package: mcflow/builder
//
// api.go - the BuildNetwork orchestrator.
//
// Design contract:
//   - One orchestrator: BuildNetwork(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Constructors never panic; they return errors wrapping a builder or core sentinel.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mcflow/core"
)

// Constructor applies a deterministic mutation to g using the resolved config.
// Constructors validate parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildNetwork creates a core.Graph with gopts, resolves bopts, and applies
// cons in order. The first constructor error is returned as "BuildNetwork: %w";
// no partial graph is returned.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildNetwork(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return g, nil
}

// addArc adds from→to with capacity and cost drawn from cfg, in that order.
func addArc(g *core.Graph, cfg builderConfig, method, from, to string) error {
	capacity := cfg.capacityFn(cfg.rng)
	cost := cfg.costFn(cfg.rng)
	if _, err := g.AddEdge(from, to, capacity, cost); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, cap=%d, cost=%d): %w", method, from, to, capacity, cost, err)
	}

	return nil
}

// addVertices adds vertices idFn(0..n-1) in ascending order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int, opts ...core.VertexOption) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if _, err := g.AddVertex(id, opts...); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}
