// SPDX-License-Identifier: MIT
// Package: mcflow/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   • Path: n ≥ 2; vertices idFn(0..n-1); arcs i→i+1 for i asc.
//   • Cycle: n ≥ 2; as Path plus the closing arc (n-1)→0.
//   • Capacity and cost of each arc are drawn from cfg in emission order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mcflow/core"
)

const (
	methodPath   = "Path"
	methodCycle  = "Cycle"
	minPathNodes = 2
)

// Path returns a Constructor that builds the directed path 0→1→…→n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return chain(g, cfg, methodPath, n, false)
	}
}

// Cycle returns a Constructor that builds the directed cycle 0→1→…→n-1→0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return chain(g, cfg, methodCycle, n, true)
	}
}

func chain(g *core.Graph, cfg builderConfig, method string, n int, closed bool) error {
	if n < minPathNodes {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minPathNodes, ErrTooFewVertices)
	}
	if err := addVertices(g, cfg, method, n); err != nil {
		return err
	}
	for i := 0; i+1 < n; i++ {
		if err := addArc(g, cfg, method, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
			return err
		}
	}
	if closed {
		return addArc(g, cfg, method, cfg.idFn(n-1), cfg.idFn(0))
	}

	return nil
}
