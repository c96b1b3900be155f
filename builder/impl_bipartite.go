// SPDX-License-Identifier: MIT
// Package: mcflow/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left vertices leftPrefix+"0".."n1-1" carry part A; right vertices
//     rightPrefix+"0".."n2-1" carry part B (Metadata[matching.PartKey]).
//   • Arcs run left→right only, emitted for i asc then j asc.
//
// Complexity: O(n1+n2) vertices + O(n1*n2) arcs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/matching"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that builds the directed K_{n1,n2}
// labelled for package matching.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return bipartite(g, cfg, methodCompleteBipartite, n1, n2)
	}
}

func bipartite(g *core.Graph, cfg builderConfig, method string, n1, n2 int) error {
	if n1 < minPartitionSize || n2 < minPartitionSize {
		return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
			method, n1, n2, minPartitionSize, ErrTooFewVertices)
	}

	left := make([]string, n1)
	for i := range left {
		left[i] = fmt.Sprintf("%s%d", cfg.leftPrefix, i)
		if _, err := g.AddVertex(left[i], core.WithMetadata(matching.PartKey, matching.PartA)); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, left[i], err)
		}
	}
	right := make([]string, n2)
	for j := range right {
		right[j] = fmt.Sprintf("%s%d", cfg.rightPrefix, j)
		if _, err := g.AddVertex(right[j], core.WithMetadata(matching.PartKey, matching.PartB)); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, right[j], err)
		}
	}

	for _, u := range left {
		for _, v := range right {
			if err := addArc(g, cfg, method, u, v); err != nil {
				return err
			}
		}
	}

	return nil
}
