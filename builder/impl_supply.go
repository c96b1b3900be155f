// SPDX-License-Identifier: MIT
// Package: mcflow/builder
//
// impl_supply.go - balance constructors.
//
// Contract:
//   • SupplyDemand(source, sink, amount): both vertices must already exist
//     (apply it after a topology constructor); source gains +amount and sink
//     −amount on top of their current balances.
//   • Transportation(m, n, supply): K_{m,n} (see CompleteBipartite) where the
//     m suppliers share supply and the n consumers share the same total
//     demand. Shares are as even as possible; lower indices take the remainder.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mcflow/core"
)

const (
	methodSupplyDemand   = "SupplyDemand"
	methodTransportation = "Transportation"
)

// SupplyDemand returns a Constructor that ships amount units from source to sink.
func SupplyDemand(source, sink string, amount int64) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if amount < 0 {
			return fmt.Errorf("%s: amount=%d: %w", methodSupplyDemand, amount, ErrInvalidAmount)
		}
		for _, step := range []struct {
			id    string
			delta int64
		}{{source, amount}, {sink, -amount}} {
			b, err := g.Balance(step.id)
			if err == nil {
				err = g.SetBalance(step.id, b+step.delta)
			}
			if err != nil {
				return fmt.Errorf("%s: %s: %w", methodSupplyDemand, step.id, err)
			}
		}

		return nil
	}
}

// Transportation returns a Constructor that builds a balanced transportation
// instance with m suppliers and n consumers.
func Transportation(m, n int, supply int64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if supply < 0 {
			return fmt.Errorf("%s: supply=%d: %w", methodTransportation, supply, ErrInvalidAmount)
		}
		if err := bipartite(g, cfg, methodTransportation, m, n); err != nil {
			return err
		}
		for i, share := range shares(supply, m) {
			id := fmt.Sprintf("%s%d", cfg.leftPrefix, i)
			if err := g.SetBalance(id, share); err != nil {
				return fmt.Errorf("%s: %s: %w", methodTransportation, id, err)
			}
		}
		for j, share := range shares(supply, n) {
			id := fmt.Sprintf("%s%d", cfg.rightPrefix, j)
			if err := g.SetBalance(id, -share); err != nil {
				return fmt.Errorf("%s: %s: %w", methodTransportation, id, err)
			}
		}

		return nil
	}
}

// shares splits total into k near-equal parts, remainder to the first ones.
func shares(total int64, k int) []int64 {
	out := make([]int64, k)
	base, rem := total/int64(k), total%int64(k)
	for i := range out {
		out[i] = base
		if int64(i) < rem {
			out[i]++
		}
	}

	return out
}
