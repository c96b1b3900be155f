// Package mincost solves minimum-cost flow problems by cycle canceling.
//
// Each vertex of the input core.Graph carries a balance: positive for a
// supply, negative for a demand, zero for transshipment. CycleCanceling finds
// edge flows that ship every supply to the demands at the least total cost:
//
//	res, err := mincost.CycleCanceling(ctx, g)
//	if errors.Is(err, mincost.ErrInfeasibleFlow) { ... }
//	fmt.Println(res.Cost)
//
// # Method
//
//  1. Balance check: the balances must sum to zero, otherwise
//     *UnbalancedInstanceError. Nothing is cloned or mutated first.
//  2. Feasible flow: a clone of g gains a supersource feeding every supply
//     and a supersink draining every demand (cost 0). A maximum flow between
//     them that does not saturate every supply means *InfeasibleFlowError.
//  3. Cancel loop: while the residual network holds a negative-cost cycle,
//     push the cycle's bottleneck around it. Each round strictly lowers the
//     total cost, so the loop ends on integral data.
//  4. The supersource and supersink are removed and the clone is returned.
//
// The caller's graph is never modified. Edge indices of the result match the
// input's, so res.Graph.EdgeAt(i) is the solved flow on the input's edge i.
//
// The cancel loop has no iteration cap; pass a context with a deadline to
// bound it.
package mincost
