// Package core_test contains test helpers for mcflow/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep tests stdlib-only (no third-party assertion frameworks).

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/mcflow/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

// Common capacities and costs used across core tests.
const (
	Cap2  = 2
	Cap5  = 5
	Cost1 = 1
	Cost5 = 5
)

// NewDiamond RETURNS the four-vertex network A→B→D, A→C→D with A supplying 2 and
// D demanding 2. Edges are added in the order A→B, B→D, A→C, C→D (slots 0..3).
func NewDiamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	MustAddVertex(t, g, VertexA, core.WithBalance(2))
	MustAddVertex(t, g, VertexB)
	MustAddVertex(t, g, VertexC)
	MustAddVertex(t, g, VertexD, core.WithBalance(-2))
	MustAddEdge(t, g, VertexA, VertexB, Cap2, Cost1)
	MustAddEdge(t, g, VertexB, VertexD, Cap2, Cost1)
	MustAddEdge(t, g, VertexA, VertexC, Cap2, Cost5)
	MustAddEdge(t, g, VertexC, VertexD, Cap2, Cost5)

	return g
}

// MustAddVertex FAILS the test immediately if AddVertex returns an error.
func MustAddVertex(t *testing.T, g *core.Graph, id string, opts ...core.VertexOption) int {
	t.Helper()
	idx, err := g.AddVertex(id, opts...)
	if err != nil {
		t.Fatalf("AddVertex(%q): unexpected error: %v", id, err)
	}

	return idx
}

// MustAddEdge FAILS the test immediately if AddEdge returns an error.
func MustAddEdge(t *testing.T, g *core.Graph, from, to string, capacity, cost int64) int {
	t.Helper()
	eid, err := g.AddEdge(from, to, capacity, cost)
	if err != nil {
		t.Fatalf("AddEdge(%q→%q): unexpected error: %v", from, to, err)
	}

	return eid
}

// MustErrorIs FAILS unless errors.Is(err, want).
func MustErrorIs(t *testing.T, err, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("expected error %v, got %v", want, err)
	}
}

// MustNoError FAILS if err is non-nil.
func MustNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// MustEqualInt64 FAILS if got != want, naming what was compared.
func MustEqualInt64(t *testing.T, what string, got, want int64) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %d, want %d", what, got, want)
	}
}
