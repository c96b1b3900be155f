// Package core defines the flow Graph, Vertex, and Edge types used by every
// solver in this module, and provides thread-safe primitives for building,
// querying, cloning, and updating flow networks.
//
// The Graph is an arena: vertices and edges live in slots addressed by stable
// integer indices. Removing a vertex or an edge tombstones its slot; no other
// index ever moves. Clone preserves every slot, so an index taken from the
// original names the same edge or vertex in the clone.
//
// Errors:
//
//	ErrEmptyVertexID     - vertex ID is the empty string.
//	ErrDuplicateVertex   - AddVertex with an ID that already exists.
//	ErrVertexNotFound    - requested vertex does not exist.
//	ErrEdgeNotFound      - requested edge does not exist.
//	ErrNegativeCapacity  - capacity below zero.
//	ErrFlowOutOfRange    - flow would leave [0, capacity].
//	ErrLoopNotAllowed    - self-loop when loops are disabled.
//	ErrConservation      - net flow at a vertex differs from what is required.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates AddVertex was called with an existing ID.
	ErrDuplicateVertex = errors.New("core: duplicate vertex ID")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeCapacity indicates a capacity below zero.
	ErrNegativeCapacity = errors.New("core: negative capacity")

	// ErrFlowOutOfRange indicates a flow value outside [0, capacity].
	ErrFlowOutOfRange = errors.New("core: flow out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrConservation indicates that flow is not conserved at a vertex.
	ErrConservation = errors.New("core: flow conservation violated")
)

// FlowError describes an edge whose flow is (or would become) outside [0, Capacity].
type FlowError struct {
	Edge     int
	From, To string
	Flow     int64
	Capacity int64
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("core: flow %d outside [0, %d] on edge %d (%q→%q)",
		e.Flow, e.Capacity, e.Edge, e.From, e.To)
}

// Is reports ErrFlowOutOfRange as the sentinel for FlowError.
func (e *FlowError) Is(target error) bool { return target == ErrFlowOutOfRange }

// ConservationError describes a vertex whose net outflow differs from Want.
type ConservationError struct {
	Vertex  string
	In, Out int64
	Want    int64
}

func (e *ConservationError) Error() string {
	return fmt.Sprintf("core: vertex %q has inflow %d and outflow %d (net %d, want %d)",
		e.Vertex, e.In, e.Out, e.Out-e.In, e.Want)
}

// Is reports ErrConservation as the sentinel for ConservationError.
func (e *ConservationError) Is(target error) bool { return target == ErrConservation }

// Vertex is a node of a flow network.
//
// Balance is the required net outflow: positive for a source (supply),
// negative for a sink (demand), zero for a transshipment vertex.
type Vertex struct {
	// Index is the stable arena slot of this vertex.
	Index int

	// ID is the unique user-facing label of this vertex.
	ID string

	// Balance is the supply (>0) or demand (<0) of this vertex.
	Balance int64

	// Metadata stores arbitrary user data. It is shared, not deep-copied, by Clone.
	Metadata map[string]interface{}
}

// Edge is a directed arc of a flow network.
//
// Invariant: 0 <= Flow <= Capacity. Cost is charged per unit of flow.
type Edge struct {
	// Index is the stable arena slot of this edge; it identifies the edge across clones.
	Index int

	// From and To are vertex indices.
	From, To int

	// Capacity is the upper bound on Flow.
	Capacity int64

	// Flow is the currently assigned flow.
	Flow int64

	// Cost is the per-unit cost of flow on this edge.
	Cost int64
}

// Remaining returns Capacity - Flow.
func (e Edge) Remaining() int64 { return e.Capacity - e.Flow }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithCapacityHint preallocates arena slots for the expected number of vertices and edges.
func WithCapacityHint(vertices, edges int) GraphOption {
	return func(g *Graph) {
		if vertices > 0 {
			g.vertices = make([]*Vertex, 0, vertices)
			g.out = make([][]int, 0, vertices)
			g.in = make([][]int, 0, vertices)
		}
		if edges > 0 {
			g.edges = make([]*Edge, 0, edges)
		}
	}
}

// VertexOption configures a vertex when it is added.
type VertexOption func(*Vertex)

// WithBalance sets the supply (>0) or demand (<0) of a new vertex.
func WithBalance(balance int64) VertexOption {
	return func(v *Vertex) { v.Balance = balance }
}

// WithMetadata stores key=value in the new vertex's Metadata.
func WithMetadata(key string, value interface{}) VertexOption {
	return func(v *Vertex) { v.Metadata[key] = value }
}

// Graph is an in-memory directed flow network.
//
// mu guards every field. vertices and edges are arenas whose nil slots are
// tombstones; out and in list incident edge indices per vertex slot.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool

	vertices []*Vertex     // slot → vertex (nil once removed)
	byID     map[string]int // vertex ID → slot
	edges    []*Edge        // slot → edge (nil once removed)
	out      [][]int        // vertex slot → outgoing edge slots, ascending
	in       [][]int        // vertex slot → incoming edge slots, ascending

	liveEdges int
}

// NewGraph creates an empty flow Graph. Self-loops are rejected unless WithLoops is given.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{byID: make(map[string]int)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
