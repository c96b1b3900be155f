// Package netfile reads and writes flow networks as YAML documents.
//
// An instance lists vertices with their balances and edges with their
// capacities and costs. A solution is the same document with a flow on every
// edge and the total cost:
//
//	vertices:
//	- id: A
//	  balance: 2
//	- id: D
//	  balance: -2
//	edges:
//	- from: A
//	  to: D
//	  capacity: 2
//	  cost: 1
//	  flow: 2
//	cost: 2
//
// Bipartite instances label vertices with part: A or part: B. Since YAML is a
// superset of JSON, JSON documents of the same shape decode as well.
package netfile

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/matching"
)

// PartKey is the vertex Metadata key holding a vertex's part label.
const PartKey = matching.PartKey

// ErrUnknownVertex is returned for an edge naming a vertex that is not declared.
var ErrUnknownVertex = errors.New("netfile: edge names an undeclared vertex")

// Network is the document form of a core.Graph.
type Network struct {
	Vertices []Vertex `yaml:"vertices"`
	Edges    []Edge   `yaml:"edges"`
	// Cost is set on solutions only.
	Cost *int64 `yaml:"cost,omitempty"`
}

// Vertex is one entry of Network.Vertices.
type Vertex struct {
	ID      string `yaml:"id"`
	Balance int64  `yaml:"balance,omitempty"`
	Part    string `yaml:"part,omitempty"`
}

// Edge is one entry of Network.Edges.
type Edge struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Capacity int64  `yaml:"capacity"`
	Cost     int64  `yaml:"cost"`
	Flow     int64  `yaml:"flow,omitempty"`
}

// Decode parses a YAML (or JSON) document. Unknown fields are errors.
func Decode(b []byte) (*Network, error) {
	var n Network
	if err := yaml.UnmarshalStrict(b, &n); err != nil {
		return nil, errors.WithMessage(err, "decoding network")
	}

	return &n, nil
}

// Encode renders n as YAML.
func Encode(n *Network) ([]byte, error) {
	b, err := yaml.Marshal(n)
	if err != nil {
		return nil, errors.WithMessage(err, "encoding network")
	}

	return b, nil
}

// Graph builds a core.Graph from n. Vertices and edges take indices in
// document order, so edge i of the returned graph is n.Edges[i].
func (n *Network) Graph() (*core.Graph, error) {
	g := core.NewGraph(core.WithCapacityHint(len(n.Vertices), len(n.Edges)))
	for i, v := range n.Vertices {
		opts := []core.VertexOption{core.WithBalance(v.Balance)}
		if v.Part != "" {
			opts = append(opts, core.WithMetadata(PartKey, v.Part))
		}
		if _, err := g.AddVertex(v.ID, opts...); err != nil {
			return nil, errors.WithMessagef(err, "vertex %d (%q)", i, v.ID)
		}
	}
	for i, e := range n.Edges {
		for _, id := range []string{e.From, e.To} {
			if !g.HasVertex(id) {
				return nil, errors.WithMessagef(ErrUnknownVertex, "edge %d (%s→%s): %q", i, e.From, e.To, id)
			}
		}
		eid, err := g.AddEdge(e.From, e.To, e.Capacity, e.Cost)
		if err == nil && e.Flow != 0 {
			err = g.SetFlow(eid, e.Flow)
		}
		if err != nil {
			return nil, errors.WithMessagef(err, "edge %d (%s→%s)", i, e.From, e.To)
		}
	}

	return g, nil
}

// FromGraph returns the document form of g in index order. With withCost the
// total cost of g's flows is included, as for a solution.
//
// Slot indices are not preserved: documents have no tombstones, so after a
// RemoveVertex or RemoveEdge on g the surviving edges are numbered 0..k-1 in
// the document (and in the graph Graph builds from it), keeping their order.
func FromGraph(g *core.Graph, withCost bool) *Network {
	vertices := g.Vertices()
	ids := make(map[int]string, len(vertices))
	n := &Network{Vertices: make([]Vertex, 0, len(vertices))}
	for _, v := range vertices {
		ids[v.Index] = v.ID
		part, _ := v.Metadata[PartKey].(string)
		n.Vertices = append(n.Vertices, Vertex{ID: v.ID, Balance: v.Balance, Part: part})
	}
	for _, e := range g.Edges() {
		n.Edges = append(n.Edges, Edge{
			From:     ids[e.From],
			To:       ids[e.To],
			Capacity: e.Capacity,
			Cost:     e.Cost,
			Flow:     e.Flow,
		})
	}
	if withCost {
		cost := g.TotalCost()
		n.Cost = &cost
	}

	return n
}

// Load reads the network at path from fs.
func Load(fs afero.Fs, path string) (*core.Graph, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.WithMessagef(err, "reading %s", path)
	}
	n, err := Decode(b)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	g, err := n.Graph()
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}

	return g, nil
}

// Save writes g as an instance document, without a total cost, to path on fs.
func Save(fs afero.Fs, path string, g *core.Graph) error {
	return write(fs, path, FromGraph(g, false))
}

// WriteSolution writes g, its flows, and its total cost to path on fs.
func WriteSolution(fs afero.Fs, path string, g *core.Graph) error {
	return write(fs, path, FromGraph(g, true))
}

func write(fs afero.Fs, path string, n *Network) error {
	b, err := Encode(n)
	if err != nil {
		return err
	}

	return errors.WithMessagef(afero.WriteFile(fs, path, b, 0644), "writing %s", path)
}
