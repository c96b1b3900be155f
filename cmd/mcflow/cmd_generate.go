package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/mcflow/builder"
	"github.com/katalvlaran/mcflow/core"
	mbp "github.com/katalvlaran/mcflow/mainboilerplate"
	"github.com/katalvlaran/mcflow/netfile"
)

const generateLongDesc = `
Generate a synthetic network and write it to FILE as YAML.

--topology selects the shape:

  path, cycle     --size vertices "0".."size-1"
  grid            --size × --size cells "r,c", arcs pointing right and down
  random          --size vertices, each arc present with --density
  transport       --size suppliers "L*" and --size consumers "R*", fully connected

Capacities and costs are drawn uniformly from the --capacity and --cost
ranges using --seed. Unless the topology is transport, --supply units are
shipped from the first vertex to the last.

Example:

mcflow generate --topology grid --size 5 --supply 3 --seed 7 grid.yaml
`

type cmdGenerate struct {
	Topology    string  `long:"topology" default:"random" choice:"path" choice:"cycle" choice:"grid" choice:"random" choice:"transport" description:"Network shape"`
	Size        int     `long:"size" short:"n" default:"10" description:"Vertices per side or in total, depending on topology"`
	Density     float64 `long:"density" default:"0.2" description:"Arc probability for the random topology"`
	Supply      int64   `long:"supply" default:"1" description:"Units to ship"`
	MinCapacity int64   `long:"min-capacity" default:"1" description:"Lower bound of edge capacities"`
	MaxCapacity int64   `long:"max-capacity" default:"10" description:"Upper bound of edge capacities"`
	MinCost     int64   `long:"min-cost" default:"0" description:"Lower bound of edge costs"`
	MaxCost     int64   `long:"max-cost" default:"9" description:"Upper bound of edge costs"`
	Seed        int64   `long:"seed" default:"1" description:"Random seed"`

	Args struct {
		File string `positional-arg-name:"FILE" required:"1"`
	} `positional-args:"yes"`
}

func (cmd *cmdGenerate) Execute([]string) error {
	mbp.InitLog(baseCfg.Log)

	if cmd.MaxCapacity < cmd.MinCapacity || cmd.MaxCost < cmd.MinCost {
		return fmt.Errorf("invalid ranges: capacity [%d, %d], cost [%d, %d]",
			cmd.MinCapacity, cmd.MaxCapacity, cmd.MinCost, cmd.MaxCost)
	}
	var cons, err = cmd.constructors()
	if err != nil {
		return err
	}
	g, err := builder.BuildNetwork(nil,
		[]builder.BuilderOption{
			builder.WithSeed(cmd.Seed),
			builder.WithCapacityFn(builder.UniformFn(cmd.MinCapacity, cmd.MaxCapacity)),
			builder.WithCostFn(builder.UniformFn(cmd.MinCost, cmd.MaxCost)),
		},
		cons...)
	if err != nil {
		return err
	}
	if err = netfile.Save(fs, cmd.Args.File, g); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"file":     cmd.Args.File,
		"topology": cmd.Topology,
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
	}).Info("generated network")
	fmt.Fprintf(stdout, "wrote %s: %s\n", cmd.Args.File, summary(g))
	return nil
}

func (cmd *cmdGenerate) constructors() ([]builder.Constructor, error) {
	var n = cmd.Size
	switch cmd.Topology {
	case "path":
		return cmd.shipped(builder.Path(n), "0", fmt.Sprint(n-1)), nil
	case "cycle":
		return cmd.shipped(builder.Cycle(n), "0", fmt.Sprint(n-1)), nil
	case "grid":
		return cmd.shipped(builder.Grid(n, n), builder.GridID(0, 0), builder.GridID(n-1, n-1)), nil
	case "random":
		return cmd.shipped(builder.RandomSparse(n, cmd.Density), "0", fmt.Sprint(n-1)), nil
	case "transport":
		return []builder.Constructor{builder.Transportation(n, n, cmd.Supply)}, nil
	default:
		return nil, fmt.Errorf("unknown topology %q", cmd.Topology)
	}
}

func (cmd *cmdGenerate) shipped(topology builder.Constructor, source, sink string) []builder.Constructor {
	return []builder.Constructor{topology, builder.SupplyDemand(source, sink, cmd.Supply)}
}

func summary(g *core.Graph) string {
	var s = g.Stats()
	return fmt.Sprintf("%d vertices, %d edges, supply %d", s.VertexCount, s.EdgeCount, s.TotalSupply)
}
