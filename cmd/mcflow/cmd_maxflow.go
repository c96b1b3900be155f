package main

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/flow"
	mbp "github.com/katalvlaran/mcflow/mainboilerplate"
	"github.com/katalvlaran/mcflow/netfile"
)

const maxFlowLongDesc = `
Compute a maximum flow from --source to --sink in the network of FILE and
print its value followed by the flow on every edge. Balances and costs are
ignored.

Example:

mcflow maxflow --source s --sink t --algorithm dinic network.yaml
`

type cmdMaxFlow struct {
	SolverConfig
	Source string `long:"source" short:"s" required:"true" description:"Source vertex ID"`
	Sink   string `long:"sink" short:"t" required:"true" description:"Sink vertex ID"`

	Args struct {
		File string `positional-arg-name:"FILE" required:"1"`
	} `positional-args:"yes"`
}

func (cmd *cmdMaxFlow) Execute([]string) error {
	mbp.InitLog(baseCfg.Log)

	var g, err = netfile.Load(fs, cmd.Args.File)
	if err != nil {
		return err
	}
	var ctx, cancel = cmd.context(context.Background())
	defer cancel()

	value, result, err := flow.Run(ctx, cmd.algorithm(), g, cmd.Source, cmd.Sink,
		&flow.FlowOptions{Logger: log.WithField("file", cmd.Args.File)})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "max flow: %d\n", value)
	return writeEdgeTable(result)
}

// writeEdgeTable lists every edge of g with its flow.
func writeEdgeTable(g *core.Graph) error {
	var table = tablewriter.NewWriter(stdout)
	table.Header("Edge", "From", "To", "Flow", "Capacity", "Cost")

	for _, e := range g.Edges() {
		var from, _ = g.VertexAt(e.From)
		var to, _ = g.VertexAt(e.To)
		if err := table.Append([]string{
			fmt.Sprint(e.Index),
			from.ID,
			to.ID,
			fmt.Sprint(e.Flow),
			fmt.Sprint(e.Capacity),
			fmt.Sprint(e.Cost),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}
