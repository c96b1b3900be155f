package main

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/mcflow/flow"
	mbp "github.com/katalvlaran/mcflow/mainboilerplate"
	"github.com/katalvlaran/mcflow/matching"
	"github.com/katalvlaran/mcflow/mincost"
	"github.com/katalvlaran/mcflow/netfile"
)

const matchLongDesc = `
Compute a matching of the bipartite network of FILE. Every vertex must carry
"part: A" or "part: B" and every edge must run from part A to part B.

By default a maximum-cardinality matching is printed. With --assignment, a
minimum-cost perfect matching is computed instead; it fails if the parts differ
in size or no perfect matching exists.

Example:

mcflow match --assignment workers.yaml
`

type cmdMatch struct {
	SolverConfig
	Assignment bool `long:"assignment" description:"Find a minimum-cost perfect matching"`

	Args struct {
		File string `positional-arg-name:"FILE" required:"1"`
	} `positional-args:"yes"`
}

func (cmd *cmdMatch) Execute([]string) error {
	mbp.InitLog(baseCfg.Log)

	var g, err = netfile.Load(fs, cmd.Args.File)
	if err != nil {
		return err
	}
	var ctx, cancel = cmd.context(context.Background())
	defer cancel()
	var logger = log.WithField("file", cmd.Args.File)

	var res *matching.Result
	if cmd.Assignment {
		res, err = matching.Assignment(ctx, g,
			mincost.WithMaxFlowAlgorithm(cmd.algorithm()),
			mincost.WithLogger(logger))
	} else {
		res, err = matching.Maximum(ctx, g, &flow.FlowOptions{Logger: logger})
	}
	if err != nil {
		return err
	}

	var table = tablewriter.NewWriter(stdout)
	table.Header("A", "B", "Cost")
	for _, p := range res.Pairs {
		if err = table.Append([]string{p.A, p.B, fmt.Sprint(p.Cost)}); err != nil {
			return err
		}
	}
	if err = table.Render(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "matched %d pairs, cost %d\n", res.Size, res.Cost)
	return nil
}
