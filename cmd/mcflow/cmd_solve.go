package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mcflow/core"
	mbp "github.com/katalvlaran/mcflow/mainboilerplate"
	"github.com/katalvlaran/mcflow/mincost"
	"github.com/katalvlaran/mcflow/netfile"
)

const solveLongDesc = `
Solve the minimum-cost flow instance of each FILE and print a summary table.

Instances are solved concurrently, at most --parallel at a time. An instance
whose balances do not sum to zero, or whose supplies cannot reach its demands,
is reported in the table and makes the command exit non-zero; the remaining
instances are still solved.

With --out DIR, the solution of each instance is written to DIR under the
instance's file name.

Examples:

# Solve two instances with Dinic's algorithm for the feasible-flow phase:
mcflow solve --algorithm dinic supply.yaml transport.yaml

# Write solutions next to each other:
mcflow solve --out solved/ instances/*.yaml
`

type cmdSolve struct {
	SolverConfig
	Parallel int    `long:"parallel" short:"p" env:"PARALLEL" default:"4" description:"Maximum number of concurrent solves"`
	Out      string `long:"out" short:"o" description:"Directory to write solutions to"`

	Args struct {
		Files []string `positional-arg-name:"FILE" required:"1"`
	} `positional-args:"yes"`
}

type solveOutcome struct {
	file     string
	stats    *core.GraphStats
	result   *mincost.Result
	err      error
	duration time.Duration
}

func (cmd *cmdSolve) Execute([]string) error {
	mbp.InitLog(baseCfg.Log)

	if cmd.Out != "" {
		if err := fs.MkdirAll(cmd.Out, 0755); err != nil {
			return errors.WithMessage(err, "creating output directory")
		}
	}
	var outcomes = make([]solveOutcome, len(cmd.Args.Files))
	var group, ctx = errgroup.WithContext(context.Background())
	if cmd.Parallel > 0 {
		group.SetLimit(cmd.Parallel)
	}

	for i, file := range cmd.Args.Files {
		i, file := i, file
		group.Go(func() error {
			var g, err = netfile.Load(fs, file)
			if err != nil {
				return err
			}
			var out = &outcomes[i]
			out.file, out.stats = file, g.Stats()

			var solveCtx, cancel = cmd.context(ctx)
			defer cancel()

			var start = time.Now()
			out.result, out.err = mincost.CycleCanceling(solveCtx, g,
				mincost.WithMaxFlowAlgorithm(cmd.algorithm()),
				mincost.WithLogger(log.WithField("file", file)))
			out.duration = time.Since(start)

			if out.err != nil || cmd.Out == "" {
				return nil
			}
			return netfile.WriteSolution(fs, filepath.Join(cmd.Out, filepath.Base(file)), out.result.Graph)
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}
	if cmd.Out != "" {
		log.WithField("dir", cmd.Out).Info("wrote solutions")
	}

	return writeSolveTable(outcomes)
}

func writeSolveTable(outcomes []solveOutcome) error {
	var table = tablewriter.NewWriter(stdout)
	table.Header("File", "Vertices", "Edges", "Supply", "Cost", "Cycles", "Elapsed", "Status")

	var failed int
	for _, o := range outcomes {
		var row = []string{
			o.file,
			fmt.Sprint(o.stats.VertexCount),
			fmt.Sprint(o.stats.EdgeCount),
			humanize.Comma(o.stats.TotalSupply),
		}
		if o.err != nil {
			failed++
			row = append(row, "-", "-", o.duration.Round(time.Microsecond).String(), status(o.err))
		} else {
			row = append(row,
				humanize.Comma(o.result.Cost),
				fmt.Sprint(o.result.Canceled),
				o.duration.Round(time.Microsecond).String(),
				"ok")
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	if failed != 0 {
		return errors.Errorf("%d of %d instances failed", failed, len(outcomes))
	}
	return nil
}

// status is the error message without its package prefix.
func status(err error) string {
	var msg = err.Error()
	if i := strings.Index(msg, ": "); i != -1 && !strings.Contains(msg[:i], " ") {
		return msg[i+2:]
	}
	return msg
}
