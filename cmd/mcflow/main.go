package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/spf13/afero"

	"github.com/katalvlaran/mcflow/flow"
	mbp "github.com/katalvlaran/mcflow/mainboilerplate"
)

const iniFilename = "mcflow.ini"

var (
	baseCfg = new(struct {
		Log mbp.LogConfig `group:"Logging" namespace:"log" env-namespace:"LOG"`
	})

	// Replaced by tests.
	stdout io.Writer = os.Stdout
	fs               = afero.NewOsFs()
)

// SolverConfig is shared by commands that run a solver.
type SolverConfig struct {
	Algorithm string        `long:"algorithm" short:"a" env:"ALGORITHM" default:"edmonds-karp" choice:"edmonds-karp" choice:"ford-fulkerson" choice:"dinic" description:"Max-flow algorithm"`
	Timeout   time.Duration `long:"timeout" env:"TIMEOUT" default:"0s" description:"Abandon a solve after this long (0 disables)"`
}

func (cfg SolverConfig) algorithm() flow.Algorithm {
	alg, err := flow.ParseAlgorithm(cfg.Algorithm)
	mbp.Must(err, "invalid algorithm")
	return alg
}

func (cfg SolverConfig) context(parent context.Context) (context.Context, context.CancelFunc) {
	if cfg.Timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, cfg.Timeout)
}

func main() {
	mbp.Must(mbp.LoadEnvFiles(".env"), "failed to load .env")

	var parser = flags.NewParser(baseCfg, flags.Default)
	parser.EnvNamespace = "MCFLOW"
	parser.LongDescription = `mcflow solves minimum-cost flow, maximum flow, and bipartite matching
problems on networks described in YAML files, and generates synthetic ones.

See --help pages of each sub-command for documentation and usage examples.
Optionally configure mcflow with a '` + iniFilename + `' file in the current working directory,
or with '~/.config/mcflow/` + iniFilename + `'. Use the 'print-config' sub-command to inspect
the tool's current configuration.
`
	mbp.AddPrintConfigCmd(parser, iniFilename)
	mustAddCmd(parser.Command, "solve", "Solve min-cost flow instances", solveLongDesc, &cmdSolve{})
	mustAddCmd(parser.Command, "maxflow", "Compute a maximum flow", maxFlowLongDesc, &cmdMaxFlow{})
	mustAddCmd(parser.Command, "match", "Compute a bipartite matching", matchLongDesc, &cmdMatch{})
	mustAddCmd(parser.Command, "serve", "Serve solvers over HTTP", serveLongDesc, &cmdServe{})
	mustAddCmd(parser.Command, "generate", "Generate a synthetic network", generateLongDesc, &cmdGenerate{})

	mbp.MustParseConfig(parser, iniFilename)
}

func mustAddCmd(cmd *flags.Command, name, short, long string, cfg interface{}) *flags.Command {
	cmd, err := cmd.AddCommand(name, short, long, cfg)
	mbp.Must(err, "failed to add command")
	return cmd
}
