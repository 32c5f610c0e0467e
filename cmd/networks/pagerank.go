package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/mdraeger/networks/core"
	"github.com/mdraeger/networks/pagerank"
)

// PagerankCommand runs the power iteration over the ingested network and
// prints the rank per node.
type PagerankCommand struct {
	Meta
}

func (c *PagerankCommand) Run(args []string) int {
	var (
		beta   float64
		eps    float64
		target string
	)
	f := c.flagSet("pagerank")
	f.Float64Var(&beta, "beta", pagerank.DefaultBeta, "probability of following no outgoing arc")
	f.Float64Var(&eps, "eps", pagerank.DefaultEps, "convergence threshold on the L2 distance")
	f.StringVar(&target, "target", "", "print only this node's rank")
	if err := f.Parse(args); err != nil {
		return 1
	}
	if len(f.Args()) != 1 {
		c.Ui.Error("Expected a single argument: EDGE-FILE.")
		return 1
	}

	cfg, err := c.resolve(f)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "beta":
			cfg.Beta = beta
		case "eps":
			cfg.Eps = eps
		}
	})

	network, names, err := c.loadNetwork(f.Args()[0], cfg)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	ranks, err := pagerank.Ranks(network,
		pagerank.WithBeta(cfg.Beta), pagerank.WithEps(cfg.Eps))
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	if target != "" {
		id, ok := names.Lookup(target)
		if !ok {
			c.Ui.Error(fmt.Sprintf("unknown target node %q", target))
			return 1
		}
		c.Ui.Output(fmt.Sprintf("%s %.6f", target, ranks[id]))
		return 0
	}

	c.Ui.Output(fmt.Sprintf("ranks (beta=%g, eps=%g):", cfg.Beta, cfg.Eps))
	c.Ui.Output(fmt.Sprintf("%-24s %s", "NODE", "RANK"))
	for i := 0; i < rowLimit(len(ranks), cfg.Limit); i++ {
		c.Ui.Output(fmt.Sprintf("%-24s %.6f", nodeName(names, core.NodeID(i)), ranks[i]))
	}

	return 0
}

func (c *PagerankCommand) Help() string {
	helpText := `
Usage: networks pagerank [options] EDGE-FILE

  Reads an edge file, builds the network, and runs the rank power
  iteration until successive iterations are within the convergence
  threshold. Prints one row per node with its rank, or only the target
  node's rank when -target is given.

Options:

  -beta=p         Probability of following no outgoing arc.
  -eps=t          Convergence threshold on the L2 distance.
  -target=name    Print only this node's rank.
  -pattern=re     Arc-extraction regular expression.
  -skip=n         Header lines to discard.
  -undirected     Emit both arc directions per input line.
  -limit=n        Maximum result rows to print.
  -config=path    YAML defaults file.
`

	return strings.TrimSpace(helpText)
}

func (c *PagerankCommand) Synopsis() string {
	return "Compute node ranks over an edge file"
}
