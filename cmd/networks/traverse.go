package main

import (
	"fmt"
	"strings"

	"github.com/mdraeger/networks/core"
	"github.com/mdraeger/networks/search"
)

// TraverseCommand runs a breadth-first or depth-first traversal over the
// ingested network and prints the predecessor tree.
type TraverseCommand struct {
	Meta

	// DepthFirst selects DFS; the default is BFS.
	DepthFirst bool
}

func (c *TraverseCommand) Run(args []string) int {
	var start string
	f := c.flagSet(c.name())
	f.StringVar(&start, "start", "", "name of the start node")
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

	network, names, err := c.loadNetwork(f.Args()[0], cfg)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	source, err := c.startNode(start, names)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	run := search.BFS
	if c.DepthFirst {
		run = search.DFS
	}
	result, err := run(network, source)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	c.Ui.Output(fmt.Sprintf("%s from %s:", c.name(), nodeName(names, source)))
	c.Ui.Output(fmt.Sprintf("%-24s %-24s %s", "NODE", "PREDECESSOR", "ORDER"))
	for i := 0; i < rowLimit(network.NumNodes(), cfg.Limit); i++ {
		id := core.NodeID(i)
		order := "-"
		if result.Reached(id) {
			order = fmt.Sprintf("%d", result.Order[id])
		}
		c.Ui.Output(fmt.Sprintf("%-24s %-24s %s",
			nodeName(names, id), nodeName(names, result.Pred[id]), order))
	}

	return 0
}

func (c *TraverseCommand) Help() string {
	helpText := fmt.Sprintf(`
Usage: networks %s [options] EDGE-FILE

  Reads an edge file, builds the network, and runs a %s
  traversal from the start node. Prints one row per node with its
  predecessor in the traversal tree and its discovery order; unreached
  nodes show NONE and no order.

Options:

  -start=name     Name of the start node (default: first node in the file).
  -pattern=re     Arc-extraction regular expression.
  -skip=n         Header lines to discard.
  -undirected     Emit both arc directions per input line.
  -limit=n        Maximum result rows to print.
  -config=path    YAML defaults file.
`, c.name(), c.longName())

	return strings.TrimSpace(helpText)
}

func (c *TraverseCommand) Synopsis() string {
	return fmt.Sprintf("Run a %s traversal over an edge file", c.longName())
}

func (c *TraverseCommand) name() string {
	if c.DepthFirst {
		return "dfs"
	}

	return "bfs"
}

func (c *TraverseCommand) longName() string {
	if c.DepthFirst {
		return "depth-first"
	}

	return "breadth-first"
}
