package main

import (
	"fmt"
	"strings"

	"github.com/mdraeger/networks/core"
	"github.com/mdraeger/networks/dijkstra"
)

// DijkstraCommand computes single-source shortest paths over the ingested
// network and prints distance and predecessor per node.
type DijkstraCommand struct {
	Meta
}

func (c *DijkstraCommand) Run(args []string) int {
	var (
		start   string
		useHeap bool
	)
	f := c.flagSet("dijkstra")
	f.StringVar(&start, "start", "", "name of the source node")
	f.BoolVar(&useHeap, "use-heap", false, "use the heap strategy instead of the array scan")
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

	var opts []dijkstra.Option
	if useHeap {
		opts = append(opts, dijkstra.WithHeap())
	}
	result, err := dijkstra.ShortestPaths(network, source, opts...)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	c.Ui.Output(fmt.Sprintf("shortest paths from %s:", nodeName(names, source)))
	c.Ui.Output(fmt.Sprintf("%-24s %-24s %s", "NODE", "PREDECESSOR", "DISTANCE"))
	for i := 0; i < rowLimit(network.NumNodes(), cfg.Limit); i++ {
		id := core.NodeID(i)
		dist := "-"
		if result.Reached(id) {
			dist = fmt.Sprintf("%g", result.Dist[id])
		}
		c.Ui.Output(fmt.Sprintf("%-24s %-24s %s",
			nodeName(names, id), nodeName(names, result.Pred[id]), dist))
	}

	return 0
}

func (c *DijkstraCommand) Help() string {
	helpText := `
Usage: networks dijkstra [options] EDGE-FILE

  Reads an edge file, builds the network, and computes single-source
  shortest paths from the source node. Prints one row per node with its
  shortest-path predecessor and distance; unreached nodes show NONE and
  no distance.

Options:

  -start=name     Name of the source node (default: first node in the file).
  -use-heap       Use the heap strategy instead of the array scan.
  -pattern=re     Arc-extraction regular expression.
  -skip=n         Header lines to discard.
  -undirected     Emit both arc directions per input line.
  -limit=n        Maximum result rows to print.
  -config=path    YAML defaults file.
`

	return strings.TrimSpace(helpText)
}

func (c *DijkstraCommand) Synopsis() string {
	return "Compute single-source shortest paths over an edge file"
}
