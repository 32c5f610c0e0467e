// Command networks is the front end for the compact-star graph engine:
// it ingests a line-oriented edge file, builds the network once, and runs
// one of the algorithms (bfs, dfs, dijkstra, pagerank) over it.
package main

import (
	"os"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
)

const version = "0.1.0"

func main() {
	os.Exit(realMain())
}

func realMain() int {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	level := hclog.LevelFromString(os.Getenv("NETWORKS_LOG_LEVEL"))
	if level == hclog.NoLevel {
		level = hclog.Warn
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "networks",
		Level:  level,
		Output: os.Stderr,
	})

	meta := Meta{Ui: ui, Log: logger}

	runner := cli.NewCLI("networks", version)
	runner.Args = os.Args[1:]
	runner.Commands = map[string]cli.CommandFactory{
		"bfs": func() (cli.Command, error) {
			return &TraverseCommand{Meta: meta}, nil
		},
		"dfs": func() (cli.Command, error) {
			return &TraverseCommand{Meta: meta, DepthFirst: true}, nil
		},
		"dijkstra": func() (cli.Command, error) {
			return &DijkstraCommand{Meta: meta}, nil
		},
		"pagerank": func() (cli.Command, error) {
			return &PagerankCommand{Meta: meta}, nil
		},
	}

	exitStatus, err := runner.Run()
	if err != nil {
		logger.Error("command failed", "error", err)
	}

	return exitStatus
}
