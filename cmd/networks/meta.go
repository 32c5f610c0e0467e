package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"

	"github.com/mdraeger/networks/compactstar"
	"github.com/mdraeger/networks/core"
	"github.com/mdraeger/networks/ingest"
)

// Meta holds the state shared by all subcommands: the UI, the logger, and
// the ingestion flags every command accepts.
type Meta struct {
	Ui  cli.Ui
	Log hclog.Logger

	configPath string
	pattern    string
	skip       int
	undirected bool
	limit      int
}

// flagSet returns a FlagSet preloaded with the flags common to every
// subcommand. Flag values are resolved against the config file by
// resolve, so overrides only apply when the flag was actually set.
func (m *Meta) flagSet(name string) *flag.FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.StringVar(&m.configPath, "config", "", "YAML defaults file")
	f.StringVar(&m.pattern, "pattern", "", "arc-extraction regular expression")
	f.IntVar(&m.skip, "skip", 0, "header lines to discard")
	f.BoolVar(&m.undirected, "undirected", false, "emit both arc directions per line")
	f.IntVar(&m.limit, "limit", 0, "maximum result rows to print")
	f.Usage = func() {}
	f.SetOutput(os.Stderr)

	return f
}

// resolve layers the parsed flags over the config file (when given) over
// the compiled-in defaults.
func (m *Meta) resolve(f *flag.FlagSet) (Config, error) {
	cfg := DefaultConfig()
	if m.configPath != "" {
		loaded, err := LoadConfig(m.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "pattern":
			cfg.Pattern = m.pattern
		case "skip":
			cfg.Skip = m.skip
		case "undirected":
			cfg.Undirected = m.undirected
		case "limit":
			cfg.Limit = m.limit
		}
	})

	return cfg, nil
}

// loadNetwork ingests the edge file at path per cfg and builds the
// compact-star network plus the id-to-name table.
func (m *Meta) loadNetwork(path string, cfg Config) (*compactstar.CompactStar, *ingest.NameTable, error) {
	parser, err := ingest.NewParser(cfg.Pattern)
	if err != nil {
		return nil, nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening edge file: %w", err)
	}
	defer file.Close()

	opts := []ingest.Option{ingest.WithSkip(cfg.Skip)}
	if cfg.Undirected {
		opts = append(opts, ingest.WithUndirected())
	}

	names := ingest.NewNameTable()
	arcs, err := ingest.ReadArcs(file, parser, names, opts...)
	if err != nil {
		return nil, nil, err
	}
	m.Log.Debug("edge file ingested", "path", path, "nodes", names.Len(), "arcs", len(arcs))

	network, err := compactstar.Build(names.Len(), arcs)
	if err != nil {
		return nil, nil, err
	}
	m.Log.Info("network built", "nodes", network.NumNodes(), "arcs", network.NumArcs())

	return network, names, nil
}

// startNode resolves the -start flag against the name table, defaulting
// to the first interned node when the flag is empty.
func (m *Meta) startNode(start string, names *ingest.NameTable) (core.NodeID, error) {
	if start == "" {
		if names.Len() == 0 {
			return 0, fmt.Errorf("edge file contains no nodes")
		}
		return 0, nil
	}

	id, ok := names.Lookup(start)
	if !ok {
		return 0, fmt.Errorf("unknown start node %q", start)
	}

	return id, nil
}

// nodeName translates id back to its external name, printing NONE for the
// invalid sentinel.
func nodeName(names *ingest.NameTable, id core.NodeID) string {
	name, ok := names.Name(id)
	if !ok {
		return "NONE"
	}

	return name
}

// rowLimit caps n rows at the configured limit; a limit of 0 or less
// means unbounded.
func rowLimit(n, limit int) int {
	if limit > 0 && limit < n {
		return limit
	}

	return n
}
