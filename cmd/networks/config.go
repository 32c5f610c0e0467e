package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mdraeger/networks/ingest"
	"github.com/mdraeger/networks/pagerank"
)

// Config carries the CLI defaults that can be stored in a YAML file and
// overridden per invocation by flags.
type Config struct {
	// Pattern is the arc-extraction regular expression handed to ingest.
	Pattern string `yaml:"pattern"`

	// Skip is the number of header lines to discard from the edge file.
	Skip int `yaml:"skip"`

	// Undirected makes every input line contribute both arc directions.
	Undirected bool `yaml:"undirected"`

	// Beta is the rank-retention parameter for pagerank.
	Beta float64 `yaml:"beta"`

	// Eps is the pagerank convergence threshold.
	Eps float64 `yaml:"eps"`

	// Limit bounds the number of result rows printed.
	Limit int `yaml:"limit"`
}

// DefaultConfig returns the compiled-in defaults.
func DefaultConfig() Config {
	return Config{
		Pattern: ingest.DefaultPattern,
		Beta:    pagerank.DefaultBeta,
		Eps:     pagerank.DefaultEps,
		Limit:   20,
	}
}

// LoadConfig reads a YAML defaults file over DefaultConfig; keys absent
// from the file keep their compiled-in values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
