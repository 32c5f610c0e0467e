// Package ingest extracts arc lists from line-oriented text via a
// caller-supplied regular expression with named capture groups.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/mdraeger/networks/core"
)

// Parser applies one compiled arc pattern to input lines. The pattern
// must name "from" and "to" capture groups; "cost" and "cap" groups are
// optional and default to 0 when absent — an ingestion-level default, the
// network core itself never invents values.
type Parser struct {
	re      *regexp.Regexp
	fromIdx int
	toIdx   int
	costIdx int
	capIdx  int
}

// NewParser compiles pattern and validates its capture groups.
func NewParser(pattern string) (*Parser, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPattern, err)
	}
	p := &Parser{
		re:      re,
		fromIdx: re.SubexpIndex("from"),
		toIdx:   re.SubexpIndex("to"),
		costIdx: re.SubexpIndex("cost"),
		capIdx:  re.SubexpIndex("cap"),
	}
	if p.fromIdx < 0 || p.toIdx < 0 {
		return nil, fmt.Errorf("%w: got %q", ErrMissingGroup, pattern)
	}

	return p, nil
}

// ParseLine extracts one arc from line, interning endpoint names in
// names. Returns ErrLineMismatch when the line does not match the
// pattern.
func (p *Parser) ParseLine(line string, names *NameTable) (core.Arc, error) {
	m := p.re.FindStringSubmatch(line)
	if m == nil {
		return core.Arc{}, fmt.Errorf("%w: %q", ErrLineMismatch, line)
	}

	return core.Arc{
		From:     names.Intern(m[p.fromIdx]),
		To:       names.Intern(m[p.toIdx]),
		Cost:     p.group(m, p.costIdx),
		Capacity: p.group(m, p.capIdx),
	}, nil
}

// group parses an optional float group, defaulting to 0 when the group is
// absent from the pattern, unmatched, or not a number.
func (p *Parser) group(m []string, idx int) float64 {
	if idx < 0 || m[idx] == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m[idx], 64)
	if err != nil {
		return 0
	}

	return v
}

// ReadArcs parses every line of r into an arc list, interning node names
// into names as they are first seen. Header lines (WithSkip) are
// discarded unparsed; with WithUndirected every line contributes the
// reverse arc too. The first non-matching body line aborts with
// ErrLineMismatch wrapped with its line number.
func ReadArcs(r io.Reader, parser *Parser, names *NameTable, opts ...Option) ([]core.Arc, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	var arcs []core.Arc
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo <= cfg.Skip {
			continue
		}

		arc, err := parser.ParseLine(scanner.Text(), names)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		arcs = append(arcs, arc)
		if cfg.Undirected {
			arcs = append(arcs, core.Arc{
				From:     arc.To,
				To:       arc.From,
				Cost:     arc.Cost,
				Capacity: arc.Capacity,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ingest: reading input: %w", err)
	}

	return arcs, nil
}
