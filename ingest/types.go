// Package ingest provides tunable options and error definitions for
// pattern-based edge extraction.
package ingest

import (
	"errors"
	"fmt"
)

// DefaultPattern extracts "from to cost" triples of alphanumeric names and
// decimal costs from whitespace-separated lines; trailing columns are
// ignored and no capacity group is present.
const DefaultPattern = `^(?P<from>[[:alnum:]]+).(?P<to>[[:alnum:]]+)\s+(?P<cost>\d+.\d+).*$`

// Sentinel errors for ingestion.
var (
	// ErrBadPattern is returned when the arc pattern does not compile.
	ErrBadPattern = errors.New("ingest: pattern does not compile")

	// ErrMissingGroup is returned when the pattern lacks the mandatory
	// named capture groups "from" and "to".
	ErrMissingGroup = errors.New("ingest: pattern must name 'from' and 'to' capture groups")

	// ErrLineMismatch is returned when an input line does not match the
	// arc pattern.
	ErrLineMismatch = errors.New("ingest: line does not match pattern")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ingest: invalid option supplied")
)

// Options configures ReadArcs.
type Options struct {
	// Skip is the number of header lines to discard before parsing.
	Skip int

	// Undirected, when set, emits the reverse arc for every parsed line,
	// modeling an undirected edge as two directed arcs.
	Undirected bool

	// internal error recorded during option parsing
	err error
}

// Option configures ingestion via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with no header skipping and directed
// interpretation.
func DefaultOptions() Options {
	return Options{Skip: 0, Undirected: false}
}

// WithSkip discards the first n lines of the input before parsing.
func WithSkip(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: skip cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Skip = n
	}
}

// WithUndirected emits two arcs, one per direction, for every input line.
func WithUndirected() Option {
	return func(o *Options) {
		o.Undirected = true
	}
}
