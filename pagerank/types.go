// Package pagerank provides tunable options and error definitions for
// rank propagation over a core.Network.
package pagerank

import (
	"errors"
	"fmt"
)

// Default parameter values used by DefaultOptions.
const (
	// DefaultBeta is the default teleport (damping) probability.
	DefaultBeta = 0.2

	// DefaultEps is the default convergence tolerance on the L2 distance
	// between successive rank vectors.
	DefaultEps = 1e-6
)

// Sentinel errors for rank propagation.
var (
	// ErrNilNetwork is returned when a nil network is passed.
	ErrNilNetwork = errors.New("pagerank: network is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pagerank: invalid option supplied")

	// ErrMassExceeded is returned when the post-redistribution rank mass
	// exceeds 1.0. That can only happen through a misconfigured beta or a
	// numerics defect, so the computation aborts instead of clamping.
	ErrMassExceeded = errors.New("pagerank: cumulative rank mass exceeds 1.0")
)

// Options holds the rank-propagation parameters.
//
// Beta is the teleport probability: the share of rank mass withheld from
// propagation each iteration. It must lie strictly inside (0, 1) — with
// beta exactly 0, floating-point error can push the rank sum above 1.0
// and trip ErrMassExceeded.
//
// Eps is the convergence tolerance: iteration stops once the L2 distance
// between successive rank vectors is at most Eps. It must be positive.
type Options struct {
	Beta float64
	Eps  float64

	// internal error recorded during option parsing
	err error
}

// Option configures rank propagation via functional arguments. An invalid
// value is recorded and surfaced as ErrOptionViolation when Ranks runs.
type Option func(*Options)

// DefaultOptions returns Options with DefaultBeta and DefaultEps.
func DefaultOptions() Options {
	return Options{
		Beta: DefaultBeta,
		Eps:  DefaultEps,
	}
}

// WithBeta sets the teleport probability. Must be strictly in (0, 1).
func WithBeta(beta float64) Option {
	return func(o *Options) {
		if beta <= 0 || beta >= 1 {
			o.err = fmt.Errorf("%w: beta must be in (0,1), got %g", ErrOptionViolation, beta)
			return
		}
		o.Beta = beta
	}
}

// WithEps sets the convergence tolerance. Must be positive.
func WithEps(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			o.err = fmt.Errorf("%w: eps must be positive, got %g", ErrOptionViolation, eps)
			return
		}
		o.Eps = eps
	}
}
