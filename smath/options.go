// SPDX-License-Identifier: MIT

package smath

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Defaults for Close. Both zero: two values are close only when identical.
const (
	// DefaultAbsTol is the absolute tolerance applied by Close.
	DefaultAbsTol = 0.0

	// DefaultRelTol is the tolerance relative to max(|a|, |b|) applied by Close.
	DefaultRelTol = 0.0
)

const (
	panicAbsTolInvalid = "smath: WithAbsTol: tolerance must be finite, non-negative"
	panicRelTolInvalid = "smath: WithRelTol: tolerance must be finite, non-negative"
)

// Option mutates the comparison tolerances used by Close.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the effective tolerances after applying Option setters.
type Options struct {
	absTol float64
	relTol float64
}

// WithAbsTol sets the absolute tolerance. Panics when tol is negative, NaN or Inf.
func WithAbsTol(tol float64) Option {
	if !validTol(tol) {
		panic(panicAbsTolInvalid)
	}

	return func(o *Options) { o.absTol = tol }
}

// WithRelTol sets the relative tolerance. Panics when tol is negative, NaN or Inf.
func WithRelTol(tol float64) Option {
	if !validTol(tol) {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.relTol = tol }
}

// AbsTol returns the configured absolute tolerance.
func (o Options) AbsTol() float64 { return o.absTol }

// RelTol returns the configured relative tolerance.
func (o Options) RelTol() float64 { return o.relTol }

// Gather applies opts over the defaults. Later options win.
func Gather(opts ...Option) Options {
	o := Options{absTol: DefaultAbsTol, relTol: DefaultRelTol}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Close reports whether a and b are within absTol of each other or within
// relTol relative to max(|a|, |b|). With no options it is exact equality.
// An infinity is close only to itself; NaN is close to nothing.
func Close[F Float](a, b F, opts ...Option) bool {
	return Gather(opts...).Close(float64(a), float64(b))
}

// Close applies the receiver's tolerances to a and b.
func (o Options) Close(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, o.absTol, o.relTol)
}

func validTol(tol float64) bool {
	return tol >= 0 && !math.IsInf(tol, 1)
}
