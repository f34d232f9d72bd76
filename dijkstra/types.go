// Package dijkstra defines the capability interface, option set and
// sentinel errors for the generic single-source shortest-path search.
//
// A search never owns its graph. The caller describes an implicit graph
// through a Traversal: how to enumerate the edges leaving a point, which
// points can never be entered, and where to read and write distances.
//
// Errors (sentinel; their messages are the panic values):
//
//	– ErrNilTraversal if Run is handed a nil Traversal.
//	– ErrBadCapacity  if WithInitialCapacity is given a negative size.
package dijkstra

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors. Both signal caller bugs, so Run and the option
// constructors panic with them instead of returning them.
var (
	// ErrNilTraversal indicates that Run was called without a Traversal.
	ErrNilTraversal = errors.New("dijkstra: traversal is nil")

	// ErrBadCapacity indicates a negative heap pre-allocation size.
	ErrBadCapacity = errors.New("dijkstra: initial capacity must be non-negative")
)

// Distance is the set of cost types a search can accumulate.
// Costs are unsigned so that every path is monotonically non-decreasing.
type Distance interface {
	constraints.Unsigned
}

// Edge is one directed edge leaving a point: the neighbour and the cost
// of stepping onto it.
type Edge[P comparable, D Distance] struct {
	To   P
	Cost D
}

// Traversal is what a concrete grid (or any implicit graph) must supply.
//
//	Neighbours   – directed edges leaving p; b carries static context such as
//	               width and height. No in-bounds filtering is done by Run.
//	IsImpossible – true if p can never be entered (a wall). Edges into such a
//	               point are treated as infinitely expensive.
//	Dist         – best known distance of p; ok is false while undiscovered.
//	SetDist      – store a new best distance for p. Only Run calls this.
type Traversal[P comparable, B any, D Distance] interface {
	Neighbours(p P, b B) []Edge[P, D]
	IsImpossible(p P) bool
	Dist(p P) (d D, ok bool)
	SetDist(p P, d D)
}

// Options configures a single Run.
//
// MaxDistance     – candidates strictly above this are never relaxed.
// HasMaxDistance  – whether MaxDistance is in effect (default: no cap).
// OnRelax         – observer called after every SetDist performed by Run.
// InitialCapacity – heap pre-allocation hint.
type Options[P comparable, D Distance] struct {
	MaxDistance     D
	HasMaxDistance  bool
	OnRelax         func(p P, old D, hadOld bool, nu D)
	InitialCapacity int
}

// Option represents a functional option for configuring Run.
type Option[P comparable, D Distance] func(*Options[P, D])

// WithMaxDistance caps exploration: a point whose candidate distance would
// exceed max is left untouched. A zero cap settles only the source.
func WithMaxDistance[P comparable, D Distance](max D) Option[P, D] {
	return func(o *Options[P, D]) {
		o.MaxDistance = max
		o.HasMaxDistance = true
	}
}

// WithOnRelax registers an observer for every distance write. old/hadOld
// describe the value being replaced.
func WithOnRelax[P comparable, D Distance](fn func(p P, old D, hadOld bool, nu D)) Option[P, D] {
	return func(o *Options[P, D]) {
		o.OnRelax = fn
	}
}

// WithInitialCapacity pre-sizes the priority queue.
// Panics with ErrBadCapacity if n < 0.
func WithInitialCapacity[P comparable, D Distance](n int) Option[P, D] {
	return func(o *Options[P, D]) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		o.InitialCapacity = n
	}
}

// DefaultOptions returns an uncapped configuration with no observer and a
// small heap.
func DefaultOptions[P comparable, D Distance]() Options[P, D] {
	return Options[P, D]{InitialCapacity: 64}
}

// Stats summarises one Run.
//
//	Pushed   – entries pushed onto the queue (source included).
//	Popped   – entries popped, stale ones included.
//	Stale    – popped entries skipped because a better distance was known.
//	Relaxed  – successful SetDist calls (source initialisation excluded).
//	MaxQueue – peak queue length.
type Stats struct {
	Pushed   int
	Popped   int
	Stale    int
	Relaxed  int
	MaxQueue int
}
