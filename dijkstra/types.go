// Package dijkstra defines sentinel errors and configuration options for
// single-source shortest paths on a core.Graph.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	   • Each vertex is finalized at most once (V extracts).
//	   • Each successful relaxation pushes one heap entry (up to E pushes).
//	– Space: O(V + E)
//	   • O(V) for the distance and predecessor slices.
//	   • O(E) in the heap in the worst case (lazy decrease-key).
//
// Options:
//
//	– MaxDistance:      vertices farther than this are left unreached.
//	– InfEdgeThreshold: edges with weight >= this threshold are impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panic from WithMaxDistance).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (panic from WithInfEdgeThreshold).
//	– core.ErrVertexOutOfRange (wrapped) if the source is not a vertex.
package dijkstra

import (
	"errors"
	"math"
)

// Unreached is the distance reported for vertices the search never reached.
const Unreached int64 = math.MaxInt64

// Sentinel errors returned by ShortestPaths.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// negative, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures ShortestPaths.
//
// MaxDistance      – vertices whose distance would exceed it stay Unreached.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are skipped.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// WithMaxDistance caps exploration at max. Panics if max < 0.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
// Panics if threshold <= 0.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no walls.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
