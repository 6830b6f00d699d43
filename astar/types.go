// Package astar defines sentinel errors, configuration options and search
// statistics for the A* solver.
//
// Options:
//
//	– WithHeuristic:  distance estimate between cells (default heuristic.Manhattan).
//	– WithStrictGrid: reject graphs with vertices missing from the grid.
//	– WithOnVisit:    callback for every vertex taken off the frontier.
//	– WithOnRelax:    callback for every successful relaxation.
//	– WithLogger:     structured logger (default discards).
//
// Errors (sentinel):
//
//	– ErrPathNotFound   path reconstruction before a successful Solve.
//	– ErrNoPath         cost requested for an unreachable destination.
//	– ErrUnmappedVertex strict mode found a vertex without a grid cell.
//
// Construction also surfaces core.ErrInvalidVertexCount, core.ErrVertexOutOfRange,
// core.ErrNegativeWeight and the gridgraph grid errors unchanged (wrapped).
package astar

import (
	"errors"
	"io"
	"log/slog"

	"github.com/ashotpetrossian/Algorithms/heuristic"
)

// Sentinel errors returned by the Solver.
var (
	// ErrPathNotFound indicates ReconstructPath was called before Solve succeeded.
	ErrPathNotFound = errors.New("astar: path not yet found")

	// ErrNoPath indicates the destination is unreachable from the source.
	ErrNoPath = errors.New("astar: destination unreachable")

	// ErrUnmappedVertex indicates, in strict mode, a vertex without a grid cell.
	ErrUnmappedVertex = errors.New("astar: vertex has no grid cell")
)

// Options configures a Solver.
type Options struct {
	Heuristic  heuristic.Func              // cell distance estimate
	StrictGrid bool                        // every vertex must have a cell
	OnVisit    func(node int, g int64)     // vertex taken off the frontier
	OnRelax    func(from, to int, g int64) // distance of to improved via from
	Logger     *slog.Logger                // never nil after DefaultOptions
}

// Option represents a functional option for configuring a Solver.
type Option func(*Options)

// DefaultOptions returns Manhattan distance, lenient grid handling, no-op
// hooks and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Heuristic: heuristic.Manhattan,
		OnVisit:   func(int, int64) {},
		OnRelax:   func(int, int, int64) {},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithHeuristic replaces the distance estimate. Panics on nil.
// Pass heuristic.Zero to run plain Dijkstra.
func WithHeuristic(fn heuristic.Func) Option {
	if fn == nil {
		panic("astar: WithHeuristic(nil)")
	}
	return func(o *Options) {
		o.Heuristic = fn
	}
}

// WithStrictGrid makes NewSolver fail with ErrUnmappedVertex when a vertex
// has no grid cell, instead of giving it a zero heuristic.
func WithStrictGrid() Option {
	return func(o *Options) {
		o.StrictGrid = true
	}
}

// WithOnVisit registers a callback run for every vertex popped from the
// frontier, in expansion order, with its final cost from the source.
// The destination is reported too, as the last visit of a successful search.
func WithOnVisit(fn func(node int, g int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnRelax registers a callback run whenever a shorter path to a vertex
// is found.
func WithOnRelax(fn func(from, to int, g int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Stats counts the work done by the last Solve.
type Stats struct {
	Pushes   int // heap insertions, including the source
	Stale    int // popped entries discarded because their vertex was closed
	Expanded int // vertices closed and relaxed
	Visited  int // vertices taken off the frontier (Expanded + destination)
}
