// Package dijkstra defines core types and configuration options
// for the multi-source shortest-path engine.
//
// Options:
//
//	– WithLogger:      structured logger for run lifecycle events (default no-op).
//	– WithMaxDistance: optional cap on distances to explore; vertices beyond it stay unreachable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNoSources       if the source list is empty.
//	– ErrSourceNotFound  if none of the sources is a vertex of the graph.
//	– ErrNonPositiveCost if the run reaches an edge with cost < 1.
//	– ErrVertexNotFound  if a query names a vertex the graph does not have.
//	– ErrUnreachable     if a query names a vertex no source reaches.
//	– ErrNotSettled      if a query runs on a result whose last run failed.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panics in WithMaxDistance).
package dijkstra

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridkit/errkind"
)

// Sentinel errors returned by the shortest-path engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Calculate.
	ErrNilGraph = errkind.New(errkind.ErrPrecondition, "dijkstra: graph is nil")

	// ErrNoSources indicates an empty source list.
	ErrNoSources = errkind.New(errkind.ErrConfiguration, "dijkstra: no source vertices")

	// ErrSourceNotFound indicates that none of the sources exists in the graph.
	ErrSourceNotFound = errkind.New(errkind.ErrConfiguration, "dijkstra: no source vertex found in graph")

	// ErrNonPositiveCost indicates an edge with cost < 1 reached during the run.
	ErrNonPositiveCost = errkind.New(errkind.ErrPrecondition, "dijkstra: edge cost must be at least 1")

	// ErrVertexNotFound indicates a query for a vertex that is not in the graph.
	ErrVertexNotFound = errkind.New(errkind.ErrNotFound, "dijkstra: vertex not found in graph")

	// ErrUnreachable indicates a query for a vertex that no source reaches.
	ErrUnreachable = errkind.New(errkind.ErrNotFound, "dijkstra: vertex unreachable")

	// ErrNotSettled indicates a query on a result whose last run failed.
	ErrNotSettled = errkind.New(errkind.ErrPrecondition, "dijkstra: result is not settled")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Infinity is the distance of a vertex no source reaches.
const Infinity int64 = math.MaxInt64

// State is the lifecycle stage of a Result.
type State int

const (
	// StateUninitialized: no run has started.
	StateUninitialized State = iota
	// StateInitialized: distances are seeded, relaxation has not finished.
	StateInitialized
	// StateSettled: the run completed; queries are valid.
	StateSettled
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateSettled:
		return "settled"
	default:
		return "uninitialized"
	}
}

// Options configures the behavior of a run.
//
// MaxDistance – vertices whose distance would exceed this value are left
// unreachable. Must be ≥ 0. Default is Infinity (no cap).
type Options struct {
	Logger      *zap.Logger
	MaxDistance int64
}

// Option represents a functional option for configuring Calculate.
type Option func(*Options)

// WithLogger routes run lifecycle events to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns the defaults: no-op logger, no distance cap.
func DefaultOptions() Options {
	return Options{
		Logger:      zap.NewNop(),
		MaxDistance: Infinity,
	}
}
