package dijkstra

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridkit/core"
	"github.com/katalvlaran/gridkit/wqueue"
)

// Result is one shortest-path run over a graph from a set of sources.
type Result struct {
	g        *core.Graph
	declared []string // sources as given to Calculate
	options  Options

	state   State
	sources []string            // declared sources present in the graph
	dist    map[string]int64    // every vertex; Infinity when unreached
	prev    map[string]string   // primary predecessor
	ties    map[string][]string // additional predecessors at equal distance
}

// Calculate runs the engine from sources over g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. sources must be non-empty (ErrNoSources).
//  3. at least one source must be a vertex of g (ErrSourceNotFound);
//     sources missing from g are ignored.
//
// The run fails with ErrNonPositiveCost on the first relaxed edge whose
// cost is below 1.
func Calculate(g *core.Graph, sources []string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	r := &Result{g: g, declared: append([]string(nil), sources...), options: cfg}
	if err := r.run(); err != nil {
		return nil, err
	}

	return r, nil
}

// Rerun recomputes the result against the current state of the graph,
// e.g. after the caller added or removed edges. On error the result is
// left unsettled and queries return ErrNotSettled.
func (r *Result) Rerun() error { return r.run() }

func (r *Result) run() error {
	log := r.options.Logger
	if err := r.initialize(); err != nil {
		log.Warn("dijkstra: initialization failed", zap.Error(err))
		return err
	}
	log.Debug("dijkstra: run started",
		zap.Strings("sources", r.sources),
		zap.Int("vertices", len(r.dist)),
	)

	if err := r.process(); err != nil {
		log.Warn("dijkstra: run failed", zap.Error(err))
		return err
	}
	r.state = StateSettled

	reached := 0
	for _, d := range r.dist {
		if d != Infinity {
			reached++
		}
	}
	log.Debug("dijkstra: run settled",
		zap.Int("reached", reached),
		zap.Int("unreached", len(r.dist)-reached),
	)

	return nil
}

// initialize seeds distances and resets predecessor tables.
func (r *Result) initialize() error {
	r.state = StateUninitialized
	r.sources = r.sources[:0]
	seen := make(map[string]struct{}, len(r.declared))
	for _, s := range r.declared {
		if _, dup := seen[s]; dup || !r.g.HasVertex(s) {
			continue
		}
		seen[s] = struct{}{}
		r.sources = append(r.sources, s)
	}
	if len(r.sources) == 0 {
		return fmt.Errorf("%w: %v", ErrSourceNotFound, r.declared)
	}

	vertices := r.g.Vertices()
	r.dist = make(map[string]int64, len(vertices))
	r.prev = make(map[string]string)
	r.ties = make(map[string][]string)
	for _, v := range vertices {
		r.dist[v] = Infinity
	}
	for _, s := range r.sources {
		r.dist[s] = 0
	}
	r.state = StateInitialized

	return nil
}

// process is the main loop: pop the closest vertex and relax its edges
// until the queue is empty or only unreachable vertices remain.
func (r *Result) process() error {
	q := wqueue.New[string]()
	for _, v := range r.g.Vertices() {
		d, ok := r.dist[v]
		if !ok {
			// added to the graph after initialize
			continue
		}
		q.Add(v, d)
	}

	for u, d, ok := q.Pop(); ok; u, d, ok = q.Pop() {
		if d == Infinity || d > r.options.MaxDistance {
			break
		}
		if err := r.relax(q, u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge outgoing from u, whose distance d is final.
func (r *Result) relax(q *wqueue.Queue[string], u string, d int64) error {
	edges, err := r.g.Edges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: edges of %q: %w", u, err)
	}

	for _, e := range edges {
		v := e.To
		if v == u {
			continue
		}
		if e.Cost < 1 {
			return fmt.Errorf("%w: edge %s→%s cost=%d", ErrNonPositiveCost, u, v, e.Cost)
		}
		cur, known := r.dist[v]
		if !known || e.Cost > Infinity-1-d {
			continue
		}
		alt := d + e.Cost
		if alt > r.options.MaxDistance {
			continue
		}

		switch {
		case alt < cur:
			r.dist[v] = alt
			r.prev[v] = u
			delete(r.ties, v)
			q.Add(v, alt)
		case alt == cur:
			r.ties[v] = append(r.ties[v], u)
		}
	}

	return nil
}
