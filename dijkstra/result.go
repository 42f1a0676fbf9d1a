package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/gridkit/core"
)

// lookup validates a query target and returns its distance.
func (r *Result) lookup(id string) (int64, error) {
	if r.state != StateSettled {
		return Infinity, fmt.Errorf("%w: state %s", ErrNotSettled, r.state)
	}
	d, ok := r.dist[id]
	if !ok {
		return Infinity, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	if d == Infinity {
		return Infinity, fmt.Errorf("%w: %q", ErrUnreachable, id)
	}

	return d, nil
}

// Distance returns the shortest distance from any source to id.
func (r *Result) Distance(id string) (int64, error) { return r.lookup(id) }

// Reachable reports whether some source reaches id.
func (r *Result) Reachable(id string) bool {
	_, err := r.lookup(id)
	return err == nil
}

// Distances returns a copy of the distances of all reachable vertices.
func (r *Result) Distances() map[string]int64 {
	out := make(map[string]int64, len(r.dist))
	if r.state != StateSettled {
		return out
	}
	for v, d := range r.dist {
		if d != Infinity {
			out[v] = d
		}
	}

	return out
}

// Previous returns the primary predecessor of id, "" for a source.
func (r *Result) Previous(id string) (string, error) {
	if _, err := r.lookup(id); err != nil {
		return "", err
	}

	return r.prev[id], nil
}

// AllPrevious returns the primary predecessor followed by every tied
// predecessor, in the order they were found. Sources have none.
func (r *Result) AllPrevious(id string) ([]string, error) {
	if _, err := r.lookup(id); err != nil {
		return nil, err
	}

	return r.allPrevious(id), nil
}

func (r *Result) allPrevious(id string) []string {
	p, ok := r.prev[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, 1+len(r.ties[id]))
	out = append(out, p)

	return append(out, r.ties[id]...)
}

// Path follows primary predecessors from id back to a source and returns
// the vertices source first.
func (r *Result) Path(id string) ([]string, error) {
	if _, err := r.lookup(id); err != nil {
		return nil, err
	}

	var rev []string
	for v, ok := id, true; ok; v, ok = r.prev[v] {
		rev = append(rev, v)
	}
	path := make([]string, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path, nil
}

// Sources returns the declared sources that exist in the graph, in
// declaration order.
func (r *Result) Sources() []string { return append([]string(nil), r.sources...) }

// Graph returns the graph the result was computed on.
func (r *Result) Graph() *core.Graph { return r.g }

// State returns the lifecycle stage.
func (r *Result) State() State { return r.state }
