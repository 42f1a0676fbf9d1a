package dijkstra

import (
	"math/big"
	"sort"
)

// ancestors returns id and every vertex reachable from it through primary
// or tied predecessors, ordered by distance (then ID) so that each vertex
// comes after all of its predecessors.
func (r *Result) ancestors(id string) []string {
	seen := map[string]struct{}{id: {}}
	stack := []string{id}
	order := []string{id}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range r.allPrevious(v) {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			stack = append(stack, p)
			order = append(order, p)
		}
	}
	sort.Slice(order, func(i, j int) bool {
		di, dj := r.dist[order[i]], r.dist[order[j]]
		if di != dj {
			return di < dj
		}
		return order[i] < order[j]
	})

	return order
}

// AllPaths returns every shortest path from a source to id, each source
// first. Paths through the primary predecessor come first, then those
// through tied predecessors in the order they were recorded.
//
// Path lists are memoised per vertex in distance order, so each suffix is
// built once. The number of paths can still grow exponentially with the
// number of ties; use CountPaths to size the result first.
func (r *Result) AllPaths(id string) ([][]string, error) {
	if _, err := r.lookup(id); err != nil {
		return nil, err
	}

	memo := make(map[string][][]string)
	for _, v := range r.ancestors(id) {
		preds := r.allPrevious(v)
		if len(preds) == 0 {
			memo[v] = [][]string{{v}}
			continue
		}
		var paths [][]string
		for _, p := range preds {
			for _, prefix := range memo[p] {
				path := make([]string, len(prefix)+1)
				copy(path, prefix)
				path[len(prefix)] = v
				paths = append(paths, path)
			}
		}
		memo[v] = paths
	}

	return memo[id], nil
}

// CountPaths returns the number of distinct shortest paths from any source
// to id without materialising them.
func (r *Result) CountPaths(id string) (*big.Int, error) {
	if _, err := r.lookup(id); err != nil {
		return nil, err
	}

	counts := make(map[string]*big.Int)
	for _, v := range r.ancestors(id) {
		preds := r.allPrevious(v)
		if len(preds) == 0 {
			counts[v] = big.NewInt(1)
			continue
		}
		n := new(big.Int)
		for _, p := range preds {
			n.Add(n, counts[p])
		}
		counts[v] = n
	}

	return counts[id], nil
}

// OnAnyShortestPath returns, sorted, every vertex that lies on at least one
// shortest path from a source to id, id included.
func (r *Result) OnAnyShortestPath(id string) ([]string, error) {
	if _, err := r.lookup(id); err != nil {
		return nil, err
	}
	out := r.ancestors(id)
	sort.Strings(out)

	return out, nil
}
