// Package dijkstra computes shortest paths from a set of source vertices
// over a core.Graph with strictly positive edge costs, keeping every tied
// predecessor so that all shortest paths can be reconstructed.
//
// Run lifecycle:
//
//	uninitialized ──Calculate──▶ initialized ──relaxation──▶ settled
//	                                  ▲                          │
//	                                  └────────── Rerun ─────────┘
//
// Algorithm:
//
//   - Every declared source that exists in the graph starts at distance 0,
//     every other vertex at Infinity; all vertices are queued in a
//     decrease-key priority queue (wqueue.Queue).
//   - Pop the closest vertex u. Vertices popped at Infinity are never
//     relaxed. For each outgoing edge u→v (sorted by v, self-loops skipped):
//     cost < 1 fails the run with ErrNonPositiveCost; a strictly shorter
//     distance replaces v's predecessor, drops v's recorded ties and
//     re-queues v; an equal distance records u as an additional tied
//     predecessor.
//
// Queries on a settled Result:
//
//	Distance, Reachable, Distances       – distances (ErrUnreachable for Infinity).
//	Previous, AllPrevious                – primary / primary+tied predecessors.
//	Path                                 – one path along primary predecessors.
//	AllPaths, CountPaths                 – every shortest path, memoised per vertex.
//	OnAnyShortestPath                    – vertices lying on any shortest path.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for the run.
//   - Space: O(V + E) plus recorded ties.
//   - AllPaths output can grow exponentially with the number of ties;
//     CountPaths and OnAnyShortestPath stay linear in the predecessor DAG.
//
// A Result is a snapshot: it is safe for concurrent reads, and stale once
// the graph is mutated. Rerun recomputes it in place and must not race
// with readers.
package dijkstra
