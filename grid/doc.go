// Package grid provides a dense, rectangular 2D container addressed by
// geom.Point, plus connected-region discovery and boundary tracing on top
// of it.
//
// What:
//
//   - Grid[T]: row-major cells of a single type. Built once (Read, Fill,
//     FromPoints, New), then mutated in place with Set. Column count is fixed
//     by the first row.
//   - Line / Lines: restartable row and column views, forward or reversed.
//   - Areas: lazy flood fill yielding one Area per connected region.
//   - Perimeter / Side: directed border edges of an area and their
//     decomposition into straight sides.
//
// Flood fill:
//
//	visited := Grid[bool] shaped like the source
//	for p in row-major order:
//	    if visited[p] || !canStart(p): continue
//	    area := {p}; stack := [p]
//	    while stack not empty:
//	        q := pop(stack)
//	        for n in 4-neighbours(q):
//	            if on grid && !visited[n] && belongs(n, area-so-far):
//	                area += n; visited[n] = true; push(n)
//	    yield area
//
// The belongs predicate observes the area as built so far, not its final
// membership. Predicates that look only at cell values (SameValue) give
// order-independent regions; predicates that inspect the area may give
// results that depend on expansion order.
//
// Complexity:
//
//   - Areas:     O(W·H) time, O(W·H) memory for visited flags.
//   - Perimeter: O(|area|).
//   - Sides:     O(|perimeter|).
//
// Errors:
//
//   - ErrRowWidth, ErrEmptyPoints, ErrNegativePoint, ErrInvertedSection
//     (errkind.ErrConfiguration)
//   - ErrOutOfRange (errkind.ErrOutOfBounds)
//   - ErrNotDiagonal, ErrDiagonalPath (errkind.ErrPrecondition)
package grid
