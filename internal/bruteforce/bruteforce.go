// Package bruteforce exhaustively counts Hamiltonian-style path systems
// on a small grid by backtracking search, for cross-checking the
// row-sweep dynamic program's output in tests. It is never built into
// the shipped binary; its complexity is exponential and only tractable
// for the handful of cells exercised by tests (≤16).
package bruteforce

import (
	"math/big"

	"github.com/aurajamming/hamiltonpaths/grid"
)

// Count exhaustively counts valid path systems on g: with a start/end
// pair, the number of simple paths from start to end visiting every
// non-deleted cell exactly once; without one, the number of simple
// cycles visiting every non-deleted cell exactly once (single
// Hamiltonian cycles), counted once per cycle regardless of traversal
// direction.
func Count(g *grid.Grid) *big.Int {
	total := 0
	for idx := grid.Index(0); int(idx) < g.Rows*g.Cols; idx++ {
		if g.TargetDegree(idx) > 0 {
			total++
		}
	}
	if total == 0 {
		// Nothing needs covering: the empty structure is the unique
		// solution, matching the row sweep's vacuous success on an
		// all-deleted grid.
		return big.NewInt(1)
	}

	count := new(big.Int)
	visited := make([]bool, g.Rows*g.Cols)

	if g.HaveEndpoints {
		visited[g.StartIdx] = true
		walkPath(g, g.StartIdx, g.EndIdx, visited, total-1, count)
		return count
	}

	var start grid.Index
	for idx := grid.Index(0); int(idx) < g.Rows*g.Cols; idx++ {
		if g.TargetDegree(idx) > 0 {
			start = idx
			break
		}
	}
	visited[start] = true
	walkCycle(g, start, start, visited, total-1, count)
	count.Rsh(count, 1) // each cycle counted once per traversal direction
	return count
}

// walkPath extends a simple path from cur, having already visited
// start and any cells walkPath's caller chain covered, toward end;
// remaining is how many more cells, end included, must still be
// visited, and the path may step onto end only as the last of them.
func walkPath(g *grid.Grid, cur, end grid.Index, visited []bool, remaining int, count *big.Int) {
	if remaining == 0 {
		if cur == end {
			count.Add(count, big.NewInt(1))
		}
		return
	}
	for _, nb := range g.Neighbors(cur) {
		if visited[nb] || (nb == end && remaining > 1) {
			continue
		}
		visited[nb] = true
		walkPath(g, nb, end, visited, remaining-1, count)
		visited[nb] = false
	}
}

// walkCycle extends a simple path from cur back toward start, counting
// a hit for every neighbor of cur equal to start once all other cells
// have been visited.
func walkCycle(g *grid.Grid, start, cur grid.Index, visited []bool, remaining int, count *big.Int) {
	if remaining == 0 {
		if g.Connected(cur, start) {
			count.Add(count, big.NewInt(1))
		}
		return
	}
	for _, nb := range g.Neighbors(cur) {
		if visited[nb] || nb == start {
			continue
		}
		visited[nb] = true
		walkCycle(g, start, nb, visited, remaining-1, count)
		visited[nb] = false
	}
}
