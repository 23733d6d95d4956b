package transfer

import "github.com/aurajamming/hamiltonpaths/grid"

// Neighbor is one admissible edge leaving a column toward the
// not-yet-processed half of the graph: either the same row's next
// column (a horizontal edge) or the row directly below (vertical).
type Neighbor struct {
	Cell    grid.Index
	SameRow bool
}

// RowInputs bundles the per-row data the enumerator needs, computed
// once per row by RowSetup.
type RowInputs struct {
	Row           int
	TargetDegrees []int8
	NextNeighbors [][]Neighbor
}

// RowSetup computes RowInputs for g's row. next_neighbors for column c
// holds only neighbors that lie strictly after (row, c) in scan order:
// same row with a higher column, or the cell directly below.
func RowSetup(g *grid.Grid, row int) RowInputs {
	cols := g.Cols
	targetDegrees := make([]int8, cols)
	nextNeighbors := make([][]Neighbor, cols)

	for c := 0; c < cols; c++ {
		idx := g.Index(row, c)
		targetDegrees[c] = g.TargetDegree(idx)

		var next []Neighbor
		for _, n := range g.Neighbors(idx) {
			coord := g.Coordinate(n)
			if coord.Row > row || (coord.Row == row && coord.Col > c) {
				next = append(next, Neighbor{Cell: n, SameRow: coord.Row == row})
			}
		}
		nextNeighbors[c] = next
	}

	return RowInputs{Row: row, TargetDegrees: targetDegrees, NextNeighbors: nextNeighbors}
}
