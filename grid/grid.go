package grid

import (
	"bufio"
	"fmt"
	"io"
)

// NewGrid builds an orthogonal rows×cols lattice with 4-connectivity.
// Every cell starts with target degree 2, no deletions, no start/end.
// Complexity: O(rows×cols) time and memory.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if rows*cols > 255 {
		return nil, ErrIndexOverflow
	}

	g := &Grid{Rows: rows, Cols: cols}
	g.nodes = make([]node, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.nodes = append(g.nodes, node{row: uint8(r), col: uint8(c), targetDegree: 2})
		}
	}

	g.adjacency = make([][]Index, len(g.nodes))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			idx := g.Index(r, c)
			if r+1 < rows {
				other := g.Index(r+1, c)
				g.adjacency[idx] = append(g.adjacency[idx], other)
				g.adjacency[other] = append(g.adjacency[other], idx)
			}
			if c+1 < cols {
				other := g.Index(r, c+1)
				g.adjacency[idx] = append(g.adjacency[idx], other)
				g.adjacency[other] = append(g.adjacency[other], idx)
			}
		}
	}

	return g, nil
}

// Parse reads the whitespace-separated cell-code format described in
// the CLI contract: "cols rows c(0,0) c(0,1) … c(rows-1,cols-1)", each
// code in {0,1,2,3} (open, deleted, start, end). Rejects input where
// exactly one of start/end is present (ErrAsymmetricEndpoints).
// Complexity: O(rows×cols).
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	next := func() (int, bool) {
		if !sc.Scan() {
			return 0, false
		}
		var v int
		if _, err := fmt.Sscanf(sc.Text(), "%d", &v); err != nil {
			return 0, false
		}
		return v, true
	}

	cols, ok := next()
	if !ok {
		return nil, ErrMalformedInput
	}
	rows, ok := next()
	if !ok {
		return nil, ErrMalformedInput
	}

	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	var haveStart, haveEnd bool
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			code, ok := next()
			if !ok {
				return nil, ErrMalformedInput
			}
			idx := g.Index(r, c)
			switch CellCode(code) {
			case CellOpen:
				// target degree already 2
			case CellDeleted:
				g.nodes[idx].targetDegree = 0
				g.DeleteNode(idx)
			case CellStart:
				haveStart = true
				g.nodes[idx].targetDegree = 1
				g.StartIdx = idx
			case CellEnd:
				haveEnd = true
				g.nodes[idx].targetDegree = 1
				g.EndIdx = idx
			default:
				return nil, ErrBadCellCode
			}
		}
	}

	if haveStart != haveEnd {
		return nil, ErrAsymmetricEndpoints
	}
	g.HaveEndpoints = haveStart

	return g, nil
}

// Index maps (row, col) to a row-major position: row*cols + col.
// Complexity: O(1).
func (g *Grid) Index(row, col int) Index {
	return Index(row*g.Cols + col)
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx Index) Coordinate {
	return Coordinate{Row: int(idx) / g.Cols, Col: int(idx) % g.Cols}
}

// TargetDegree returns the number of path edges cell idx must have in
// any valid solution: 0 (deleted), 1 (start/end) or 2 (ordinary).
// Complexity: O(1).
func (g *Grid) TargetDegree(idx Index) int8 {
	return g.nodes[idx].targetDegree
}

// Neighbors returns the materialized list of idx's remaining adjacent
// cells. Deleted cells have an empty neighbor list.
// Complexity: O(deg(idx)).
func (g *Grid) Neighbors(idx Index) []Index {
	out := make([]Index, len(g.adjacency[idx]))
	copy(out, g.adjacency[idx])
	return out
}

// Connected reports whether a and b are adjacent in the current graph.
// Complexity: O(deg(a)).
func (g *Grid) Connected(a, b Index) bool {
	for _, n := range g.adjacency[a] {
		if n == b {
			return true
		}
	}
	return false
}

// DeleteNode removes idx from the graph: it is pruned from every
// neighbor's adjacency list and its own list is emptied. Target degree
// is the caller's responsibility (Parse sets it to 0 before deleting).
// Complexity: O(deg(idx)) amortized across all neighbors' slices.
func (g *Grid) DeleteNode(idx Index) {
	for _, other := range g.adjacency[idx] {
		adj := g.adjacency[other]
		for i, n := range adj {
			if n == idx {
				g.adjacency[other] = append(adj[:i], adj[i+1:]...)
				break
			}
		}
	}
	g.adjacency[idx] = nil
	g.nodes[idx].deleted = true
}
