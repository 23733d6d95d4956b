package grid

// Index identifies a cell by its row-major position. It is 8 bits wide by
// design: this caps grids at 255 cells, matching the target-degree design
// this spec was ported from. Implementations that need larger grids should
// widen this type and the generation-tagged DP table together.
type Index uint8

// CellCode is the on-the-wire representation of a single grid cell,
// as read from the whitespace-separated input stream.
type CellCode int

// Cell codes accepted by Parse.
const (
	// CellOpen is an ordinary interior cell: target degree 2.
	CellOpen CellCode = 0
	// CellDeleted excludes the cell from the graph: target degree 0, no edges.
	CellDeleted CellCode = 1
	// CellStart marks the path's start: target degree 1.
	CellStart CellCode = 2
	// CellEnd marks the path's end: target degree 1.
	CellEnd CellCode = 3
)

// node holds the per-cell state tracked by Grid.
type node struct {
	row, col     uint8
	targetDegree int8
	deleted      bool
}

// Coordinate is a (row, col) pair.
type Coordinate struct {
	Row, Col int
}

// Grid is an immutable rectangular rows×cols lattice with 4-connectivity
// (north/south/east/west). Each cell carries a target degree — the number
// of path edges it must have in any valid solution — and may be marked
// deleted, start, or end. Built once from input or from NewGrid, never
// mutated again except via DeleteNode during construction.
type Grid struct {
	Rows, Cols int

	nodes     []node
	adjacency [][]Index

	StartIdx, EndIdx Index
	HaveEndpoints    bool
}
