// Package grid is the static graph the row sweep counts paths over: a
// rectangular rows×cols lattice with 4-connectivity, per-cell target
// degrees, and optional deletions/start/end marks.
//
// What:
//
//   - Grid wraps a rows×cols lattice; NewGrid builds an all-open lattice,
//     Parse reads the whitespace-separated cell-code format.
//   - Each cell carries a target degree in {0,1,2}: 0 for deleted cells,
//     1 for start/end, 2 for ordinary interior cells.
//   - DeleteNode removes a cell from the graph: zero target degree, no
//     incident edges, symmetric removal from every neighbor's adjacency.
//
// Errors:
//
//   - ErrEmptyGrid: requested grid has no rows or no columns.
//   - ErrBadCellCode: a cell code outside {0,1,2,3}.
//   - ErrAsymmetricEndpoints: exactly one of start/end present.
//   - ErrMalformedInput: the input stream ran out or held non-integers.
//   - ErrIndexOverflow: rows*cols exceeds the 255-cell Index range.
package grid
