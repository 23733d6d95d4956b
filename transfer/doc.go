// Package transfer enumerates, for one grid row and one incoming
// frontier configuration, every legal successor configuration: the
// row-transition step of the transfer-matrix sweep.
//
// RowSetup reads the per-column target degrees and "next neighbors"
// (cells strictly after a column in scan order) out of a grid.Grid.
// Enumerate and EnumerateEarly both walk the row column by column,
// choosing which admissible next-row edges to take via combin, and
// must emit the identical multiset of successor configurations for
// the same inputs — they differ only in when a premature cycle
// closure is detected and rejected.
package transfer
