// Package hamiltonpaths counts Hamiltonian-style self-avoiding path systems
// on a rectangular grid that connect a designated start cell to a designated
// end cell, visiting every non-deleted interior cell exactly the number of
// times its target degree requires.
//
// The work is organized under:
//
//	grid/          — static grid graph: dimensions, deletions, target degrees, parse/print
//	configuration/ — frontier pairing encoding (link/mask/close/merge), hashable by value
//	combin/        — lexicographic k-subset generator used by the row enumerator
//	transfer/      — row-transition enumerator: config + degrees + admissible edges → successors
//	dp/            — double-buffered Configuration → Count table, row sweep, finalization
//	cmd/countpaths/ — CLI entry point
//
// The algorithm is a row-by-row transfer-matrix dynamic program: it sweeps
// the grid top to bottom, keeping a population of frontier configurations
// (how partial paths currently crossing the boundary between processed and
// unprocessed rows are paired) together with an accumulated count for each.
// Equivalent frontiers coalesce in the DP table, which is what keeps the
// state space small in practice despite being exponential in the worst case.
package hamiltonpaths
