// Package combin produces lexicographic k-subsets of a sequence, in the
// same deterministic order as CPython's itertools.combinations: subsets
// are emitted as strictly increasing index tuples, earliest index first.
//
// The row-transition enumerator in transfer uses this to choose, for
// each grid column, which of its remaining neighbors receive an edge.
package combin
