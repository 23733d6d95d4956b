// Package dp is the row sweep driver: a double-buffered, generation-
// tagged table mapping configuration.Configuration to an accumulated
// path count, advanced one grid row at a time via transfer.Enumerate.
//
// The table buckets entries by a configuration's Hash, disambiguating
// collisions with Equal, rather than keying on the canonical String
// form — String packs one path id per decimal digit, a constraint this
// table has no reason to inherit. Each entry carries a count and a
// generation tag for both sides of the sweep (0 and 1); a single bit
// selects which side is "current" for a given row, so the table never
// needs clearing between rows — a stale entry is simply one whose tag
// doesn't match the row being processed.
//
// Count abstracts the accumulator so the same driver serves both the
// arbitrary-precision BigCount (the shipped default, via CountPaths)
// and the fixed-width Count64 (via CountPathsUint64, for small grids
// where overflow cannot occur and allocation-free counting matters).
package dp
