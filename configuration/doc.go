// Package configuration encodes a frontier pairing: which columns of a
// grid row have partial paths currently crossing them, and how those
// dangling ends are paired up.
//
// Two concrete representations satisfy the Configuration interface:
// Fixed, an inline array with no heap allocation, used for grids up to
// FixedCapacity columns wide, and Wide, a slice-backed variant for
// anything wider. The row-transition enumerator and the DP driver are
// written against the interface and never care which one they hold;
// the choice is made once, at parse time, by New.
//
// Debug-mode invariant checks (the involution "config[config[i]] == i
// or NO_PARTNER") are gated behind DebugAssertions, off by default.
package configuration
