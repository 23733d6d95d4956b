package configuration

import "fmt"

// NoPartner is the sentinel partner value: no path crosses this column.
const NoPartner = -1

// store is the narrow storage contract Fixed and Wide each implement;
// every Configuration operation is written once against it.
type store interface {
	size() int
	get(col int) int
	set(col, val int)
}

// DebugAssertions gates the involution checks described as "invariant
// violation" assertions: unreachable states that a release build never
// pays to check. Off by default.
var DebugAssertions = false

func checkInvariant(s store) {
	if !DebugAssertions {
		return
	}
	for i := 0; i < s.size(); i++ {
		p := s.get(i)
		if p == NoPartner {
			continue
		}
		if p < 0 || p >= s.size() || s.get(p) != i {
			panic(fmt.Sprintf("configuration: involution broken at column %d (partner %d)", i, p))
		}
	}
}

// link joins the dangling ends at columns a and b (a <= b), per the
// six cases: split, no-op, close, extend-left, extend-right, merge.
func link(s store, a, b int) {
	checkInvariant(s)

	pa := s.get(a)
	pb := s.get(b)

	switch {
	case pa == NoPartner && pb == NoPartner:
		s.set(a, b)
		s.set(b, a)
	case a == b:
		// vertical exit on a column that already holds a path end: no-op.
		// (A fresh column was self-paired by the split case above.)
	case a == pb:
		s.set(a, NoPartner)
		s.set(b, NoPartner)
	case pa == NoPartner:
		adjustPath(s, pb, b, a)
	case pb == NoPartner:
		adjustPath(s, pa, a, b)
	default:
		mergePaths(s, a, b, pa, pb)
	}

	checkInvariant(s)
}

// adjustPath moves the dangling end at column from (whose current
// partner is partner) over to column to: the extend-left/extend-right
// cases of link.
func adjustPath(s store, partner, from, to int) {
	s.set(from, NoPartner)
	if partner == from {
		s.set(to, to)
	} else {
		s.set(partner, to)
		s.set(to, partner)
	}
}

// mergePaths joins two distinct in-progress paths that meet at a and b.
func mergePaths(s store, a, b, pa, pb int) {
	s.set(pa, pb)
	s.set(pb, pa)
	s.set(a, NoPartner)
	s.set(b, NoPartner)
	if pa == a {
		s.set(pb, pb)
	} else if pb == b {
		s.set(pa, pa)
	}
}

// mask drops every column not present in keep: its dangling end is
// removed, and a surviving partner becomes a fresh self-pair.
func mask(s store, keep []bool) {
	for col := 0; col < s.size(); col++ {
		if keep[col] {
			continue
		}
		partner := s.get(col)
		s.set(col, NoPartner)
		if partner != NoPartner && partner != col {
			s.set(partner, partner)
		}
	}
	checkInvariant(s)
}

// linkWouldClose reports whether link(a, b) (a < b) would close a loop.
func linkWouldClose(s store, a, b int) bool {
	return s.get(b) == a
}

func colAdvances(s store, col int) bool {
	return s.get(col) != NoPartner
}

// canonicalString renumbers partners by first appearance, left to
// right, and emits the resulting path ids as decimal digits.
func canonicalString(s store) string {
	n := s.size()
	pathIDs := make([]int, n)
	nextLabel := 0

	for col := 0; col < n; col++ {
		partner := s.get(col)
		if partner == NoPartner {
			continue
		}
		if partner < col {
			pathIDs[col] = pathIDs[partner]
		} else {
			nextLabel++
			pathIDs[col] = nextLabel
		}
	}

	if DebugAssertions && nextLabel >= 10 {
		panic("configuration: more than 9 distinct paths, canonical string digits would collide")
	}

	out := make([]byte, n)
	for i, id := range pathIDs {
		out[i] = byte('0' + id)
	}
	return string(out)
}

func equalStores(a, b store) bool {
	if a.size() != b.size() {
		return false
	}
	for i := 0; i < a.size(); i++ {
		if a.get(i) != b.get(i) {
			return false
		}
	}
	return true
}

// hashStore is a commutative mix over partner values, seeded by size,
// matching configuration.hh's std::hash<Configuration> specialization.
func hashStore(s store) uint64 {
	h := uint64(s.size())
	for i := 0; i < s.size(); i++ {
		h ^= uint64(uint32(s.get(i)))
	}
	return h
}

// buildPartners turns a label vector into a partner vector: equal
// non-zero labels pair their two columns; label 0 is NO_PARTNER; a
// label occurring exactly once yields a self-pair. A label occurring a
// third time is an invariant violation (see the package doc's Open
// Question note in DESIGN.md) and is only surfaced under DebugAssertions.
func buildPartners(labels []int) []int {
	n := len(labels)
	partner := make([]int, n)
	for i := range partner {
		partner[i] = NoPartner
	}

	firstOcc := make(map[int]int, n)
	pairedTwice := make(map[int]bool, n)

	for col, label := range labels {
		if label == 0 {
			continue
		}
		first, seen := firstOcc[label]
		switch {
		case !seen:
			firstOcc[label] = col
		case !pairedTwice[label]:
			partner[first] = col
			partner[col] = first
			pairedTwice[label] = true
		default:
			if DebugAssertions {
				panic(fmt.Sprintf("configuration: label %d occurs a third time at column %d", label, col))
			}
		}
	}

	for label, first := range firstOcc {
		if !pairedTwice[label] {
			partner[first] = first
		}
	}

	return partner
}
