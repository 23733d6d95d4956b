package configuration

// Wide is a slice-backed Configuration for frontiers wider than
// FixedCapacity columns.
type Wide struct {
	partner []int16
}

func (w *Wide) size() int       { return len(w.partner) }
func (w *Wide) get(col int) int { return int(w.partner[col]) }
func (w *Wide) set(col, v int)  { w.partner[col] = int16(v) }

// Size returns the frontier width.
func (w *Wide) Size() int { return w.size() }

// Partner returns col's current partner, or NoPartner.
func (w *Wide) Partner(col int) int { return w.get(col) }

// Link joins the dangling ends at columns a and b; a must be <= b.
func (w *Wide) Link(a, b int) { link(w, a, b) }

// Mask drops every column not present in keep.
func (w *Wide) Mask(keep []bool) { mask(w, keep) }

// LinkWouldClose reports whether Link(a, b) would close a loop.
func (w *Wide) LinkWouldClose(a, b int) bool { return linkWouldClose(w, a, b) }

// ColAdvances reports whether a partial path already enters col from above.
func (w *Wide) ColAdvances(col int) bool { return colAdvances(w, col) }

// String returns the canonical serialization.
func (w *Wide) String() string { return canonicalString(w) }

// Hash returns a value agreeing with Equal.
func (w *Wide) Hash() uint64 { return hashStore(w) }

// Clone returns an independent copy.
func (w *Wide) Clone() Configuration {
	cp := make([]int16, len(w.partner))
	copy(cp, w.partner)
	return &Wide{partner: cp}
}

// Equal reports whether other is a Wide with an identical partner vector.
func (w *Wide) Equal(other Configuration) bool {
	o, ok := other.(*Wide)
	if !ok {
		return false
	}
	return equalStores(w, o)
}
