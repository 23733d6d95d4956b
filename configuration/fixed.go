package configuration

// FixedCapacity is the widest frontier Fixed can hold without falling
// back to Wide.
const FixedCapacity = 16

// Fixed is an inline, no-alloc Configuration for grids up to
// FixedCapacity columns wide.
type Fixed struct {
	partner [FixedCapacity]int8
	n       int8
}

func (f *Fixed) size() int        { return int(f.n) }
func (f *Fixed) get(col int) int  { return int(f.partner[col]) }
func (f *Fixed) set(col, v int)   { f.partner[col] = int8(v) }

// Size returns the frontier width.
func (f *Fixed) Size() int { return f.size() }

// Partner returns col's current partner, or NoPartner.
func (f *Fixed) Partner(col int) int { return f.get(col) }

// Link joins the dangling ends at columns a and b; a must be <= b.
func (f *Fixed) Link(a, b int) { link(f, a, b) }

// Mask drops every column not present in keep.
func (f *Fixed) Mask(keep []bool) { mask(f, keep) }

// LinkWouldClose reports whether Link(a, b) would close a loop.
func (f *Fixed) LinkWouldClose(a, b int) bool { return linkWouldClose(f, a, b) }

// ColAdvances reports whether a partial path already enters col from above.
func (f *Fixed) ColAdvances(col int) bool { return colAdvances(f, col) }

// String returns the canonical serialization.
func (f *Fixed) String() string { return canonicalString(f) }

// Hash returns a value agreeing with Equal.
func (f *Fixed) Hash() uint64 { return hashStore(f) }

// Clone returns an independent copy.
func (f *Fixed) Clone() Configuration {
	clone := *f
	return &clone
}

// Equal reports whether other is a Fixed with an identical partner vector.
func (f *Fixed) Equal(other Configuration) bool {
	o, ok := other.(*Fixed)
	if !ok {
		return false
	}
	return equalStores(f, o)
}
