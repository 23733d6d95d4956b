package dp

import (
	"math/big"
	"strconv"
)

// Count is an arbitrary accumulator that the driver can zero, add into,
// and print. Implementations follow math/big's convention: methods
// mutate the receiver and return it, so z.Add(z, x) accumulates x into
// z in place without an allocation per call.
type Count interface {
	// SetInt64 sets the receiver to v and returns it.
	SetInt64(v int64) Count
	// Add sets the receiver to a+b and returns it.
	Add(a, b Count) Count
	String() string
}

// BigCount is the shipped Count: arbitrary-precision, backed by
// math/big.Int, required for grids whose path counts overflow a
// machine word.
type BigCount struct {
	*big.Int
}

// NewBigCount returns a zero-valued BigCount.
func NewBigCount() *BigCount {
	return &BigCount{Int: new(big.Int)}
}

func (c *BigCount) SetInt64(v int64) Count {
	c.Int.SetInt64(v)
	return c
}

func (c *BigCount) Add(a, b Count) Count {
	c.Int.Add(a.(*BigCount).Int, b.(*BigCount).Int)
	return c
}

// Count64 is a fixed-width Count backed by a plain uint64: no
// allocation per add, but it overflows silently on large grids. Use
// only when the grid is known small enough that the true count fits.
type Count64 uint64

// NewCount64 returns a zero-valued Count64.
func NewCount64() *Count64 {
	var c Count64
	return &c
}

func (c *Count64) SetInt64(v int64) Count {
	*c = Count64(v)
	return c
}

func (c *Count64) Add(a, b Count) Count {
	*c = *a.(*Count64) + *b.(*Count64)
	return c
}

func (c *Count64) String() string {
	return strconv.FormatUint(uint64(*c), 10)
}
