package dp

import (
	"math/big"

	"github.com/aurajamming/hamiltonpaths/configuration"
	"github.com/aurajamming/hamiltonpaths/grid"
	"github.com/aurajamming/hamiltonpaths/transfer"
)

// entry is one table row: the configuration it was keyed by (needed to
// feed back into transfer.Enumerate) plus a count and generation tag
// per side of the ping-pong sweep.
type entry struct {
	cfg   configuration.Configuration
	count [2]Count
	tag   [2]int
}

// table buckets entries by their configuration's hash, disambiguating
// collisions with Equal. Configuration.String is not used as the map
// key here: its canonical form packs each path id into one decimal
// digit, a precondition that holds for the string's own round-trip
// contract but that this table must not depend on.
type table struct {
	buckets map[uint64][]*entry
}

func newTable() *table {
	return &table{buckets: make(map[uint64][]*entry)}
}

func (t *table) find(cfg configuration.Configuration) *entry {
	for _, e := range t.buckets[cfg.Hash()] {
		if e.cfg.Equal(cfg) {
			return e
		}
	}
	return nil
}

func (t *table) getOrCreate(cfg configuration.Configuration) *entry {
	if e := t.find(cfg); e != nil {
		return e
	}
	e := &entry{cfg: cfg}
	h := cfg.Hash()
	t.buckets[h] = append(t.buckets[h], e)
	return e
}

func (t *table) snapshot() []*entry {
	all := make([]*entry, 0, len(t.buckets))
	for _, bucket := range t.buckets {
		all = append(all, bucket...)
	}
	return all
}

// Run sweeps g row by row, starting from the all-NoPartner frontier of
// width g.Cols and accumulating counts with newCount-constructed
// accumulators. It returns the count of the fully closed frontier after
// the last row, or a zero Count if no legal path system exists.
//
// The table is a single structure reused for both sides of the sweep: a
// side bit selects which of an entry's two (count, tag) slots is
// "current" for the row in progress, so stale entries from earlier rows
// are simply skipped rather than evicted. The whole table is snapshotted
// before each row's sweep, so successor insertions never disturb the
// in-progress iteration over the current generation.
func Run(g *grid.Grid, newCount func() Count) Count {
	t := newTable()

	empty := configuration.NewEmpty(g.Cols)
	seed := t.getOrCreate(empty)
	seed.count[0] = newCount().SetInt64(1)
	seed.tag[0] = 0

	sel := 0
	for row := 0; row < g.Rows; row++ {
		in := transfer.RowSetup(g, row)

		for _, cur := range t.snapshot() {
			if cur.tag[sel] != row {
				continue
			}
			curCount := cur.count[sel]

			transfer.Enumerate(row, cur.cfg, in, func(next configuration.Configuration) {
				ne := t.getOrCreate(next)
				if ne.tag[1-sel] != row+1 {
					ne.tag[1-sel] = row + 1
					ne.count[1-sel] = newCount()
				}
				ne.count[1-sel] = ne.count[1-sel].Add(ne.count[1-sel], curCount)
			})
		}

		sel = 1 - sel
	}

	final := t.find(empty)
	if final == nil || final.tag[sel] != g.Rows {
		return newCount()
	}
	return final.count[sel]
}

// CountPaths runs Run with the arbitrary-precision BigCount, the
// instantiation this package ships by default.
func CountPaths(g *grid.Grid) *big.Int {
	result := Run(g, func() Count { return NewBigCount() })
	return result.(*BigCount).Int
}

// CountPathsUint64 runs Run with the fixed-width Count64. Only safe for
// grids small enough that the true path count cannot overflow a
// machine word.
func CountPathsUint64(g *grid.Grid) uint64 {
	result := Run(g, func() Count { return NewCount64() })
	return uint64(*result.(*Count64))
}
