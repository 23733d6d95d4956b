package transfer

import (
	"github.com/aurajamming/hamiltonpaths/combin"
	"github.com/aurajamming/hamiltonpaths/configuration"
)

type enumState struct {
	size          int
	lastConfig    configuration.Configuration
	nextNeighbors [][]Neighbor
	residual      []int
	hmask, vmask  []bool
	endpointRow   bool
}

func newEnumState(lastConfig configuration.Configuration, in RowInputs) *enumState {
	size := lastConfig.Size()
	residual := make([]int, size)
	endpointRow := false

	for c := 0; c < size; c++ {
		residual[c] = int(in.TargetDegrees[c])
		if lastConfig.ColAdvances(c) {
			residual[c]--
		}
		if residual[c] == 1 {
			endpointRow = true
		}
	}

	return &enumState{
		size:          size,
		lastConfig:    lastConfig,
		nextNeighbors: in.NextNeighbors,
		residual:      residual,
		hmask:         make([]bool, size),
		vmask:         make([]bool, size),
		endpointRow:   endpointRow,
	}
}

// closeRun folds column col's horizontal contribution into cfg: when
// col ends a maximal run of consecutive hmask columns starting at
// *start, it links the run's two outer endpoints, rejecting the branch
// (ok == false) if that link would close a premature cycle. Vertical
// exits (vmask) are handled separately by applyVerticalExits, once
// every column's horizontal runs have been closed out — a run-start
// column may itself carry a vertical exit (a residual-2 column taking
// both a horizontal and a vertical edge), and linking it to itself
// before its own run closes would self-pair a slot the run still needs
// as NoPartner.
func closeRun(col int, cfg configuration.Configuration, hmask []bool, start *int) (ok bool) {
	switch {
	case hmask[col] && (col == 0 || !hmask[col-1]):
		*start = col
	case !hmask[col] && col > 0 && hmask[col-1]:
		if cfg.LinkWouldClose(*start, col) {
			return false
		}
		cfg.Link(*start, col)
	}
	return true
}

// applyVerticalExits links every vmask column to itself, once all of a
// row's horizontal runs have already been closed out.
func applyVerticalExits(cfg configuration.Configuration, vmask []bool) {
	for col, v := range vmask {
		if v {
			cfg.Link(col, col)
		}
	}
}

// Enumerate runs the canonical (late-rejection) row-transition
// enumerator: for every legal combination of residual edges across
// all columns, it builds the full hmask/vmask row pattern first, then
// links and masks against last_config at the leaf.
func Enumerate(row int, lastConfig configuration.Configuration, in RowInputs, action func(configuration.Configuration)) {
	e := newEnumState(lastConfig, in)
	e.enumerateLate(0, action)
}

func (e *enumState) enumerateLate(col int, action func(configuration.Configuration)) {
	r := e.residual[col]

	if r <= 0 {
		e.hmask[col] = false
		e.vmask[col] = false
		if col == e.size-1 {
			e.yieldLate(action)
		} else {
			e.enumerateLate(col+1, action)
		}
		return
	}

	for combo := range combin.Of(e.nextNeighbors[col], r) {
		e.hmask[col] = false
		e.vmask[col] = false

		for _, nb := range combo {
			e.residual[col]--
			if nb.SameRow {
				e.residual[col+1]--
				e.hmask[col] = true
			} else {
				e.vmask[col] = true
			}
		}

		if col == e.size-1 {
			e.yieldLate(action)
		} else {
			e.enumerateLate(col+1, action)
		}

		for _, nb := range combo {
			e.residual[col]++
			if nb.SameRow {
				e.residual[col+1]++
			}
		}
	}
}

func (e *enumState) yieldLate(action func(configuration.Configuration)) {
	cfg := e.lastConfig.Clone()
	start := 0

	for col := 0; col < e.size; col++ {
		if !closeRun(col, cfg, e.hmask, &start) {
			return
		}
	}

	applyVerticalExits(cfg, e.vmask)
	if e.endpointRow {
		cfg.Mask(e.vmask)
	}
	action(cfg)
}

// EnumerateEarly runs the early-rejection row-transition enumerator:
// link is applied incrementally as each column resolves, and a
// premature closure aborts that branch immediately rather than at the
// leaf. Must emit the identical multiset of successor configurations
// as Enumerate for the same inputs.
func EnumerateEarly(row int, lastConfig configuration.Configuration, in RowInputs, action func(configuration.Configuration)) {
	e := newEnumState(lastConfig, in)
	e.enumerateEarly(0, 0, lastConfig, action)
}

func (e *enumState) enumerateEarly(col, start int, cfg configuration.Configuration, action func(configuration.Configuration)) {
	r := e.residual[col]

	if r <= 0 {
		e.hmask[col] = false
		e.vmask[col] = false
		e.stepEarly(col, start, cfg, action)
		return
	}

	for combo := range combin.Of(e.nextNeighbors[col], r) {
		e.hmask[col] = false
		e.vmask[col] = false

		for _, nb := range combo {
			e.residual[col]--
			if nb.SameRow {
				e.residual[col+1]--
				e.hmask[col] = true
			} else {
				e.vmask[col] = true
			}
		}

		e.stepEarly(col, start, cfg, action)

		for _, nb := range combo {
			e.residual[col]++
			if nb.SameRow {
				e.residual[col+1]++
			}
		}
	}
}

func (e *enumState) stepEarly(col, start int, cfg configuration.Configuration, action func(configuration.Configuration)) {
	next := cfg.Clone()
	if !closeRun(col, next, e.hmask, &start) {
		return
	}

	if col == e.size-1 {
		e.yieldEarly(next, action)
	} else {
		e.enumerateEarly(col+1, start, next, action)
	}
}

func (e *enumState) yieldEarly(cfg configuration.Configuration, action func(configuration.Configuration)) {
	cfg = cfg.Clone()
	applyVerticalExits(cfg, e.vmask)
	if e.endpointRow {
		cfg.Mask(e.vmask)
	}
	action(cfg)
}
