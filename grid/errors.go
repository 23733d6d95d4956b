package grid

import "errors"

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates the requested grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: must have at least one row and one column")
	// ErrBadCellCode indicates a cell code outside {0,1,2,3}.
	ErrBadCellCode = errors.New("grid: cell code must be 0 (open), 1 (deleted), 2 (start) or 3 (end)")
	// ErrAsymmetricEndpoints indicates exactly one of start/end was present.
	ErrAsymmetricEndpoints = errors.New("grid: start and end cells must be jointly present or jointly absent")
	// ErrMalformedInput indicates the whitespace-separated integer stream was short or non-numeric.
	ErrMalformedInput = errors.New("grid: malformed input stream")
	// ErrIndexOverflow indicates rows*cols exceeds the 8-bit index space (255 cells).
	ErrIndexOverflow = errors.New("grid: rows*cols exceeds the 255-cell index limit")
)
