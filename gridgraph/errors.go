package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrSymbolNotFound indicates Find was asked for a symbol the grid lacks.
	ErrSymbolNotFound = errors.New("gridgraph: symbol not found")
)
