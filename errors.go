// errors.go collects the public error values. Errors raised in the
// subpackages are re-exported here under their API names, so callers only
// ever match against this package.

package goh48

import (
	"errors"

	"github.com/cubelab/goh48/cube"
	"github.com/cubelab/goh48/prune"
)

var (
	// ErrInvalidMoveString indicates a move sequence that does not parse.
	ErrInvalidMoveString = cube.ErrInvalidMove

	// ErrInvalidTransformString indicates a transformation string that
	// does not parse.
	ErrInvalidTransformString = cube.ErrInvalidTrans

	// ErrInvalidCubeFormat indicates an unknown cube text format or a
	// cube string that does not parse in the requested format.
	ErrInvalidCubeFormat = cube.ErrInvalidFormat

	// ErrInconsistentCube indicates a cube value with invalid pieces or
	// orientations. Operations that detect it return the zero cube.
	ErrInconsistentCube = cube.ErrInconsistent

	// ErrUnsolvableCube indicates a consistent cube that violates a
	// parity or orientation invariant. The solver refuses it before any
	// search work.
	ErrUnsolvableCube = cube.ErrUnsolvable

	// ErrUnknownSolver indicates a solver name that is not one of
	// "simple", "optimal" or "h48".
	ErrUnknownSolver = errors.New("goh48: unknown solver")

	// ErrUnsupportedOptions indicates a solver options string that does
	// not follow the "<h>;<k>;<max_depth>" grammar or names an
	// unsupported table variant.
	ErrUnsupportedOptions = prune.ErrOptions

	// ErrTableSizeMismatch indicates a table blob that is malformed,
	// truncated, or of a different format version.
	ErrTableSizeMismatch = prune.ErrTableSize

	// ErrBufferTooSmall indicates an output buffer smaller than DataSize
	// requires. Output is never truncated.
	ErrBufferTooSmall = prune.ErrBufferTooSmall

	// ErrIOOutOfSpace indicates a failed write while persisting generated
	// tables.
	ErrIOOutOfSpace = errors.New("goh48: out of space writing table data")
)
