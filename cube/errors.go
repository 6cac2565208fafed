// errors.go defines the error values returned by the cube algebra. The root
// package re-exports them under its own names.

package cube

import "errors"

var (
	// ErrInvalidMove indicates a move string that does not parse.
	ErrInvalidMove = errors.New("cube: invalid move string")

	// ErrInvalidTrans indicates a transformation string that does not parse.
	// Valid transformations look like "rotation UF" or "mirrored BL".
	ErrInvalidTrans = errors.New("cube: invalid transformation string")

	// ErrInvalidFormat indicates an unknown cube text format or a cube
	// string that does not parse in the requested format.
	ErrInvalidFormat = errors.New("cube: invalid cube format")

	// ErrInconsistent indicates a cube with out-of-range piece indices,
	// duplicated pieces or invalid orientation bits.
	ErrInconsistent = errors.New("cube: inconsistent cube")

	// ErrUnsolvable indicates a consistent cube that violates a parity or
	// orientation-sum invariant and therefore cannot be solved.
	ErrUnsolvable = errors.New("cube: unsolvable cube")
)
