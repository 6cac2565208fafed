// goh48.go exposes the cube operations of the public API. The heavy lifting
// lives in the cube subpackage; this layer validates inputs and maps errors
// to the package's public error values.

package goh48

import "github.com/cubelab/goh48/cube"

// Cube is a cube state. The zero value is the distinguished error cube
// returned alongside an error.
type Cube = cube.Cube

// Solved returns the solved cube.
func Solved() Cube {
	return cube.Solved()
}

// Compose applies the permutation p to the cube c. Both arguments must be
// consistent; p may be an unsolvable (but consistent) permutation.
func Compose(c, p Cube) (Cube, error) {
	if !cube.IsConsistent(c) || !cube.IsConsistent(p) {
		return Cube{}, ErrInconsistentCube
	}
	return cube.Compose(c, p), nil
}

// Inverse returns the inverse of the cube.
func Inverse(c Cube) (Cube, error) {
	if !cube.IsConsistent(c) {
		return Cube{}, ErrInconsistentCube
	}
	return cube.Inverse(c), nil
}

// ApplyMoves applies a move sequence in standard notation to the cube.
func ApplyMoves(c Cube, moves string) (Cube, error) {
	if !cube.IsConsistent(c) {
		return Cube{}, ErrInconsistentCube
	}
	return cube.ApplyMoves(c, moves)
}

// ApplyTrans applies a whole-cube transformation, given as "rotation XY" or
// "mirrored XY", to the cube.
func ApplyTrans(c Cube, trans string) (Cube, error) {
	if !cube.IsConsistent(c) {
		return Cube{}, ErrInconsistentCube
	}
	t, err := cube.ParseTrans(trans)
	if err != nil {
		return Cube{}, err
	}
	return c.Transform(t), nil
}

// FromMoves applies a move sequence to the solved cube.
func FromMoves(moves string) (Cube, error) {
	return cube.FromMoves(moves)
}

// ReadCube parses a cube in the given text format ("H48" or "LST").
func ReadCube(format, s string) (Cube, error) {
	return cube.ReadCube(format, s)
}

// WriteCube formats a cube in the given text format ("H48" or "LST").
func WriteCube(format string, c Cube) (string, error) {
	return cube.WriteCube(format, c)
}

// Convert re-encodes a cube string from one text format to another.
func Convert(formatIn, formatOut, s string) (string, error) {
	c, err := cube.ReadCube(formatIn, s)
	if err != nil {
		return "", err
	}
	return cube.WriteCube(formatOut, c)
}

// IsSolvable reports whether the cube satisfies all legality invariants.
func IsSolvable(c Cube) bool {
	return cube.IsSolvable(c)
}

// IsSolved reports whether the cube is solved.
func IsSolved(c Cube) bool {
	return cube.IsSolved(c)
}
