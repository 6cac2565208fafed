// moves.go defines the 18 face-turn cubes, move-string parsing and writing,
// and the legal-next-move predicate used by both the table generators and
// the solvers.

package cube

import "strings"

// Move indexes one of the 18 face turns. The order is faces U, D, R, L, F, B,
// each as quarter turn, half turn, counter-quarter turn.
type Move uint8

const (
	U Move = iota
	U2
	U3
	D
	D2
	D3
	R
	R2
	R3
	L
	L2
	L3
	F
	F2
	F3
	B
	B2
	B3
)

// NMoves is the size of the move set.
const NMoves = 18

// AllMovesMask has one bit set per legal move index.
const AllMovesMask uint32 = 1<<NMoves - 1

var moveStrings = [NMoves]string{
	"U", "U2", "U'",
	"D", "D2", "D'",
	"R", "R2", "R'",
	"L", "L2", "L'",
	"F", "F2", "F'",
	"B", "B2", "B'",
}

// The move cubes. Orientation bits are baked into the byte values, so
// applying a move is a single Compose.
var moveCube = [NMoves]Cube{
	U:  {Corner: [8]uint8{5, 4, 2, 3, 0, 1, 6, 7}, Edge: [12]uint8{4, 5, 2, 3, 1, 0, 6, 7, 8, 9, 10, 11}},
	U2: {Corner: [8]uint8{1, 0, 2, 3, 5, 4, 6, 7}, Edge: [12]uint8{1, 0, 2, 3, 5, 4, 6, 7, 8, 9, 10, 11}},
	U3: {Corner: [8]uint8{4, 5, 2, 3, 1, 0, 6, 7}, Edge: [12]uint8{5, 4, 2, 3, 0, 1, 6, 7, 8, 9, 10, 11}},
	D:  {Corner: [8]uint8{0, 1, 7, 6, 4, 5, 2, 3}, Edge: [12]uint8{0, 1, 7, 6, 4, 5, 2, 3, 8, 9, 10, 11}},
	D2: {Corner: [8]uint8{0, 1, 3, 2, 4, 5, 7, 6}, Edge: [12]uint8{0, 1, 3, 2, 4, 5, 7, 6, 8, 9, 10, 11}},
	D3: {Corner: [8]uint8{0, 1, 6, 7, 4, 5, 3, 2}, Edge: [12]uint8{0, 1, 6, 7, 4, 5, 3, 2, 8, 9, 10, 11}},
	R:  {Corner: [8]uint8{70, 1, 2, 69, 4, 32, 35, 7}, Edge: [12]uint8{0, 1, 2, 3, 8, 5, 6, 11, 7, 9, 10, 4}},
	R2: {Corner: [8]uint8{3, 1, 2, 0, 4, 6, 5, 7}, Edge: [12]uint8{0, 1, 2, 3, 7, 5, 6, 4, 11, 9, 10, 8}},
	R3: {Corner: [8]uint8{69, 1, 2, 70, 4, 35, 32, 7}, Edge: [12]uint8{0, 1, 2, 3, 11, 5, 6, 8, 4, 9, 10, 7}},
	L:  {Corner: [8]uint8{0, 71, 68, 3, 33, 5, 6, 34}, Edge: [12]uint8{0, 1, 2, 3, 4, 10, 9, 7, 8, 5, 6, 11}},
	L2: {Corner: [8]uint8{0, 2, 1, 3, 7, 5, 6, 4}, Edge: [12]uint8{0, 1, 2, 3, 4, 6, 5, 7, 8, 10, 9, 11}},
	L3: {Corner: [8]uint8{0, 68, 71, 3, 34, 5, 6, 33}, Edge: [12]uint8{0, 1, 2, 3, 4, 9, 10, 7, 8, 6, 5, 11}},
	F:  {Corner: [8]uint8{36, 1, 38, 3, 66, 5, 64, 7}, Edge: [12]uint8{25, 1, 2, 24, 4, 5, 6, 7, 16, 19, 10, 11}},
	F2: {Corner: [8]uint8{2, 1, 0, 3, 6, 5, 4, 7}, Edge: [12]uint8{3, 1, 2, 0, 4, 5, 6, 7, 9, 8, 10, 11}},
	F3: {Corner: [8]uint8{38, 1, 36, 3, 64, 5, 66, 7}, Edge: [12]uint8{24, 1, 2, 25, 4, 5, 6, 7, 19, 16, 10, 11}},
	B:  {Corner: [8]uint8{0, 37, 2, 39, 4, 67, 6, 65}, Edge: [12]uint8{0, 27, 26, 3, 4, 5, 6, 7, 8, 9, 17, 18}},
	B2: {Corner: [8]uint8{0, 3, 2, 1, 4, 7, 6, 5}, Edge: [12]uint8{0, 2, 1, 3, 4, 5, 6, 7, 8, 9, 11, 10}},
	B3: {Corner: [8]uint8{0, 39, 2, 37, 4, 65, 6, 67}, Edge: [12]uint8{0, 26, 27, 3, 4, 5, 6, 7, 8, 9, 18, 17}},
}

// String returns the move in standard notation ("U", "U2", "U'").
func (m Move) String() string {
	if m >= NMoves {
		return "?"
	}
	return moveStrings[m]
}

// Base returns the face of the move (0..5 for U, D, R, L, F, B).
func (m Move) Base() uint8 {
	return uint8(m) / 3
}

// Axis returns the rotation axis of the move (0 for U/D, 1 for R/L, 2 for F/B).
func (m Move) Axis() uint8 {
	return uint8(m) / 6
}

// Inverse returns the inverse move (U <-> U', U2 unchanged).
func (m Move) Inverse() Move {
	return Move(3*m.Base()) + 2 - m%3
}

// Move applies the face turn m to the cube.
func (c Cube) Move(m Move) Cube {
	return Compose(c, moveCube[m])
}

// Premove prepends the inverse of the face turn m to the cube. Appending m
// to a sequence is the same as prepending its inverse to the sequence's
// inverse, so Premove is what keeps a cube and its inverse walking in
// lockstep: after c.Move(m), the inverse cube is updated with Premove(m),
// and vice versa on the inverse branch.
func (c Cube) Premove(m Move) Cube {
	return Compose(moveCube[m.Inverse()], c)
}

// InvertMoves returns the sequence that undoes moves: reversed order, each
// move inverted.
func InvertMoves(moves []Move) []Move {
	n := len(moves)
	ret := make([]Move, n)
	for i, m := range moves {
		ret[n-1-i] = m.Inverse()
	}
	return ret
}

// faceMask has the three moves of face b set.
func faceMask(b uint8) uint32 {
	return 0x7 << (3 * b)
}

// AllowedNextMoves returns the bitmask of moves that may legally follow the
// given move list: never the same face twice, opposite faces of one axis only
// in ascending-face order, and no three successive moves on one axis.
func AllowedNextMoves(moves []Move) uint32 {
	n := len(moves)
	if n == 0 {
		return AllMovesMask
	}

	last := moves[n-1]
	mask := AllMovesMask &^ faceMask(last.Base())
	if last.Base()%2 == 1 {
		mask &^= faceMask(last.Base() - 1)
	}
	if n >= 2 {
		prev := moves[n-2]
		if last.Axis() == prev.Axis() {
			mask &^= faceMask(prev.Base())
		}
	}

	return mask
}

// ParseMoves parses a move sequence in standard notation. Each move is one of
// U, D, R, L, F, B optionally followed by 1, 2, 3 or '. Whitespace between
// moves is insignificant.
func ParseMoves(s string) ([]Move, error) {
	var moves []Move

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			continue
		}
		base, ok := parseFace(c)
		if !ok {
			return nil, ErrInvalidMove
		}
		m := Move(3 * base)
		if i+1 < len(s) {
			if mod, ok := parseModifier(s[i+1]); ok {
				m += Move(mod)
				i++
			}
		}
		moves = append(moves, m)
	}

	return moves, nil
}

func parseFace(c byte) (uint8, bool) {
	switch c {
	case 'U':
		return 0, true
	case 'D':
		return 1, true
	case 'R':
		return 2, true
	case 'L':
		return 3, true
	case 'F':
		return 4, true
	case 'B':
		return 5, true
	}
	return 0, false
}

func parseModifier(c byte) (uint8, bool) {
	switch c {
	case '1', '2', '3':
		return c - '0' - 1, true
	case '\'':
		return 2, true
	}
	return 0, false
}

// ApplyMoves parses a move sequence and applies it to the cube.
func ApplyMoves(c Cube, s string) (Cube, error) {
	moves, err := ParseMoves(s)
	if err != nil {
		return Cube{}, err
	}
	for _, m := range moves {
		c = c.Move(m)
	}
	return c, nil
}

// FromMoves applies a move sequence to the solved cube.
func FromMoves(s string) (Cube, error) {
	return ApplyMoves(solved, s)
}

// WriteMoves formats a move sequence in standard notation, space separated.
func WriteMoves(moves []Move) string {
	var b strings.Builder
	for i, m := range moves {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(m.String())
	}
	return b.String()
}
