// Package cube implements the permutation algebra of the 3x3x3 cube.
//
// A cube is stored as 8 corner bytes and 12 edge bytes. Each byte packs the
// permutation index in the low bits and the orientation in the high bits:
// edge orientation at bit 4, corner orientation at bits 5-6. With this layout
// composing two cubes is one table lookup plus one modular addition per slot,
// and the byte sequence corners-then-edges is exactly the LST text format.
package cube

// Bit layout of a piece byte.
const (
	pbits    = 0xF
	esepBit1 = 0x4
	esepBit2 = 0x8
	csepBit  = 0x4
	eoBit    = 0x10
	coBits   = 0xF0
	coBits2  = 0x60
	ctwistCW = 0x20
	eoShift  = 4
	coShift  = 5
)

// Corner slot indices.
const (
	UFR = iota
	UBL
	DFL
	DBR
	UFL
	UBR
	DFR
	DBL
)

// Edge slot indices.
const (
	UF = iota
	UB
	DB
	DF
	UR
	UL
	DL
	DR
	FR
	FL
	BL
	BR
)

// Cube is a cube state. The zero value is the distinguished error cube
// returned together with an error by operations that reject their input.
type Cube struct {
	Corner [8]uint8
	Edge   [12]uint8
}

var solved = Cube{
	Corner: [8]uint8{0, 1, 2, 3, 4, 5, 6, 7},
	Edge:   [12]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
}

// Solved returns the solved cube.
func Solved() Cube {
	return solved
}

// Equal reports whether two cubes are byte-for-byte identical.
func Equal(c1, c2 Cube) bool {
	return c1 == c2
}

// IsSolved reports whether the cube is the solved cube.
func IsSolved(c Cube) bool {
	return c == solved
}

// IsZero reports whether the cube is the distinguished error cube.
func IsZero(c Cube) bool {
	return c == Cube{}
}

// IsConsistent reports whether every slot holds a valid piece index and a
// valid orientation, and every piece appears exactly once. A consistent cube
// may still be unsolvable (see IsSolvable).
func IsConsistent(c Cube) bool {
	var found [12]bool

	for i := 0; i < 12; i++ {
		piece := c.Edge[i]
		p := piece & pbits
		e := piece & ^uint8(pbits)
		if p >= 12 {
			return false
		}
		if e != 0 && e != eoBit {
			return false
		}
		found[p] = true
	}
	for i := 0; i < 12; i++ {
		if !found[i] {
			return false
		}
	}

	found = [12]bool{}
	for i := 0; i < 8; i++ {
		piece := c.Corner[i]
		p := piece & pbits
		o := piece & ^uint8(pbits)
		if p >= 8 {
			return false
		}
		if o != 0 && o != ctwistCW && o != 2*ctwistCW {
			return false
		}
		found[p] = true
	}
	for i := 0; i < 8; i++ {
		if !found[i] {
			return false
		}
	}

	return true
}

// IsSolvable reports whether a consistent cube satisfies the three legality
// invariants: equal corner and edge permutation parity, edge orientation sum
// even, corner orientation sum divisible by three.
func IsSolvable(c Cube) bool {
	if !IsConsistent(c) {
		return false
	}

	var edges [12]uint8
	var corners [8]uint8
	for i := 0; i < 12; i++ {
		edges[i] = c.Edge[i] & pbits
	}
	for i := 0; i < 8; i++ {
		corners[i] = c.Corner[i] & pbits
	}
	if permSign(edges[:]) != permSign(corners[:]) {
		return false
	}

	eo := uint8(0)
	for i := 0; i < 12; i++ {
		eo += (c.Edge[i] & eoBit) >> eoShift
	}
	if eo%2 != 0 {
		return false
	}

	co := uint8(0)
	for i := 0; i < 8; i++ {
		co += (c.Corner[i] & coBits) >> coShift
	}
	return co%3 == 0
}

// permSign returns the parity (0 or 1) of the permutation a.
func permSign(a []uint8) int {
	ret := 0
	for i := 0; i < len(a); i++ {
		for j := i + 1; j < len(a); j++ {
			if a[i] > a[j] {
				ret++
			}
		}
	}
	return ret % 2
}

// Compose applies c2 after c1 in the permutation sense: the piece at slot i
// of the result is c1's piece at c2's permutation at i. Edge orientations
// xor, corner orientations add modulo three (carried out branch-free on the
// packed bytes).
func Compose(c1, c2 Cube) Cube {
	var ret Cube

	for i := 0; i < 12; i++ {
		piece2 := c2.Edge[i]
		p := piece2 & pbits
		piece1 := c1.Edge[p]
		orien := (piece2 ^ piece1) & eoBit
		ret.Edge[i] = (piece1 & pbits) | orien
	}

	for i := 0; i < 8; i++ {
		piece2 := c2.Corner[i]
		p := piece2 & pbits
		piece1 := c1.Corner[p]
		aux := (piece2 & coBits) + (piece1 & coBits)
		auy := (aux + ctwistCW) >> 2
		orien := (aux + auy) & coBits2
		ret.Corner[i] = (piece1 & pbits) | orien
	}

	return ret
}

// Inverse returns the inverse cube: piece p with orientation o at slot i
// becomes piece i at slot p with negated orientation.
func Inverse(c Cube) Cube {
	var ret Cube

	for i := 0; i < 12; i++ {
		piece := c.Edge[i]
		orien := piece & eoBit
		ret.Edge[piece&pbits] = uint8(i) | orien
	}

	for i := 0; i < 8; i++ {
		piece := c.Corner[i]
		orien := ((piece << 1) | (piece >> 1)) & coBits2
		ret.Corner[piece&pbits] = uint8(i) | orien
	}

	return ret
}

// InvertCO negates every corner orientation. Used when applying a mirrored
// transform, because mirroring inverts chirality.
func InvertCO(c Cube) Cube {
	ret := c
	for i := 0; i < 8; i++ {
		piece := c.Corner[i]
		orien := ((piece << 1) | (piece >> 1)) & coBits2
		ret.Corner[i] = (piece & pbits) | orien
	}
	return ret
}
