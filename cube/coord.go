// coord.go extracts the integer coordinates used to index the pruning
// tables: corner orientation, corner separation, edge orientation and edge
// separation, plus the inverse of the edge-separation coordinate.

package cube

// Coordinate domain sizes.
const (
	NCO     = 2187  // 3^7 corner orientations
	NCSep   = 128   // 2^7 corner separation bit patterns
	NCOCSep = NCO * NCSep
	NEO     = 2048 // 2^11 edge orientations
	NESep   = 495 * 70
)

var binomial = [12][12]int64{
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{1, 2, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{1, 3, 3, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	{1, 4, 6, 4, 1, 0, 0, 0, 0, 0, 0, 0},
	{1, 5, 10, 10, 5, 1, 0, 0, 0, 0, 0, 0},
	{1, 6, 15, 20, 15, 6, 1, 0, 0, 0, 0, 0},
	{1, 7, 21, 35, 35, 21, 7, 1, 0, 0, 0, 0},
	{1, 8, 28, 56, 70, 56, 28, 8, 1, 0, 0, 0},
	{1, 9, 36, 84, 126, 126, 84, 36, 9, 1, 0, 0},
	{1, 10, 45, 120, 210, 252, 210, 120, 45, 10, 1, 0},
	{1, 11, 55, 165, 330, 462, 462, 330, 165, 55, 11, 1},
}

// CoordCO returns the corner-orientation coordinate, the first seven
// orientations read as ternary digits.
func CoordCO(c Cube) int64 {
	var ret int64
	for i, p := 0, int64(1); i < 7; i, p = i+1, p*3 {
		ret += p * int64(c.Corner[i]>>coShift)
	}
	return ret
}

// CoordCSep returns the corner-separation coordinate: the tetrad each of the
// first seven corners belongs to, read as binary. Only 70 of the 128 values
// are reachable, which is fine since this coordinate never indexes a large
// table on its own.
func CoordCSep(c Cube) int64 {
	var ret int64
	for i, p := 0, int64(1); i < 7; i, p = i+1, p*2 {
		ret += p * int64((c.Corner[i]&csepBit)>>2)
	}
	return ret
}

// CoordCOCSep returns the combined corner coordinate co * 128 + csep.
func CoordCOCSep(c Cube) int64 {
	return CoordCO(c)<<7 + CoordCSep(c)
}

// CoordEO returns the edge-orientation coordinate, the eleven independent
// orientation bits of edge slots 1..11.
func CoordEO(c Cube) int64 {
	var ret int64
	for i, p := 1, int64(1); i < 12; i, p = i+1, p*2 {
		ret += p * int64(c.Edge[i]>>eoShift)
	}
	return ret
}

// CoordESep returns the edge-separation coordinate, a number below
// C(12,4)*C(8,4) composed of two subset-index coordinates: which four edges
// sit in the E slice, and which four of the remaining eight sit in the slice
// cut by the U and D faces.
func CoordESep(c Cube) int64 {
	var i, j, k, l, ret1, ret2 int64
	k, l = 4, 4
	for i, j = 0, 0; i < 12; i++ {
		bit1 := int64(c.Edge[i]&esepBit1) >> 2
		bit2 := int64(c.Edge[i]&esepBit2) >> 3
		is1 := (1 - bit2) * bit1

		ret1 += bit2 * binomial[11-i][k]
		k -= bit2

		// j reaches 8 once every non-E-slice edge has been seen, so the
		// second lookup is only made for edges that count toward ret2.
		if is1 != 0 {
			ret2 += binomial[7-j][l]
		}
		l -= is1
		j += 1 - bit2
	}
	return ret1*70 + ret2
}

// InvCoordESep returns a cube whose edge permutation realizes the given
// edge-separation coordinate. Within each slice the pieces are placed in
// ascending order and all orientations are zero; corners are solved. The
// result is one representative of the coordinate, not a uniquely determined
// cube.
func InvCoordESep(esep int64) Cube {
	ret := solved
	ret1, ret2 := esep/70, esep%70

	var eslice [12]bool
	k := int64(4)
	for i := 0; i < 12 && k > 0; i++ {
		if b := binomial[11-i][k]; ret1 >= b {
			ret1 -= b
			eslice[i] = true
			k--
		}
	}

	var sslice [12]bool
	l := int64(4)
	j := 0
	for i := 0; i < 12; i++ {
		if eslice[i] {
			continue
		}
		if l > 0 {
			if b := binomial[7-j][l]; ret2 >= b {
				ret2 -= b
				sslice[i] = true
				l--
			}
		}
		j++
	}

	e, s, u := uint8(8), uint8(4), uint8(0)
	for i := 0; i < 12; i++ {
		switch {
		case eslice[i]:
			ret.Edge[i] = e
			e++
		case sslice[i]:
			ret.Edge[i] = s
			s++
		default:
			ret.Edge[i] = u
			u++
		}
	}

	return ret
}

// SetEO overwrites the edge orientations with the eleven bits of eo, fixing
// the orientation of edge slot 0 so that the total flip count stays even.
func SetEO(c *Cube, eo int64) {
	parity := uint8(0)
	for i, v := 1, eo; i < 12; i, v = i+1, v>>1 {
		bit := uint8(v&1) << eoShift
		parity ^= bit
		c.Edge[i] = c.Edge[i]&^uint8(eoBit) | bit
	}
	c.Edge[0] = c.Edge[0]&^uint8(eoBit) | parity
}

// CopyCorners overwrites the corner slots of dst with those of src.
func CopyCorners(dst *Cube, src Cube) {
	dst.Corner = src.Corner
}
