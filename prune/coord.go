// coord.go assembles the composite h48 coordinate from a cube and the cocsep
// table, inverts it back to a representative cube, and iterates the symmetry
// orbit of a position through the self-similarity masks.

package prune

import "github.com/cubelab/goh48/cube"

// ESize is the number of (esep, eo-prefix) combinations at parameter h.
func ESize(h uint8) int64 {
	return int64(cube.NESep) << h
}

// H48Max is the size of the h48 coordinate domain at parameter h.
func H48Max(h uint8) int64 {
	return Classes * ESize(h)
}

// CoordH48 returns the h48 coordinate of c: the symmetry class of its corner
// coordinate, the edge separation and the top h edge-orientation bits of the
// cube transformed to the class representative.
func CoordH48(c cube.Cube, cocsepData []uint32, h uint8) int64 {
	data := cocsepData[cube.CoordCOCSep(c)]
	return CoordH48Edges(c, cocsepClass(data), cocsepTTRep(data), h)
}

// CoordH48Edges is CoordH48 with the cocsep entry already looked up. Only the
// edges of c are transformed, which is all the edge coordinates need.
func CoordH48Edges(c cube.Cube, coclass int64, ttrep cube.Trans, h uint8) int64 {
	d := c.TransformEdges(ttrep)
	esep := cube.CoordESep(d)
	eo := cube.CoordEO(d)
	return coclass*ESize(h) + esep<<h + eo>>(11-h)
}

// InvCoordH48 returns a cube whose h48 coordinate is i, up to the
// self-symmetry of the class: the edge permutation realizes the esep part,
// the corners come from the class representative, and the available
// edge-orientation bits are restored from the low h bits. The generators
// only need some member of the orbit, not the canonical one.
func InvCoordH48(i int64, rep []cube.Cube, h uint8) cube.Cube {
	coclass := i / ESize(h)
	ee := i % ESize(h)
	esep := ee >> h
	eo := (ee & (1<<h - 1)) << (11 - h)

	ret := cube.InvCoordESep(esep)
	cube.CopyCorners(&ret, rep[coclass])
	cube.SetEO(&ret, eo)

	return ret
}

// forEachH48Sim calls fn on every self-symmetric variant of c, including c
// itself: the representative of c's class is transformed by each symmetry
// fixing it, then taken back by the inverse of the transform-to-
// representative.
func forEachH48Sim(c cube.Cube, cocsepData []uint32, selfsim []uint64, fn func(cube.Cube)) {
	data := cocsepData[cube.CoordCOCSep(c)]
	ttrep := cocsepTTRep(data)
	invTTRep := cube.InverseTrans(ttrep)
	rep := c.Transform(ttrep)

	s := selfsim[cocsepClass(data)]
	for t := cube.Trans(0); t < cube.NTrans && s != 0; t, s = t+1, s>>1 {
		if s&1 == 0 {
			continue
		}
		fn(rep.Transform(t).Transform(invTTRep))
	}
}
