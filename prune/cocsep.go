// cocsep.go builds the corner-orientation / corner-separation table: for each
// of the 2187*128 coordinates, its symmetry class under the 48 transforms,
// the transform taking it to the class representative, and its distance from
// the solved corners. A parallel self-similarity mask per class records the
// transforms fixing the representative, which later lets the h48 generator
// mark a whole symmetry orbit from a single expansion.

package prune

import (
	"github.com/rs/zerolog"

	"github.com/cubelab/goh48/cube"
)

const (
	// Classes is the number of symmetry classes of the cocsep coordinate.
	Classes = 3393

	// CocsepEntries is the size of the cocsep coordinate domain. Only
	// 153090 of the entries are reachable; the rest keep the sentinel.
	CocsepEntries = cube.NCOCSep

	// CocsepMaxValue is the known diameter of the cocsep graph.
	CocsepMaxValue = 9
)

// Each cocsep entry is a uint32: the pruning value in the low byte, the
// transform to the class representative in the second byte, and the class
// index in the top half.

func cocsepPval(v uint32) uint8 {
	return uint8(v)
}

func cocsepTTRep(v uint32) cube.Trans {
	return cube.Trans(v >> 8)
}

func cocsepClass(v uint32) int64 {
	return int64(v >> 16)
}

// Cocsep bundles the generated table with the per-class data the h48
// builder needs. It is built once and then only read.
type Cocsep struct {
	Data         []uint32
	Selfsim      []uint64
	Rep          []cube.Cube
	Distribution [21]uint64
	MaxValue     uint8
}

// Lookup returns the pruning value and the raw entry for the corner
// coordinate of c.
func (cs *Cocsep) Lookup(c cube.Cube) (uint8, uint32) {
	v := cs.Data[cube.CoordCOCSep(c)]
	return cocsepPval(v), v
}

type cocsepDFSArg struct {
	cube     cube.Cube
	depth    uint8
	maxdepth uint8
	n        *uint16
	data     []uint32
	visited  bitset
	selfsim  []uint64
	rep      []cube.Cube
}

// GenCocsep builds the cocsep table by iterative-deepening DFS from the
// solved cube, one depth at a time up to the known diameter. When a new
// class is found at the horizon all 48 transformed coordinates are labelled
// in one pass.
func GenCocsep(log zerolog.Logger) *Cocsep {
	cs := &Cocsep{
		Data:     make([]uint32, CocsepEntries),
		Selfsim:  make([]uint64, Classes),
		Rep:      make([]cube.Cube, Classes),
		MaxValue: CocsepMaxValue,
	}
	fillSentinel(cs.Data)

	var n uint16
	visited := newBitset(CocsepEntries)
	arg := &cocsepDFSArg{
		n:       &n,
		data:    cs.Data,
		visited: visited,
		selfsim: cs.Selfsim,
		rep:     cs.Rep,
	}
	for i := uint8(0); i <= CocsepMaxValue; i++ {
		log.Debug().Uint8("depth", i).Msg("cocsep: generating depth")
		visited.clear()
		arg.cube = cube.Solved()
		arg.depth = 0
		arg.maxdepth = i
		cc := cocsepDFS(arg)
		cs.Distribution[i] = uint64(cc)
		log.Debug().Uint32("found", cc).Msg("cocsep: depth done")
	}

	log.Info().
		Uint16("classes", n).
		Uint8("maxvalue", cs.MaxValue).
		Msg("cocsep table computed")

	return cs
}

func cocsepDFS(arg *cocsepDFSArg) uint32 {
	i := cube.CoordCOCSep(arg.cube)
	olddepth := cocsepPval(arg.data[i])
	if olddepth < arg.depth || arg.visited.get(i) {
		return 0
	}
	arg.visited.set(i)

	if arg.depth == arg.maxdepth {
		if cocsepPval(arg.data[i]) != 0xFF {
			return 0
		}

		var cc uint32
		for t := cube.Trans(0); t < cube.NTrans; t++ {
			d := arg.cube.Transform(t)
			ii := cube.CoordCOCSep(d)
			if ii == i {
				arg.selfsim[*arg.n] |= 1 << t
			}
			arg.visited.set(ii)
			tinv := cube.InverseTrans(t)
			if cocsepPval(arg.data[ii]) == 0xFF {
				cc++
			}
			arg.data[ii] = uint32(*arg.n)<<16 | uint32(tinv)<<8 | uint32(arg.depth)
		}
		arg.rep[*arg.n] = arg.cube
		(*arg.n)++

		return cc
	}

	nextarg := *arg
	nextarg.depth++
	var cc uint32
	for m := cube.Move(0); m < cube.NMoves; m++ {
		nextarg.cube = arg.cube.Move(m)
		cc += cocsepDFS(&nextarg)
	}

	return cc
}
