// h48.go generates the h48 pruning tables. The full-precision h=0, k=4 table
// is built breadth-first one depth at a time, switching expansion strategy
// with depth: early layers expand forward from the done positions, late
// layers probe backwards from the still-unknown ones, which is cheaper once
// most of the table is filled.

package prune

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/cubelab/goh48/cube"
)

// Sentinel entry values per width.
const (
	sentinel4 = 0xF
	sentinel2 = 0x3
)

// The depth at which backward probing becomes cheaper than forward
// expansion for the full h=0, k=4 table.
const bfsBreakpoint = 10

var (
	// ErrOptions indicates an unsupported (h, k) combination or a
	// malformed options string.
	ErrOptions = errors.New("prune: unsupported solver options")

	// ErrTableSize indicates a table blob whose header, magic or block
	// sizes do not match its contents.
	ErrTableSize = errors.New("prune: table size mismatch")

	// ErrBufferTooSmall indicates an output buffer smaller than the size
	// reported by DataSize. Tables are never truncated.
	ErrBufferTooSmall = errors.New("prune: output buffer too small")
)

// H48Table is one generated pruning table plus its parameters.
type H48Table struct {
	H            uint8
	K            uint8
	Base         uint8
	MaxValue     uint8
	Data         []uint32
	Distribution [21]uint64
}

// Tables is the full bundle produced by Generate: the cocsep table, the
// requested h48 table, and for k=2 the h0/k4 fallback consulted when a 2-bit
// entry underflows its base.
type Tables struct {
	Cocsep   *Cocsep
	H48      *H48Table
	Fallback *H48Table
}

// GenArg parametrizes table generation.
type GenArg struct {
	H        uint8
	K        uint8
	MaxDepth uint8
	Log      zerolog.Logger
}

// Generate builds the pruning tables for the given parameters. Supported
// combinations are h=0 k=4 and k=2 for any h in [0, 11].
func Generate(arg GenArg) (*Tables, error) {
	if arg.H > 11 || (arg.K != 2 && arg.K != 4) || (arg.K == 4 && arg.H != 0) {
		return nil, ErrOptions
	}
	// Twenty moves suffice for any position, and the distribution arrays
	// stop there.
	if arg.MaxDepth > 20 {
		arg.MaxDepth = 20
	}

	cocsep := GenCocsep(arg.Log)
	tables := &Tables{Cocsep: cocsep}

	switch {
	case arg.K == 4:
		tables.H48 = genH48H0K4(cocsep, arg.MaxDepth, arg.Log)
	case arg.K == 2:
		// The solver falls back to the h0/k4 table for entries below
		// the base, so a k=2 bundle always carries one.
		tables.Fallback = genH48H0K4(cocsep, 20, arg.Log)
		tables.H48 = genH48K2(cocsep, arg.H, arg.MaxDepth, arg.Log)
	}

	return tables, nil
}

type h0k4BFSArg struct {
	depth      uint8
	cocsepData []uint32
	data       []uint32
	selfsim    []uint64
	rep        []cube.Cube
}

func genH48H0K4(cocsep *Cocsep, maxdepth uint8, log zerolog.Logger) *H48Table {
	t := &H48Table{
		H:    0,
		K:    4,
		Data: make([]uint32, packedWords(H48Max(0), 4)),
	}
	fillSentinel(t.Data)

	sc := CoordH48(cube.Solved(), cocsep.Data, 0)
	setPacked(t.Data, sc, 4, 0)
	t.Distribution[0] = 1

	arg := &h0k4BFSArg{
		cocsepData: cocsep.Data,
		data:       t.Data,
		selfsim:    cocsep.Selfsim,
		rep:        cocsep.Rep,
	}
	max := H48Max(0)
	for done, depth := int64(1), uint8(1); done < max && depth <= maxdepth; depth++ {
		log.Debug().Uint8("depth", depth).Msg("h48: generating depth")
		arg.depth = depth
		var cc int64
		if depth < bfsBreakpoint {
			cc = h0k4BFSFromDone(arg)
		} else {
			cc = h0k4BFSFromNew(arg)
		}
		done += cc
		t.Distribution[depth] = uint64(cc)
		t.MaxValue = depth
		log.Debug().Int64("found", cc).Msg("h48: depth done")
	}

	log.Info().
		Uint8("maxvalue", t.MaxValue).
		Msg("h48 h=0 k=4 pruning table computed")

	return t
}

// h0k4BFSFromDone scans the layer at depth-1 and pushes every neighbour that
// is still unknown, marking its whole symmetry orbit.
func h0k4BFSFromDone(arg *h0k4BFSArg) int64 {
	var cc int64
	max := H48Max(0)
	for i := int64(0); i < max; i++ {
		if getPacked(arg.data, i, 4) != arg.depth-1 {
			continue
		}
		c := InvCoordH48(i, arg.rep, 0)
		for m := cube.Move(0); m < cube.NMoves; m++ {
			moved := c.Move(m)
			j := CoordH48(moved, arg.cocsepData, 0)
			if getPacked(arg.data, j, 4) <= arg.depth {
				continue
			}
			forEachH48Sim(moved, arg.cocsepData, arg.selfsim, func(d cube.Cube) {
				k := CoordH48(d, arg.cocsepData, 0)
				x := getPacked(arg.data, k, 4)
				setPacked(arg.data, k, 4, arg.depth)
				if x != arg.depth {
					cc++
				}
			})
		}
	}
	return cc
}

// h0k4BFSFromNew scans the still-unknown positions and probes their 18
// neighbours for one in the previous layer; the first hit settles the
// position and its orbit.
func h0k4BFSFromNew(arg *h0k4BFSArg) int64 {
	var cc int64
	max := H48Max(0)
	for i := int64(0); i < max; i++ {
		if getPacked(arg.data, i, 4) != sentinel4 {
			continue
		}
		c := InvCoordH48(i, arg.rep, 0)
		for m := cube.Move(0); m < cube.NMoves; m++ {
			moved := c.Move(m)
			j := CoordH48(moved, arg.cocsepData, 0)
			if getPacked(arg.data, j, 4) >= arg.depth {
				continue
			}
			forEachH48Sim(c, arg.cocsepData, arg.selfsim, func(d cube.Cube) {
				k := CoordH48(d, arg.cocsepData, 0)
				x := getPacked(arg.data, k, 4)
				setPacked(arg.data, k, 4, arg.depth)
				if x == sentinel4 {
					cc++
				}
			})
			break
		}
	}
	return cc
}
