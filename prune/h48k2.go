// h48k2.go generates the 2-bit pruning tables. A 2-bit entry stores
// max(0, depth - base), so depths below the base have to be recovered some
// other way: the generator first explodes a short breadth-first search over
// the full-precision (h=11) coordinate, then runs a bounded DFS from every
// seed, updating each visited orbit with the minimum encoded value. At solve
// time a stored zero means "consult the h0/k4 fallback".

package prune

import (
	"github.com/rs/zerolog"

	"github.com/cubelab/goh48/cube"
)

// k2Base is the per-h pruning offset of the 2-bit tables.
var k2Base = [12]uint8{8, 8, 8, 8, 9, 9, 9, 9, 10, 10, 10, 10}

// k2ShortDepth is the depth of the seed search.
const k2ShortDepth = 8

// k2SeedCapacityHint sizes the seed map allocation.
const k2SeedCapacityHint = 1 << 23

// genH48Short enumerates every full-precision h48 coordinate reachable
// within maxdepth moves, mapped to its distance.
func genH48Short(cocsep *Cocsep, maxdepth uint8, log zerolog.Logger) map[int64]uint8 {
	seeds := make(map[int64]uint8, k2SeedCapacityHint)

	insertMin := func(coord int64, depth uint8) {
		if old, ok := seeds[coord]; !ok || depth < old {
			seeds[coord] = depth
		}
	}

	insertMin(CoordH48(cube.Solved(), cocsep.Data, 11), 0)
	log.Debug().Uint8("depth", 0).Int("cubes", len(seeds)).Msg("short h48: depth done")

	for i := uint8(0); i < maxdepth; i++ {
		frontier := make([]int64, 0, len(seeds))
		for coord, depth := range seeds {
			if depth == i {
				frontier = append(frontier, coord)
			}
		}
		for _, coord := range frontier {
			c := InvCoordH48(coord, cocsep.Rep, 11)
			for m := cube.Move(0); m < cube.NMoves; m++ {
				moved := c.Move(m)
				forEachH48Sim(moved, cocsep.Data, cocsep.Selfsim, func(d cube.Cube) {
					insertMin(CoordH48(d, cocsep.Data, 11), i+1)
				})
			}
		}
		log.Debug().Uint8("depth", i+1).Int("cubes", len(seeds)).Msg("short h48: depth done")
	}

	return seeds
}

type k2DFSArg struct {
	cube       cube.Cube
	moves      [20]cube.Move
	h          uint8
	base       uint8
	depth      uint8
	shortdepth uint8
	maxdepth   uint8
	cocsepData []uint32
	data       []uint32
	selfsim    []uint64
	rep        []cube.Cube
	seeds      map[int64]uint8
}

func genH48K2(cocsep *Cocsep, h, maxdepth uint8, log zerolog.Logger) *H48Table {
	base := k2Base[h]
	t := &H48Table{
		H:        h,
		K:        2,
		Base:     base,
		MaxValue: sentinel2,
		Data:     make([]uint32, packedWords(H48Max(h), 2)),
	}
	fillSentinel(t.Data)

	log.Info().Uint8("depth", k2ShortDepth).Msg("h48 k=2: computing short cubes")
	seeds := genH48Short(cocsep, k2ShortDepth, log)
	log.Info().Int("cubes", len(seeds)).Msg("h48 k=2: short cubes computed")

	dfsarg := &k2DFSArg{
		h:          h,
		base:       base,
		shortdepth: k2ShortDepth,
		maxdepth:   min(maxdepth, base+2),
		cocsepData: cocsep.Data,
		data:       t.Data,
		selfsim:    cocsep.Selfsim,
		rep:        cocsep.Rep,
		seeds:      seeds,
	}

	done := 0
	for coord := range seeds {
		dfsarg.cube = InvCoordH48(coord, cocsep.Rep, 11)
		dfsarg.depth = k2ShortDepth
		k2DFS(dfsarg)
		if done++; done%1000000 == 0 {
			log.Debug().Int("processed", done).Msg("h48 k=2: short cubes processed")
		}
	}

	for j := int64(0); j < H48Max(h); j++ {
		t.Distribution[getPacked(t.Data, j, 2)]++
	}

	log.Info().Uint8("base", base).Msg("h48 k=2 pruning table computed")

	return t
}

func k2DFS(arg *k2DFSArg) {
	forEachH48Sim(arg.cube, arg.cocsepData, arg.selfsim, func(d cube.Cube) {
		fullcoord := CoordH48(d, arg.cocsepData, 11)
		coord := fullcoord >> (11 - arg.h)
		oldval := getPacked(arg.data, coord, 2)
		newval := uint8(0)
		if arg.depth >= arg.base {
			newval = arg.depth - arg.base
		}
		setPacked(arg.data, coord, 2, min(oldval, newval))
	})

	// Stop when revisiting a seed on a longer path, or at the horizon.
	fullcoord := CoordH48(arg.cube, arg.cocsepData, 11)
	mval, seeded := arg.seeds[fullcoord]
	backtracked := seeded && mval <= arg.shortdepth && arg.depth != arg.shortdepth
	if backtracked || arg.depth >= arg.maxdepth {
		return
	}

	nextarg := *arg
	nextarg.depth++
	nmoves := int(nextarg.depth - arg.shortdepth)
	allowed := cube.AllowedNextMoves(nextarg.moves[:nmoves-1])
	for m := cube.Move(0); m < cube.NMoves; m++ {
		if allowed&(1<<m) == 0 {
			continue
		}
		nextarg.moves[nmoves-1] = m
		nextarg.cube = arg.cube.Move(m)
		k2DFS(&nextarg)
	}
}
