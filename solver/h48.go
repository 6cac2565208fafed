// h48.go implements the h48 optimal solver: an IDA* over the 18 face turns
// that walks the scramble and its inverse in lockstep, prunes with the
// cocsep and h48 table bounds of both cubes, and restricts which side of the
// search may grow when a bound is hit exactly (NISS branching). The
// restriction keeps the bound admissible while never enumerating the same
// sequence from both ends.

package solver

import (
	"strings"

	"github.com/cubelab/goh48/cube"
	"github.com/cubelab/goh48/prune"
)

// NISS branch states. The search extends the premove list only on an
// inverse branch; every other state extends the normal move list.
type nissBranch uint8

const (
	branchNormal nissBranch = iota
	branchInverse
	branchNormalOnly
)

type h48DFSArg struct {
	cube      cube.Cube
	inverse   cube.Cube
	depth     int8
	nmoves    int8
	npremoves int8
	moves     [20]cube.Move
	premoves  [20]cube.Move
	branch    nissBranch

	h    uint8
	k    uint8
	base uint8

	cocsepData []uint32
	h48        *prune.Block
	fallback   *prune.Block

	maxsols   int64
	nsols     *int64
	solutions *[]string
}

// SolveH48 searches for solutions of the given cube using the pruning
// tables in view.
func SolveH48(c cube.Cube, req Request, view *prune.View) ([]string, error) {
	if !cube.IsSolvable(c) {
		return nil, ErrUnsolvable
	}
	req.Normalize()
	if req.MaxSolutions <= 0 {
		return nil, nil
	}

	var (
		nsols     int64
		solutions []string
	)
	arg := &h48DFSArg{
		h:          view.H48.Info.H,
		k:          view.H48.Info.K,
		base:       view.H48.Info.Base,
		cocsepData: view.Cocsep.Data,
		h48:        &view.H48,
		fallback:   view.Fallback,
		maxsols:    req.MaxSolutions,
		nsols:      &nsols,
		solutions:  &solutions,
	}

	first := int8(-1)
	for depth := req.MinMoves; depth <= req.MaxMoves; depth++ {
		req.Log.Debug().
			Int8("depth", depth).
			Int64("solutions", nsols).
			Msg("h48: searching depth")
		arg.depth = depth
		arg.nmoves = 0
		arg.npremoves = 0
		arg.branch = branchNormal
		arg.cube = c
		arg.inverse = cube.Inverse(c)
		if h48DFS(arg) > 0 && first < 0 {
			first = depth
		}

		if nsols >= req.MaxSolutions {
			break
		}
		if req.Optimal >= 0 && first >= 0 && depth-first >= req.Optimal {
			break
		}
	}

	return solutions, nil
}

func h48DFS(arg *h48DFSArg) int64 {
	if *arg.nsols >= arg.maxsols {
		return 0
	}

	if h48Stop(arg) {
		return 0
	}

	if cube.IsSolved(arg.cube) {
		if arg.nmoves+arg.npremoves != arg.depth {
			return 0
		}
		appendSolution(arg)
		return 1
	}

	nextarg := *arg
	var ret int64
	if arg.branch == branchInverse {
		allowed := cube.AllowedNextMoves(arg.premoves[:arg.npremoves])
		for m := cube.Move(0); m < cube.NMoves; m++ {
			if allowed&(1<<m) == 0 {
				continue
			}
			nextarg.npremoves = arg.npremoves + 1
			nextarg.premoves[arg.npremoves] = m
			nextarg.inverse = arg.inverse.Move(m)
			nextarg.cube = arg.cube.Premove(m)
			ret += h48DFS(&nextarg)
		}
	} else {
		allowed := cube.AllowedNextMoves(arg.moves[:arg.nmoves])
		for m := cube.Move(0); m < cube.NMoves; m++ {
			if allowed&(1<<m) == 0 {
				continue
			}
			nextarg.nmoves = arg.nmoves + 1
			nextarg.moves[arg.nmoves] = m
			nextarg.cube = arg.cube.Move(m)
			nextarg.inverse = arg.inverse.Premove(m)
			ret += h48DFS(&nextarg)
		}
	}

	return ret
}

// h48Stop applies the pruning bounds of the forward and inverse cube and
// sets the branch restriction for the next step. It returns true when the
// node cannot reach a solution within the current depth.
func h48Stop(arg *h48DFSArg) bool {
	used := arg.nmoves + arg.npremoves
	arg.branch = branchNormal

	cbound, data := cocsepLookup(arg.cube, arg.cocsepData)
	if int8(cbound)+used > arg.depth {
		return true
	}
	cboundInv, dataInv := cocsepLookup(arg.inverse, arg.cocsepData)
	if int8(cboundInv)+used > arg.depth {
		return true
	}

	bound := h48Bound(arg, arg.cube, data)
	if bound+used > arg.depth {
		return true
	}
	if bound+used == arg.depth {
		arg.branch = branchInverse
	}

	boundInv := h48Bound(arg, arg.inverse, dataInv)
	if boundInv+used > arg.depth {
		return true
	}
	if boundInv+used == arg.depth {
		arg.branch = branchNormalOnly
	}

	return false
}

func cocsepLookup(c cube.Cube, data []uint32) (uint8, uint32) {
	v := data[cube.CoordCOCSep(c)]
	return uint8(v), v
}

// h48Bound reads the h48 pruning bound for one cube. A 2-bit entry of zero
// falls back to the full-precision table; the all-ones sentinel of a table
// generated with a depth bound stands for "deeper than the maximum stored
// value", which keeps truncated tables admissible.
func h48Bound(arg *h48DFSArg, c cube.Cube, cdata uint32) int8 {
	coclass := int64(cdata >> 16)
	ttrep := cube.Trans(cdata >> 8 & 0xFF)
	coord := prune.CoordH48Edges(c, coclass, ttrep, arg.h)
	val := prune.Get(arg.h48.Data, coord, arg.k)

	if arg.k == 4 {
		if val == 0xF {
			return int8(arg.h48.Info.MaxValue) + 1
		}
		return int8(val)
	}

	// k == 2
	if val == 0 {
		fb := prune.Get(arg.fallback.Data, coord>>arg.h, 4)
		if fb == 0xF {
			return int8(arg.fallback.Info.MaxValue) + 1
		}
		return int8(fb)
	}
	return int8(val + arg.base)
}

func appendSolution(arg *h48DFSArg) {
	var b strings.Builder
	b.WriteString(cube.WriteMoves(arg.moves[:arg.nmoves]))
	if arg.npremoves > 0 {
		if arg.nmoves > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(cube.WriteMoves(cube.InvertMoves(arg.premoves[:arg.npremoves])))
	}
	*arg.solutions = append(*arg.solutions, b.String())
	*arg.nsols++
}
