// Package solver implements the iterative-deepening depth-first searches
// over the 18 face turns: a generic estimator-driven DFS used by the simple
// and optimal solvers, and the h48 solver with table lookups and NISS
// branching (see h48.go).
//
// Every search deepens from MinMoves to MaxMoves, stops after MaxSolutions
// solutions, and honours an optimal tolerance: with tolerance t >= 0 the
// search ends once the current depth exceeds the depth of the first solution
// by more than t.
package solver

import (
	"github.com/rs/zerolog"

	"github.com/cubelab/goh48/cube"
)

// ErrUnsolvable indicates a starting cube that violates a legality
// invariant. The solver refuses it before doing any search work.
var ErrUnsolvable = cube.ErrUnsolvable

// Request bounds one solver call.
type Request struct {
	MinMoves     int8
	MaxMoves     int8
	MaxSolutions int64
	Optimal      int8 // -1 to disable the tolerance
	Log          zerolog.Logger
}

// Normalize fills in the defaults for unset bounds.
func (r *Request) Normalize() {
	if r.MinMoves < 0 {
		r.MinMoves = 0
	}
	// The DFS move lists hold at most 20 moves, which also bounds any
	// optimal solution.
	if r.MaxMoves <= 0 || r.MaxMoves > 20 {
		r.MaxMoves = 20
	}
}

type genericDFSArg struct {
	cube         cube.Cube
	depth        int8
	nmoves       int8
	moves        [20]cube.Move
	maxsols      int64
	nsols        *int64
	solutions    *[]string
	estimate     func(cube.Cube) int8
}

// SolveGeneric runs an IDA* search guided by the given admissible estimator.
func SolveGeneric(c cube.Cube, req Request, estimate func(cube.Cube) int8) ([]string, error) {
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
	arg := &genericDFSArg{
		cube:      c,
		maxsols:   req.MaxSolutions,
		nsols:     &nsols,
		solutions: &solutions,
		estimate:  estimate,
	}

	first := int8(-1)
	for depth := req.MinMoves; depth <= req.MaxMoves; depth++ {
		arg.depth = depth
		arg.nmoves = 0
		arg.cube = c
		found := genericDFS(arg)
		if found > 0 && first < 0 {
			first = depth
		}
		req.Log.Debug().
			Int8("depth", depth).
			Int64("found", found).
			Msg("searched depth")

		if nsols >= req.MaxSolutions {
			break
		}
		if req.Optimal >= 0 && first >= 0 && depth-first >= req.Optimal {
			break
		}
	}

	return solutions, nil
}

func genericDFS(arg *genericDFSArg) int64 {
	if arg.nmoves > 0 {
		m := arg.moves[arg.nmoves-1]
		if cube.AllowedNextMoves(arg.moves[:arg.nmoves-1])&(1<<m) == 0 {
			return 0
		}
		arg.cube = arg.cube.Move(m)
	}

	bound := arg.estimate(arg.cube)
	if *arg.nsols >= arg.maxsols || bound+arg.nmoves > arg.depth {
		return 0
	}

	if bound == 0 {
		if arg.nmoves != arg.depth {
			return 0
		}
		*arg.solutions = append(*arg.solutions,
			cube.WriteMoves(arg.moves[:arg.nmoves]))
		*arg.nsols++
		return 1
	}

	nextarg := *arg
	nextarg.nmoves = arg.nmoves + 1
	var ret int64
	for m := cube.Move(0); m < cube.NMoves; m++ {
		nextarg.cube = arg.cube
		nextarg.moves[arg.nmoves] = m
		ret += genericDFS(&nextarg)
	}
	return ret
}

// SolveSimple searches with the trivial solved-or-not estimator. It is
// correct for any depth but only practical for short solutions.
func SolveSimple(c cube.Cube, req Request) ([]string, error) {
	return SolveGeneric(c, req, func(c cube.Cube) int8 {
		if cube.IsSolved(c) {
			return 0
		}
		return 1
	})
}
