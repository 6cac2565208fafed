// solve.go exposes the solver dispatch. The solver is selected by name:
// "simple" and "optimal" run the estimator-driven search without tables,
// "h48" runs the IDA* with NISS branching against a table blob generated by
// GenData.

package goh48

import (
	"github.com/cubelab/goh48/prune"
	"github.com/cubelab/goh48/solver"
)

// Solve searches for solutions of the given cube.
//
// nissType selects the search style; the only accepted values are "" and
// "normal". minMoves and maxMoves bound the solution length, maxSolutions
// the number of solutions, and optimal the number of moves past the first
// solution's length to keep searching (negative to disable). For "h48",
// data must be a table blob produced by GenData.
func Solve(
	c Cube,
	solverName, options, nissType string,
	minMoves, maxMoves int,
	maxSolutions int64,
	optimal int,
	data []byte,
) ([]string, error) {
	switch nissType {
	case "", "normal":
	default:
		return nil, ErrUnsupportedOptions
	}

	req := solver.Request{
		MinMoves:     int8(minMoves),
		MaxMoves:     int8(maxMoves),
		MaxSolutions: maxSolutions,
		Optimal:      int8(optimal),
		Log:          logger,
	}

	switch solverName {
	case "simple", "optimal":
		return solver.SolveSimple(c, req)
	case "h48":
		view, err := prune.ReadTables(data)
		if err != nil {
			return nil, err
		}
		return solver.SolveH48(c, req, view)
	}
	return nil, ErrUnknownSolver
}
