package solver

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubelab/goh48/cube"
	"github.com/cubelab/goh48/prune"
)

var (
	viewOnce sync.Once
	viewErr  error
	testview *prune.View
)

// testView builds an h=0 k=4 table bounded at depth 8, serializes it and
// loads it back, so the solver tests run against a blob exactly as a caller
// would hand it in. The bound keeps generation in tens of seconds; the
// solver treats the unfilled sentinel as "deeper than 8", which stays
// admissible.
func testView(t *testing.T) *prune.View {
	t.Helper()
	if testing.Short() {
		t.Skip("pruning table generation is slow")
	}
	viewOnce.Do(func() {
		var tables *prune.Tables
		tables, viewErr = prune.Generate(prune.GenArg{
			H: 0, K: 4, MaxDepth: 8, Log: zerolog.Nop(),
		})
		if viewErr != nil {
			return
		}
		buf := make([]byte, tables.Size())
		if _, viewErr = tables.Marshal(buf); viewErr != nil {
			return
		}
		testview, viewErr = prune.ReadTables(buf)
	})
	require.NoError(t, viewErr)
	return testview
}

func TestSolveH48Solved(t *testing.T) {
	view := testView(t)
	sols, err := SolveH48(cube.Solved(), Request{MaxMoves: 8, MaxSolutions: 1}, view)
	require.NoError(t, err)
	require.Len(t, sols, 1)
	assert.Equal(t, "", sols[0])
}

func TestSolveH48Sexy(t *testing.T) {
	view := testView(t)
	c, err := cube.FromMoves("R U R' U'")
	require.NoError(t, err)

	sols, err := SolveH48(c, Request{MaxMoves: 8, MaxSolutions: 1, Optimal: -1}, view)
	require.NoError(t, err)
	require.Len(t, sols, 1)
	assert.Equal(t, "U R U' R'", sols[0])
	checkSolution(t, c, sols[0])
}

func TestSolveH48TwelveOptimal(t *testing.T) {
	view := testView(t)
	scrambles := []string{
		"R D' R2 D R U2 R' D' R U2 R D R'",
		"R L U D R L U D R L U D",
	}
	for _, scramble := range scrambles {
		c, err := cube.FromMoves(scramble)
		require.NoError(t, err)

		sols, err := SolveH48(c, Request{MaxMoves: 20, MaxSolutions: 1, Optimal: -1}, view)
		require.NoError(t, err)
		require.Len(t, sols, 1, "scramble %q", scramble)
		assert.LessOrEqual(t, solutionLength(sols[0]), 12, "scramble %q", scramble)
		checkSolution(t, c, sols[0])
	}
}

func TestSolveH48SolutionBounds(t *testing.T) {
	view := testView(t)
	c, err := cube.FromMoves("R U R' U'")
	require.NoError(t, err)

	sols, err := SolveH48(c, Request{MinMoves: 4, MaxMoves: 6, MaxSolutions: 5, Optimal: -1}, view)
	require.NoError(t, err)
	require.NotEmpty(t, sols)
	for _, s := range sols {
		n := solutionLength(s)
		assert.GreaterOrEqual(t, n, 4, "solution %q", s)
		assert.LessOrEqual(t, n, 6, "solution %q", s)
		checkSolution(t, c, s)
	}
}

func TestSolveH48OptimalTolerance(t *testing.T) {
	view := testView(t)
	c, err := cube.FromMoves("R U R' U'")
	require.NoError(t, err)

	// With a zero tolerance every reported solution has optimal length.
	sols, err := SolveH48(c, Request{MaxMoves: 10, MaxSolutions: 100, Optimal: 0}, view)
	require.NoError(t, err)
	require.NotEmpty(t, sols)
	for _, s := range sols {
		assert.Equal(t, 4, solutionLength(s), "solution %q", s)
		checkSolution(t, c, s)
	}
}

func TestSolveH48Unsolvable(t *testing.T) {
	view := testView(t)
	c := cube.Solved()
	c.Corner[0] |= 0x20 // twist one corner
	_, err := SolveH48(c, Request{MaxMoves: 8, MaxSolutions: 1}, view)
	assert.ErrorIs(t, err, ErrUnsolvable)
}

func TestSolveH48RandomScrambles(t *testing.T) {
	view := testView(t)

	for _, scramble := range []string{
		"U2 F R2 B' D",
		"L F' U2 R D' B2",
		"F2 L' B D R U F' L2",
	} {
		c, err := cube.FromMoves(scramble)
		require.NoError(t, err)

		sols, err := SolveH48(c, Request{MaxMoves: 12, MaxSolutions: 1, Optimal: -1}, view)
		require.NoError(t, err)
		require.Len(t, sols, 1, "scramble %q", scramble)
		checkSolution(t, c, sols[0])
	}
}
