package prune

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubelab/goh48/cube"
)

var (
	h0k4Once    sync.Once
	h0k4Fixture *H48Table
)

// testH48H0K4 generates the h=0 k=4 table bounded at depth 5 once per test
// binary. The bound keeps the run in seconds; every entry past the bound
// stays at the sentinel.
func testH48H0K4(t *testing.T) *H48Table {
	t.Helper()
	if testing.Short() {
		t.Skip("h48 table generation is slow")
	}
	cs := testCocsep(t)
	h0k4Once.Do(func() {
		h0k4Fixture = genH48H0K4(cs, 5, zerolog.Nop())
	})
	return h0k4Fixture
}

// Layer sizes of the h=0 k=4 table up to depth 5, from the reference
// implementation.
var wantH0K4Distribution = [6]uint64{1, 1, 4, 34, 331, 3612}

func TestGenH48H0K4Distribution(t *testing.T) {
	h48 := testH48H0K4(t)
	for d, want := range wantH0K4Distribution {
		assert.Equal(t, want, h48.Distribution[d], "depth %d", d)
	}
	assert.EqualValues(t, 5, h48.MaxValue)
}

func TestGenH48H0K4Solved(t *testing.T) {
	h48 := testH48H0K4(t)
	cs := testCocsep(t)

	sc := CoordH48(cube.Solved(), cs.Data, 0)
	require.EqualValues(t, 0, getPacked(h48.Data, sc, 4))
}

func TestGenH48H0K4BoundsAreAdmissible(t *testing.T) {
	h48 := testH48H0K4(t)
	cs := testCocsep(t)

	// A cube scrambled with n moves can never have a stored bound above n.
	scrambles := []struct {
		moves string
		n     uint8
	}{
		{"R", 1},
		{"R U", 2},
		{"R U F", 3},
		{"R U F D2", 4},
		{"R U2 F' D L", 5},
	}
	for _, s := range scrambles {
		c, err := cube.FromMoves(s.moves)
		require.NoError(t, err)
		v := getPacked(h48.Data, CoordH48(c, cs.Data, 0), 4)
		assert.LessOrEqual(t, v, s.n, "scramble %q", s.moves)
	}
}

func TestGenH48H0K4NeighboursConsistent(t *testing.T) {
	h48 := testH48H0K4(t)
	cs := testCocsep(t)

	// Within the filled part of the table, the values of neighbouring
	// positions differ by at most one.
	rng := testRand(70)
	for i := 0; i < 50; i++ {
		c := cube.Solved()
		for j := 0; j < 4; j++ {
			c = c.Move(cube.Move(rng.Intn(cube.NMoves)))
		}
		v := getPacked(h48.Data, CoordH48(c, cs.Data, 0), 4)
		require.NotEqual(t, uint8(sentinel4), v)
		for m := cube.Move(0); m < cube.NMoves; m++ {
			nv := getPacked(h48.Data, CoordH48(c.Move(m), cs.Data, 0), 4)
			if nv == sentinel4 {
				continue
			}
			diff := int(v) - int(nv)
			assert.True(t, diff >= -1 && diff <= 1,
				"neighbour values %d and %d", v, nv)
		}
	}
}

func TestGenerateRejectsUnsupported(t *testing.T) {
	for _, tt := range []struct{ h, k uint8 }{
		{1, 4}, {12, 2}, {0, 3}, {0, 8},
	} {
		_, err := Generate(GenArg{H: tt.h, K: tt.k, MaxDepth: 20})
		assert.ErrorIs(t, err, ErrOptions, "h=%d k=%d", tt.h, tt.k)
	}
}

func TestGenH48ShortSmallDepths(t *testing.T) {
	if testing.Short() {
		t.Skip("short-cube enumeration needs the cocsep table")
	}
	cs := testCocsep(t)

	seeds := genH48Short(cs, 2, zerolog.Nop())

	solved := CoordH48(cube.Solved(), cs.Data, 11)
	v, ok := seeds[solved]
	require.True(t, ok)
	assert.EqualValues(t, 0, v)

	// Every single move lands on a seed at depth at most one: a half turn
	// keeps the h48 coordinate of the solved cube.
	for m := cube.Move(0); m < cube.NMoves; m++ {
		coord := CoordH48(cube.Solved().Move(m), cs.Data, 11)
		v, ok := seeds[coord]
		require.True(t, ok, "move %v missing from seeds", m)
		assert.LessOrEqual(t, v, uint8(1), "move %v", m)
	}

	for coord, depth := range seeds {
		assert.LessOrEqual(t, depth, uint8(2), "coord %d", coord)
	}
}

func BenchmarkGetPackedH48(b *testing.B) {
	data := make([]uint32, 1024)
	fillSentinel(data)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		getPacked(data, int64(i)%8192, 4)
	}
}
