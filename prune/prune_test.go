package prune

import (
	"math/rand"

	"github.com/cubelab/goh48/cube"
)

func testRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// testScramble returns a cube scrambled by 25 random moves.
func testScramble(rng *rand.Rand) cube.Cube {
	c := cube.Solved()
	for i := 0; i < 25; i++ {
		c = c.Move(cube.Move(rng.Intn(cube.NMoves)))
	}
	return c
}
