package goh48_test

import (
	"fmt"

	"github.com/cubelab/goh48"
)

func ExampleFromMoves() {
	c, _ := goh48.FromMoves("U")
	s, _ := goh48.WriteCube("LST", c)
	fmt.Println(s)
	// Output: 5, 4, 2, 3, 0, 1, 6, 7, 4, 5, 2, 3, 1, 0, 6, 7, 8, 9, 10, 11
}

func ExampleConvert() {
	solved, _ := goh48.WriteCube("H48", goh48.Solved())
	lst, _ := goh48.Convert("H48", "LST", solved)
	fmt.Println(lst)
	// Output: 0, 1, 2, 3, 4, 5, 6, 7, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11
}

func ExampleSolve() {
	c, _ := goh48.FromMoves("R U2")
	sols, _ := goh48.Solve(c, "simple", "", "", 0, 4, 1, -1, nil)
	fmt.Println(sols[0])
	// Output: U2 R'
}
