package prune

import (
	"testing"

	"github.com/cubelab/goh48/cube"
)

func TestCoordH48Solved(t *testing.T) {
	cs := testCocsep(t)
	for h := uint8(0); h <= 11; h++ {
		if got := CoordH48(cube.Solved(), cs.Data, h); got != 0 {
			t.Errorf("h=%d: CoordH48(solved) = %d, want 0", h, got)
		}
	}
}

func TestCoordH48Range(t *testing.T) {
	cs := testCocsep(t)
	rng := testRand(61)
	for i := 0; i < 500; i++ {
		c := testScramble(rng)
		for _, h := range []uint8{0, 4, 11} {
			v := CoordH48(c, cs.Data, h)
			if v < 0 || v >= H48Max(h) {
				t.Fatalf("h=%d: coordinate %d out of range", h, v)
			}
		}
	}
}

func TestForEachH48SimStaysInClass(t *testing.T) {
	// Every member of a self-similarity orbit is a position symmetric to
	// the original, so it keeps the corner class and the solving distance;
	// the generator relies on this when it labels whole orbits at once.
	cs := testCocsep(t)
	rng := testRand(62)
	for i := 0; i < 100; i++ {
		c := testScramble(rng)
		_, v := cs.Lookup(c)
		n := 0
		forEachH48Sim(c, cs.Data, cs.Selfsim, func(d cube.Cube) {
			n++
			if !cube.IsSolvable(d) {
				t.Fatalf("orbit member is not a legal cube")
			}
			pval, vv := cs.Lookup(d)
			if cocsepClass(vv) != cocsepClass(v) {
				t.Fatalf("orbit member changed class: %d != %d",
					cocsepClass(vv), cocsepClass(v))
			}
			if pval != cocsepPval(v) {
				t.Fatalf("orbit member changed cocsep distance")
			}
		})
		if n == 0 {
			t.Fatal("empty orbit")
		}
	}
}

func TestInvCoordH48OrbitRoundTrip(t *testing.T) {
	// InvCoordH48 reconstructs a cube only up to the self-symmetry of its
	// class, so the original coordinate must appear in the orbit of the
	// reconstructed cube.
	cs := testCocsep(t)
	rng := testRand(63)
	for _, h := range []uint8{0, 3, 11} {
		for i := 0; i < 100; i++ {
			coord := CoordH48(testScramble(rng), cs.Data, h)
			c := InvCoordH48(coord, cs.Rep, h)
			found := false
			forEachH48Sim(c, cs.Data, cs.Selfsim, func(d cube.Cube) {
				if CoordH48(d, cs.Data, h) == coord {
					found = true
				}
			})
			if !found {
				t.Fatalf("h=%d: coordinate %d not in orbit of its reconstruction", h, coord)
			}
		}
	}
}

func TestForEachH48SimIncludesCube(t *testing.T) {
	cs := testCocsep(t)
	rng := testRand(64)
	for i := 0; i < 100; i++ {
		c := testScramble(rng)
		found := false
		forEachH48Sim(c, cs.Data, cs.Selfsim, func(d cube.Cube) {
			if d == c {
				found = true
			}
		})
		if !found {
			t.Fatalf("orbit does not contain the cube itself")
		}
	}
}

func TestESize(t *testing.T) {
	if got := ESize(0); got != 34650 {
		t.Errorf("ESize(0) = %d, want 34650", got)
	}
	if got := H48Max(0); got != 117522450 {
		t.Errorf("H48Max(0) = %d, want 117522450", got)
	}
	if got := H48Max(1); got != 2*117522450 {
		t.Errorf("H48Max(1) = %d, want %d", got, 2*117522450)
	}
}
