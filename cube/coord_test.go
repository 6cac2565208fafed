package cube

import (
	"math/rand"
	"testing"
)

func TestCoordsOfSolved(t *testing.T) {
	c := Solved()
	if got := CoordCO(c); got != 0 {
		t.Errorf("CoordCO(solved) = %d, want 0", got)
	}
	if got := CoordEO(c); got != 0 {
		t.Errorf("CoordEO(solved) = %d, want 0", got)
	}
	if got := CoordESep(c); got != 0 {
		t.Errorf("CoordESep(solved) = %d, want 0", got)
	}
	// Corners 4..6 of the solved cube sit in the second tetrad, so the
	// separation bits give 16+32+64.
	if got := CoordCSep(c); got != 112 {
		t.Errorf("CoordCSep(solved) = %d, want 112", got)
	}
	if got := CoordCOCSep(c); got != 112 {
		t.Errorf("CoordCOCSep(solved) = %d, want 112", got)
	}
}

func TestCoordRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(30))
	for i := 0; i < 1000; i++ {
		c := randomCube(rng, 25)
		if v := CoordCO(c); v < 0 || v >= NCO {
			t.Fatalf("CoordCO out of range: %d", v)
		}
		if v := CoordCSep(c); v < 0 || v >= NCSep {
			t.Fatalf("CoordCSep out of range: %d", v)
		}
		if v := CoordCOCSep(c); v < 0 || v >= NCOCSep {
			t.Fatalf("CoordCOCSep out of range: %d", v)
		}
		if v := CoordEO(c); v < 0 || v >= NEO {
			t.Fatalf("CoordEO out of range: %d", v)
		}
		if v := CoordESep(c); v < 0 || v >= NESep {
			t.Fatalf("CoordESep out of range: %d", v)
		}
	}
}

func TestInvCoordESepRoundTrip(t *testing.T) {
	for v := int64(0); v < NESep; v++ {
		c := InvCoordESep(v)
		if !IsConsistent(c) {
			t.Fatalf("InvCoordESep(%d) is inconsistent", v)
		}
		if got := CoordESep(c); got != v {
			t.Fatalf("CoordESep(InvCoordESep(%d)) = %d", v, got)
		}
	}
}

func TestCoordESepHalfTurnInvariance(t *testing.T) {
	// Half turns map each slice to itself, so they never change which
	// positions hold E-slice or U/D-slice pieces beyond a swap within the
	// same class; the separation coordinate of the solved cube stays 0.
	c := Solved()
	for _, m := range []Move{U2, D2, R2, L2, F2, B2} {
		if got := CoordESep(c.Move(m)); got != 0 {
			t.Fatalf("esep of solved changed by %v: %d", m, got)
		}
	}
}

func TestSetEO(t *testing.T) {
	rng := rand.New(rand.NewSource(32))
	for i := 0; i < 200; i++ {
		c := randomCube(rng, 25)
		eo := rng.Int63n(NEO)
		SetEO(&c, eo)
		if got := CoordEO(c); got != eo {
			t.Fatalf("CoordEO after SetEO(%d) = %d", eo, got)
		}
		flips := 0
		for j := 0; j < 12; j++ {
			flips += int(c.Edge[j]>>eoShift) & 1
		}
		if flips%2 != 0 {
			t.Fatalf("SetEO(%d) left an odd flip count", eo)
		}
	}
}

func BenchmarkCoordESep(b *testing.B) {
	rng := rand.New(rand.NewSource(33))
	c := randomCube(rng, 25)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CoordESep(c)
	}
}

func BenchmarkCoordCOCSep(b *testing.B) {
	rng := rand.New(rand.NewSource(34))
	c := randomCube(rng, 25)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CoordCOCSep(c)
	}
}
