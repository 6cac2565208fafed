package cube

import (
	"math/rand"
	"testing"
)

func TestTransformIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	for i := 0; i < 20; i++ {
		c := randomCube(rng, 25)
		if got := c.Transform(TransUFr); got != c {
			t.Fatalf("identity transform changed the cube")
		}
	}
}

func TestTransformRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for i := 0; i < 10; i++ {
		c := randomCube(rng, 25)
		for tr := Trans(0); tr < NTrans; tr++ {
			got := c.Transform(tr).Transform(InverseTrans(tr))
			if got != c {
				t.Fatalf("transform %v then its inverse %v changed the cube",
					tr, InverseTrans(tr))
			}
		}
	}
}

func TestInverseTransInvolution(t *testing.T) {
	for tr := Trans(0); tr < NTrans; tr++ {
		if got := InverseTrans(InverseTrans(tr)); got != tr {
			t.Errorf("inverse of inverse of %v is %v", tr, got)
		}
	}
}

func TestTransformKeepsSolvability(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	for i := 0; i < 10; i++ {
		c := randomCube(rng, 25)
		for tr := Trans(0); tr < NTrans; tr++ {
			d := c.Transform(tr)
			if !IsConsistent(d) {
				t.Fatalf("transform %v produced an inconsistent cube", tr)
			}
			if !IsSolvable(d) {
				t.Fatalf("transform %v produced an unsolvable cube", tr)
			}
		}
	}
}

func TestTransformSolvedFixed(t *testing.T) {
	for tr := Trans(0); tr < NTrans; tr++ {
		if got := Solved().Transform(tr); !IsSolved(got) {
			t.Errorf("transform %v does not fix the solved cube", tr)
		}
	}
}

func TestTransformEdgesMatchesTransform(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for i := 0; i < 10; i++ {
		c := randomCube(rng, 25)
		for tr := Trans(0); tr < NTrans; tr++ {
			full := c.Transform(tr)
			edges := c.TransformEdges(tr)
			if full.Edge != edges.Edge {
				t.Fatalf("edge-only transform %v disagrees with full transform", tr)
			}
		}
	}
}

func TestTransformsAreDistinct(t *testing.T) {
	// A 25-move scramble has no self-symmetry with overwhelming
	// probability, so all 48 images must differ.
	rng := rand.New(rand.NewSource(24))
	c := randomCube(rng, 25)
	seen := make(map[Cube]Trans)
	for tr := Trans(0); tr < NTrans; tr++ {
		d := c.Transform(tr)
		if prev, ok := seen[d]; ok {
			t.Fatalf("transforms %v and %v give the same cube", prev, tr)
		}
		seen[d] = tr
	}
}

func TestParseTrans(t *testing.T) {
	for tr := Trans(0); tr < NTrans; tr++ {
		got, err := ParseTrans(tr.String())
		if err != nil {
			t.Fatalf("ParseTrans(%q) error: %v", tr.String(), err)
		}
		if got != tr {
			t.Fatalf("ParseTrans(%q) = %v, want %v", tr.String(), got, tr)
		}
	}

	for _, s := range []string{"", "rotation XY", "reflected UF", "rotation U"} {
		if _, err := ParseTrans(s); err == nil {
			t.Errorf("ParseTrans(%q) succeeded, want error", s)
		}
	}
}
