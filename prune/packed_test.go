package prune

import (
	"math/rand"
	"testing"
)

func TestPackedRoundTrip(t *testing.T) {
	for _, k := range []uint8{2, 4} {
		maxval := uint8(1)<<k - 1
		n := int64(1000)
		data := make([]uint32, packedWords(n, k))

		rng := rand.New(rand.NewSource(50))
		want := make([]uint8, n)
		for i := int64(0); i < n; i++ {
			want[i] = uint8(rng.Intn(int(maxval) + 1))
			setPacked(data, i, k, want[i])
		}
		for i := int64(0); i < n; i++ {
			if got := getPacked(data, i, k); got != want[i] {
				t.Fatalf("k=%d entry %d = %d, want %d", k, i, got, want[i])
			}
		}
	}
}

func TestPackedNeighboursUntouched(t *testing.T) {
	for _, k := range []uint8{2, 4} {
		n := int64(64)
		data := make([]uint32, packedWords(n, k))
		fillSentinel(data)

		maxval := uint8(1)<<k - 1
		for i := int64(0); i < n; i++ {
			setPacked(data, i, k, 0)
			for j := int64(0); j < n; j++ {
				want := maxval
				if j == i {
					want = 0
				}
				if got := getPacked(data, j, k); got != want {
					t.Fatalf("k=%d: writing entry %d changed entry %d", k, i, j)
				}
			}
			setPacked(data, i, k, maxval)
		}
	}
}

func TestPackedWords(t *testing.T) {
	tests := []struct {
		n    int64
		k    uint8
		want int64
	}{
		{8, 4, 1},
		{9, 4, 2},
		{16, 2, 1},
		{17, 2, 2},
		{H48Max(0), 4, 14690307},
	}
	for _, tt := range tests {
		if got := packedWords(tt.n, tt.k); got != tt.want {
			t.Errorf("packedWords(%d, %d) = %d, want %d", tt.n, tt.k, got, tt.want)
		}
	}
}

func TestFillSentinel(t *testing.T) {
	data := make([]uint32, 4)
	fillSentinel(data)
	for i := int64(0); i < 32; i++ {
		if got := getPacked(data, i, 4); got != sentinel4 {
			t.Fatalf("entry %d = %d after fill, want %d", i, got, sentinel4)
		}
	}
	for i := int64(0); i < 64; i++ {
		if got := getPacked(data, i, 2); got != sentinel2 {
			t.Fatalf("entry %d = %d after fill, want %d", i, got, sentinel2)
		}
	}
}

func TestBitset(t *testing.T) {
	b := newBitset(100)
	for _, i := range []int64{0, 7, 8, 63, 99} {
		if b.get(i) {
			t.Fatalf("bit %d set in fresh bitset", i)
		}
		b.set(i)
		if !b.get(i) {
			t.Fatalf("bit %d not set after set", i)
		}
	}
	b.clear()
	for _, i := range []int64{0, 7, 8, 63, 99} {
		if b.get(i) {
			t.Fatalf("bit %d survived clear", i)
		}
	}
}
