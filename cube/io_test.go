package cube

import (
	"math/rand"
	"testing"
)

const solvedH48 = "UF0 UB0 DB0 DF0 UR0 UL0 DL0 DR0 FR0 FL0 BL0 BR0 " +
	"UFR0 UBL0 DFL0 DBR0 UFL0 UBR0 DFR0 DBL0"

const solvedLST = "0, 1, 2, 3, 4, 5, 6, 7, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11"

func TestWriteCubeSolved(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"H48", solvedH48},
		{"LST", solvedLST},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := WriteCube(tt.format, Solved())
			if err != nil {
				t.Fatalf("WriteCube error: %v", err)
			}
			if got != tt.want {
				t.Errorf("WriteCube(%s, solved) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestReadCubeSolved(t *testing.T) {
	for _, tt := range []struct{ format, input string }{
		{"H48", solvedH48},
		{"LST", solvedLST},
	} {
		c, err := ReadCube(tt.format, tt.input)
		if err != nil {
			t.Fatalf("ReadCube(%s) error: %v", tt.format, err)
		}
		if !IsSolved(c) {
			t.Errorf("ReadCube(%s, solved string) is not solved", tt.format)
		}
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(40))
	for _, format := range []string{"H48", "LST"} {
		t.Run(format, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				c := randomCube(rng, 25)
				s, err := WriteCube(format, c)
				if err != nil {
					t.Fatalf("WriteCube error: %v", err)
				}
				got, err := ReadCube(format, s)
				if err != nil {
					t.Fatalf("ReadCube(%q) error: %v", s, err)
				}
				if got != c {
					t.Fatalf("round trip changed cube: %q", s)
				}
			}
		})
	}
}

func TestReadCubeAltCornerNames(t *testing.T) {
	// The H48 reader also accepts the spelling with the side stickers
	// swapped, e.g. URF for UFR.
	alt := "UF0 UB0 DB0 DF0 UR0 UL0 DL0 DR0 FR0 FL0 BL0 BR0 " +
		"URF0 ULB0 DLF0 DRB0 ULF0 URB0 DRF0 DLB0"
	c, err := ReadCube("H48", alt)
	if err != nil {
		t.Fatalf("ReadCube error: %v", err)
	}
	if !IsSolved(c) {
		t.Error("alternate corner spellings not accepted")
	}
}

func TestReadCubeErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		input  string
	}{
		{"unknown format", "B32", solvedH48},
		{"truncated H48", "H48", "UF0 UB0"},
		{"bad edge name", "H48", "XX0 UB0 DB0 DF0 UR0 UL0 DL0 DR0 FR0 FL0 BL0 BR0 UFR0 UBL0 DFL0 DBR0 UFL0 UBR0 DFR0 DBL0"},
		{"bad eo digit", "H48", "UF2 UB0 DB0 DF0 UR0 UL0 DL0 DR0 FR0 FL0 BL0 BR0 UFR0 UBL0 DFL0 DBR0 UFL0 UBR0 DFR0 DBL0"},
		{"duplicate piece", "H48", "UF0 UF0 DB0 DF0 UR0 UL0 DL0 DR0 FR0 FL0 BL0 BR0 UFR0 UBL0 DFL0 DBR0 UFL0 UBR0 DFR0 DBL0"},
		{"truncated LST", "LST", "0, 1, 2"},
		{"LST out of range", "LST", "999, 1, 2, 3, 4, 5, 6, 7, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11"},
		{"LST not a number", "LST", "a, 1, 2, 3, 4, 5, 6, 7, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadCube(tt.format, tt.input); err == nil {
				t.Errorf("ReadCube(%s, %q) succeeded, want error", tt.format, tt.input)
			}
		})
	}
}

func TestWriteCubeInconsistent(t *testing.T) {
	c := Solved()
	c.Corner[0] = 8
	if _, err := WriteCube("H48", c); err == nil {
		t.Error("WriteCube accepted an inconsistent cube")
	}
}
