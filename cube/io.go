// io.go implements the two textual cube formats.
//
// The H48 format spells each piece by the name of the piece currently in the
// slot plus its orientation: twelve edge tokens like "UF0", then eight corner
// tokens like "UFR2", separated by whitespace. The LST format is the raw
// byte representation, eight corner bytes then twelve edge bytes as decimal
// numbers separated by ", ".

package cube

import (
	"strconv"
	"strings"
)

var cornerStrings = [8]string{
	"UFR", "UBL", "DFL", "DBR", "UFL", "UBR", "DFR", "DBL",
}

// Alternate corner spellings with the faces of the two side stickers
// swapped, accepted on input.
var cornerStringsAlt = [8]string{
	"URF", "ULB", "DLF", "DRB", "ULF", "URB", "DRF", "DLB",
}

var edgeStrings = [12]string{
	"UF", "UB", "DB", "DF", "UR", "UL", "DL", "DR", "FR", "FL", "BL", "BR",
}

// ReadCube parses a cube in the given format ("H48" or "LST").
func ReadCube(format, s string) (Cube, error) {
	switch format {
	case "H48":
		return readCubeH48(s)
	case "LST":
		return readCubeLST(s)
	}
	return Cube{}, ErrInvalidFormat
}

// WriteCube formats a cube in the given format ("H48" or "LST"). The cube
// must be consistent.
func WriteCube(format string, c Cube) (string, error) {
	if !IsConsistent(c) {
		return "", ErrInconsistent
	}
	switch format {
	case "H48":
		return writeCubeH48(c), nil
	case "LST":
		return writeCubeLST(c), nil
	}
	return "", ErrInvalidFormat
}

func readCubeH48(s string) (Cube, error) {
	var ret Cube

	fields := strings.Fields(s)
	if len(fields) != 20 {
		return Cube{}, ErrInvalidFormat
	}

	for i := 0; i < 12; i++ {
		tok := fields[i]
		if len(tok) != 3 {
			return Cube{}, ErrInvalidFormat
		}
		piece, ok := readEdgePiece(tok[:2])
		if !ok {
			return Cube{}, ErrInvalidFormat
		}
		switch tok[2] {
		case '0':
		case '1':
			piece |= eoBit
		default:
			return Cube{}, ErrInvalidFormat
		}
		ret.Edge[i] = piece
	}

	for i := 0; i < 8; i++ {
		tok := fields[12+i]
		if len(tok) != 4 {
			return Cube{}, ErrInvalidFormat
		}
		piece, ok := readCornerPiece(tok[:3])
		if !ok {
			return Cube{}, ErrInvalidFormat
		}
		switch tok[3] {
		case '0':
		case '1':
			piece |= ctwistCW
		case '2':
			piece |= 2 * ctwistCW
		default:
			return Cube{}, ErrInvalidFormat
		}
		ret.Corner[i] = piece
	}

	if !IsConsistent(ret) {
		return Cube{}, ErrInconsistent
	}
	return ret, nil
}

func readEdgePiece(s string) (uint8, bool) {
	for e := uint8(0); e < 12; e++ {
		if s == edgeStrings[e] {
			return e, true
		}
	}
	return 0, false
}

func readCornerPiece(s string) (uint8, bool) {
	for c := uint8(0); c < 8; c++ {
		if s == cornerStrings[c] || s == cornerStringsAlt[c] {
			return c, true
		}
	}
	return 0, false
}

func writeCubeH48(c Cube) string {
	var b strings.Builder
	for i := 0; i < 12; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		piece := c.Edge[i]
		b.WriteString(edgeStrings[piece&pbits])
		b.WriteByte('0' + (piece&eoBit)>>eoShift)
	}
	for i := 0; i < 8; i++ {
		b.WriteByte(' ')
		piece := c.Corner[i]
		b.WriteString(cornerStrings[piece&pbits])
		b.WriteByte('0' + (piece&coBits)>>coShift)
	}
	return b.String()
}

func readCubeLST(s string) (Cube, error) {
	var ret Cube

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) != 20 {
		return Cube{}, ErrInvalidFormat
	}

	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return Cube{}, ErrInvalidFormat
		}
		if i < 8 {
			ret.Corner[i] = uint8(v)
		} else {
			ret.Edge[i-8] = uint8(v)
		}
	}

	if !IsConsistent(ret) {
		return Cube{}, ErrInconsistent
	}
	return ret, nil
}

func writeCubeLST(c Cube) string {
	var b strings.Builder
	for i := 0; i < 8; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(int(c.Corner[i])))
	}
	for i := 0; i < 12; i++ {
		b.WriteString(", ")
		b.WriteString(strconv.Itoa(int(c.Edge[i])))
	}
	return b.String()
}
