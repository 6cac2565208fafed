// trans.go defines the 48 whole-cube symmetries: 24 rotations and their 24
// mirror images, each stored as a cube together with its inverse so that
// applying a transformation is a double composition. Mirrored transforms
// additionally invert every corner orientation.

package cube

// Trans indexes one of the 48 symmetries. A transformation is named by where
// it sends the U and F faces; indices 0-23 are rotations, 24-47 mirrors.
type Trans uint8

const (
	TransUFr Trans = iota
	TransULr
	TransUBr
	TransURr
	TransDFr
	TransDLr
	TransDBr
	TransDRr
	TransRUr
	TransRFr
	TransRDr
	TransRBr
	TransLUr
	TransLFr
	TransLDr
	TransLBr
	TransFUr
	TransFRr
	TransFDr
	TransFLr
	TransBUr
	TransBRr
	TransBDr
	TransBLr
	TransUFm
	TransULm
	TransUBm
	TransURm
	TransDFm
	TransDLm
	TransDBm
	TransDRm
	TransRUm
	TransRFm
	TransRDm
	TransRBm
	TransLUm
	TransLFm
	TransLDm
	TransLBm
	TransFUm
	TransFRm
	TransFDm
	TransFLm
	TransBUm
	TransBRm
	TransBDm
	TransBLm
)

// NTrans is the size of the symmetry group.
const NTrans = 48

var transStrings = [NTrans]string{
	"rotation UF", "rotation UL", "rotation UB", "rotation UR",
	"rotation DF", "rotation DL", "rotation DB", "rotation DR",
	"rotation RU", "rotation RF", "rotation RD", "rotation RB",
	"rotation LU", "rotation LF", "rotation LD", "rotation LB",
	"rotation FU", "rotation FR", "rotation FD", "rotation FL",
	"rotation BU", "rotation BR", "rotation BD", "rotation BL",
	"mirrored UF", "mirrored UL", "mirrored UB", "mirrored UR",
	"mirrored DF", "mirrored DL", "mirrored DB", "mirrored DR",
	"mirrored RU", "mirrored RF", "mirrored RD", "mirrored RB",
	"mirrored LU", "mirrored LF", "mirrored LD", "mirrored LB",
	"mirrored FU", "mirrored FR", "mirrored FD", "mirrored FL",
	"mirrored BU", "mirrored BR", "mirrored BD", "mirrored BL",
}

var inverseTrans = [NTrans]Trans{
	TransUFr: TransUFr,
	TransULr: TransURr,
	TransUBr: TransUBr,
	TransURr: TransULr,
	TransDFr: TransDFr,
	TransDLr: TransDLr,
	TransDBr: TransDBr,
	TransDRr: TransDRr,
	TransRUr: TransFRr,
	TransRFr: TransLFr,
	TransRDr: TransBLr,
	TransRBr: TransRBr,
	TransLUr: TransFLr,
	TransLFr: TransRFr,
	TransLDr: TransBRr,
	TransLBr: TransLBr,
	TransFUr: TransFUr,
	TransFRr: TransRUr,
	TransFDr: TransBUr,
	TransFLr: TransLUr,
	TransBUr: TransFDr,
	TransBRr: TransLDr,
	TransBDr: TransBDr,
	TransBLr: TransRDr,
	TransUFm: TransUFm,
	TransULm: TransULm,
	TransUBm: TransUBm,
	TransURm: TransURm,
	TransDFm: TransDFm,
	TransDLm: TransDRm,
	TransDBm: TransDBm,
	TransDRm: TransDLm,
	TransRUm: TransFLm,
	TransRFm: TransRFm,
	TransRDm: TransBRm,
	TransRBm: TransLBm,
	TransLUm: TransFRm,
	TransLFm: TransLFm,
	TransLDm: TransBLm,
	TransLBm: TransRBm,
	TransFUm: TransFUm,
	TransFRm: TransLUm,
	TransFDm: TransBUm,
	TransFLm: TransRUm,
	TransBUm: TransFDm,
	TransBRm: TransRDm,
	TransBDm: TransBDm,
	TransBLm: TransLDm,
}

var transCube = [NTrans]Cube{
	TransUFr: {Corner: [8]uint8{0, 1, 2, 3, 4, 5, 6, 7}, Edge: [12]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
	TransULr: {Corner: [8]uint8{4, 5, 7, 6, 1, 0, 2, 3}, Edge: [12]uint8{5, 4, 7, 6, 0, 1, 2, 3, 25, 26, 27, 24}},
	TransUBr: {Corner: [8]uint8{1, 0, 3, 2, 5, 4, 7, 6}, Edge: [12]uint8{1, 0, 3, 2, 5, 4, 7, 6, 10, 11, 8, 9}},
	TransURr: {Corner: [8]uint8{5, 4, 6, 7, 0, 1, 3, 2}, Edge: [12]uint8{4, 5, 6, 7, 1, 0, 3, 2, 27, 24, 25, 26}},
	TransDFr: {Corner: [8]uint8{2, 3, 0, 1, 6, 7, 4, 5}, Edge: [12]uint8{3, 2, 1, 0, 6, 7, 4, 5, 9, 8, 11, 10}},
	TransDLr: {Corner: [8]uint8{7, 6, 4, 5, 2, 3, 1, 0}, Edge: [12]uint8{6, 7, 4, 5, 2, 3, 0, 1, 26, 25, 24, 27}},
	TransDBr: {Corner: [8]uint8{3, 2, 1, 0, 7, 6, 5, 4}, Edge: [12]uint8{2, 3, 0, 1, 7, 6, 5, 4, 11, 10, 9, 8}},
	TransDRr: {Corner: [8]uint8{6, 7, 5, 4, 3, 2, 0, 1}, Edge: [12]uint8{7, 6, 5, 4, 3, 2, 1, 0, 24, 27, 26, 25}},
	TransRUr: {Corner: [8]uint8{64, 67, 65, 66, 37, 38, 36, 39}, Edge: [12]uint8{20, 23, 22, 21, 24, 27, 26, 25, 0, 1, 2, 3}},
	TransRFr: {Corner: [8]uint8{38, 37, 36, 39, 64, 67, 66, 65}, Edge: [12]uint8{24, 27, 26, 25, 23, 20, 21, 22, 19, 16, 17, 18}},
	TransRDr: {Corner: [8]uint8{67, 64, 66, 65, 38, 37, 39, 36}, Edge: [12]uint8{23, 20, 21, 22, 27, 24, 25, 26, 2, 3, 0, 1}},
	TransRBr: {Corner: [8]uint8{37, 38, 39, 36, 67, 64, 65, 66}, Edge: [12]uint8{27, 24, 25, 26, 20, 23, 22, 21, 17, 18, 19, 16}},
	TransLUr: {Corner: [8]uint8{65, 66, 64, 67, 36, 39, 37, 38}, Edge: [12]uint8{21, 22, 23, 20, 26, 25, 24, 27, 1, 0, 3, 2}},
	TransLFr: {Corner: [8]uint8{36, 39, 38, 37, 66, 65, 64, 67}, Edge: [12]uint8{25, 26, 27, 24, 21, 22, 23, 20, 16, 19, 18, 17}},
	TransLDr: {Corner: [8]uint8{66, 65, 67, 64, 39, 36, 38, 37}, Edge: [12]uint8{22, 21, 20, 23, 25, 26, 27, 24, 3, 2, 1, 0}},
	TransLBr: {Corner: [8]uint8{39, 36, 37, 38, 65, 66, 67, 64}, Edge: [12]uint8{26, 25, 24, 27, 22, 21, 20, 23, 18, 17, 16, 19}},
	TransFUr: {Corner: [8]uint8{68, 70, 69, 71, 32, 34, 33, 35}, Edge: [12]uint8{16, 19, 18, 17, 9, 8, 11, 10, 5, 4, 7, 6}},
	TransFRr: {Corner: [8]uint8{32, 34, 35, 33, 70, 68, 69, 71}, Edge: [12]uint8{8, 9, 10, 11, 16, 19, 18, 17, 20, 23, 22, 21}},
	TransFDr: {Corner: [8]uint8{70, 68, 71, 69, 34, 32, 35, 33}, Edge: [12]uint8{19, 16, 17, 18, 8, 9, 10, 11, 7, 6, 5, 4}},
	TransFLr: {Corner: [8]uint8{34, 32, 33, 35, 68, 70, 71, 69}, Edge: [12]uint8{9, 8, 11, 10, 19, 16, 17, 18, 22, 21, 20, 23}},
	TransBUr: {Corner: [8]uint8{69, 71, 68, 70, 33, 35, 32, 34}, Edge: [12]uint8{17, 18, 19, 16, 11, 10, 9, 8, 4, 5, 6, 7}},
	TransBRr: {Corner: [8]uint8{35, 33, 32, 34, 69, 71, 70, 68}, Edge: [12]uint8{11, 10, 9, 8, 18, 17, 16, 19, 23, 20, 21, 22}},
	TransBDr: {Corner: [8]uint8{71, 69, 70, 68, 35, 33, 34, 32}, Edge: [12]uint8{18, 17, 16, 19, 10, 11, 8, 9, 6, 7, 4, 5}},
	TransBLr: {Corner: [8]uint8{33, 35, 34, 32, 71, 69, 68, 70}, Edge: [12]uint8{10, 11, 8, 9, 17, 18, 19, 16, 21, 22, 23, 20}},
	TransUFm: {Corner: [8]uint8{4, 5, 6, 7, 0, 1, 2, 3}, Edge: [12]uint8{0, 1, 2, 3, 5, 4, 7, 6, 9, 8, 11, 10}},
	TransULm: {Corner: [8]uint8{0, 1, 3, 2, 5, 4, 6, 7}, Edge: [12]uint8{4, 5, 6, 7, 0, 1, 2, 3, 24, 27, 26, 25}},
	TransUBm: {Corner: [8]uint8{5, 4, 7, 6, 1, 0, 3, 2}, Edge: [12]uint8{1, 0, 3, 2, 4, 5, 6, 7, 11, 10, 9, 8}},
	TransURm: {Corner: [8]uint8{1, 0, 2, 3, 4, 5, 7, 6}, Edge: [12]uint8{5, 4, 7, 6, 1, 0, 3, 2, 26, 25, 24, 27}},
	TransDFm: {Corner: [8]uint8{6, 7, 4, 5, 2, 3, 0, 1}, Edge: [12]uint8{3, 2, 1, 0, 7, 6, 5, 4, 8, 9, 10, 11}},
	TransDLm: {Corner: [8]uint8{3, 2, 0, 1, 6, 7, 5, 4}, Edge: [12]uint8{7, 6, 5, 4, 2, 3, 0, 1, 27, 24, 25, 26}},
	TransDBm: {Corner: [8]uint8{7, 6, 5, 4, 3, 2, 1, 0}, Edge: [12]uint8{2, 3, 0, 1, 6, 7, 4, 5, 10, 11, 8, 9}},
	TransDRm: {Corner: [8]uint8{2, 3, 1, 0, 7, 6, 4, 5}, Edge: [12]uint8{6, 7, 4, 5, 3, 2, 1, 0, 25, 26, 27, 24}},
	TransRUm: {Corner: [8]uint8{68, 71, 69, 70, 33, 34, 32, 35}, Edge: [12]uint8{21, 22, 23, 20, 25, 26, 27, 24, 0, 1, 2, 3}},
	TransRFm: {Corner: [8]uint8{34, 33, 32, 35, 68, 71, 70, 69}, Edge: [12]uint8{25, 26, 27, 24, 22, 21, 20, 23, 19, 16, 17, 18}},
	TransRDm: {Corner: [8]uint8{71, 68, 70, 69, 34, 33, 35, 32}, Edge: [12]uint8{22, 21, 20, 23, 26, 25, 24, 27, 2, 3, 0, 1}},
	TransRBm: {Corner: [8]uint8{33, 34, 35, 32, 71, 68, 69, 70}, Edge: [12]uint8{26, 25, 24, 27, 21, 22, 23, 20, 17, 18, 19, 16}},
	TransLUm: {Corner: [8]uint8{69, 70, 68, 71, 32, 35, 33, 34}, Edge: [12]uint8{20, 23, 22, 21, 27, 24, 25, 26, 1, 0, 3, 2}},
	TransLFm: {Corner: [8]uint8{32, 35, 34, 33, 70, 69, 68, 71}, Edge: [12]uint8{24, 27, 26, 25, 20, 23, 22, 21, 16, 19, 18, 17}},
	TransLDm: {Corner: [8]uint8{70, 69, 71, 68, 35, 32, 34, 33}, Edge: [12]uint8{23, 20, 21, 22, 24, 27, 26, 25, 3, 2, 1, 0}},
	TransLBm: {Corner: [8]uint8{35, 32, 33, 34, 69, 70, 71, 68}, Edge: [12]uint8{27, 24, 25, 26, 23, 20, 21, 22, 18, 17, 16, 19}},
	TransFUm: {Corner: [8]uint8{64, 66, 65, 67, 36, 38, 37, 39}, Edge: [12]uint8{16, 19, 18, 17, 8, 9, 10, 11, 4, 5, 6, 7}},
	TransFRm: {Corner: [8]uint8{36, 38, 39, 37, 66, 64, 65, 67}, Edge: [12]uint8{9, 8, 11, 10, 16, 19, 18, 17, 21, 22, 23, 20}},
	TransFDm: {Corner: [8]uint8{66, 64, 67, 65, 38, 36, 39, 37}, Edge: [12]uint8{19, 16, 17, 18, 9, 8, 11, 10, 6, 7, 4, 5}},
	TransFLm: {Corner: [8]uint8{38, 36, 37, 39, 64, 66, 67, 65}, Edge: [12]uint8{8, 9, 10, 11, 19, 16, 17, 18, 23, 20, 21, 22}},
	TransBUm: {Corner: [8]uint8{65, 67, 64, 66, 37, 39, 36, 38}, Edge: [12]uint8{17, 18, 19, 16, 10, 11, 8, 9, 5, 4, 7, 6}},
	TransBRm: {Corner: [8]uint8{39, 37, 36, 38, 65, 67, 66, 64}, Edge: [12]uint8{10, 11, 8, 9, 18, 17, 16, 19, 22, 21, 20, 23}},
	TransBDm: {Corner: [8]uint8{67, 65, 66, 64, 39, 37, 38, 36}, Edge: [12]uint8{18, 17, 16, 19, 11, 10, 9, 8, 7, 6, 5, 4}},
	TransBLm: {Corner: [8]uint8{37, 39, 38, 36, 67, 65, 64, 66}, Edge: [12]uint8{11, 10, 9, 8, 17, 18, 19, 16, 20, 23, 22, 21}},
}

var transCubeInverse = [NTrans]Cube{
	TransUFr: {Corner: [8]uint8{0, 1, 2, 3, 4, 5, 6, 7}, Edge: [12]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
	TransULr: {Corner: [8]uint8{5, 4, 6, 7, 0, 1, 3, 2}, Edge: [12]uint8{4, 5, 6, 7, 1, 0, 3, 2, 27, 24, 25, 26}},
	TransUBr: {Corner: [8]uint8{1, 0, 3, 2, 5, 4, 7, 6}, Edge: [12]uint8{1, 0, 3, 2, 5, 4, 7, 6, 10, 11, 8, 9}},
	TransURr: {Corner: [8]uint8{4, 5, 7, 6, 1, 0, 2, 3}, Edge: [12]uint8{5, 4, 7, 6, 0, 1, 2, 3, 25, 26, 27, 24}},
	TransDFr: {Corner: [8]uint8{2, 3, 0, 1, 6, 7, 4, 5}, Edge: [12]uint8{3, 2, 1, 0, 6, 7, 4, 5, 9, 8, 11, 10}},
	TransDLr: {Corner: [8]uint8{7, 6, 4, 5, 2, 3, 1, 0}, Edge: [12]uint8{6, 7, 4, 5, 2, 3, 0, 1, 26, 25, 24, 27}},
	TransDBr: {Corner: [8]uint8{3, 2, 1, 0, 7, 6, 5, 4}, Edge: [12]uint8{2, 3, 0, 1, 7, 6, 5, 4, 11, 10, 9, 8}},
	TransDRr: {Corner: [8]uint8{6, 7, 5, 4, 3, 2, 0, 1}, Edge: [12]uint8{7, 6, 5, 4, 3, 2, 1, 0, 24, 27, 26, 25}},
	TransRUr: {Corner: [8]uint8{32, 34, 35, 33, 70, 68, 69, 71}, Edge: [12]uint8{8, 9, 10, 11, 16, 19, 18, 17, 20, 23, 22, 21}},
	TransRFr: {Corner: [8]uint8{36, 39, 38, 37, 66, 65, 64, 67}, Edge: [12]uint8{25, 26, 27, 24, 21, 22, 23, 20, 16, 19, 18, 17}},
	TransRDr: {Corner: [8]uint8{33, 35, 34, 32, 71, 69, 68, 70}, Edge: [12]uint8{10, 11, 8, 9, 17, 18, 19, 16, 21, 22, 23, 20}},
	TransRBr: {Corner: [8]uint8{37, 38, 39, 36, 67, 64, 65, 66}, Edge: [12]uint8{27, 24, 25, 26, 20, 23, 22, 21, 17, 18, 19, 16}},
	TransLUr: {Corner: [8]uint8{34, 32, 33, 35, 68, 70, 71, 69}, Edge: [12]uint8{9, 8, 11, 10, 19, 16, 17, 18, 22, 21, 20, 23}},
	TransLFr: {Corner: [8]uint8{38, 37, 36, 39, 64, 67, 66, 65}, Edge: [12]uint8{24, 27, 26, 25, 23, 20, 21, 22, 19, 16, 17, 18}},
	TransLDr: {Corner: [8]uint8{35, 33, 32, 34, 69, 71, 70, 68}, Edge: [12]uint8{11, 10, 9, 8, 18, 17, 16, 19, 23, 20, 21, 22}},
	TransLBr: {Corner: [8]uint8{39, 36, 37, 38, 65, 66, 67, 64}, Edge: [12]uint8{26, 25, 24, 27, 22, 21, 20, 23, 18, 17, 16, 19}},
	TransFUr: {Corner: [8]uint8{68, 70, 69, 71, 32, 34, 33, 35}, Edge: [12]uint8{16, 19, 18, 17, 9, 8, 11, 10, 5, 4, 7, 6}},
	TransFRr: {Corner: [8]uint8{64, 67, 65, 66, 37, 38, 36, 39}, Edge: [12]uint8{20, 23, 22, 21, 24, 27, 26, 25, 0, 1, 2, 3}},
	TransFDr: {Corner: [8]uint8{69, 71, 68, 70, 33, 35, 32, 34}, Edge: [12]uint8{17, 18, 19, 16, 11, 10, 9, 8, 4, 5, 6, 7}},
	TransFLr: {Corner: [8]uint8{65, 66, 64, 67, 36, 39, 37, 38}, Edge: [12]uint8{21, 22, 23, 20, 26, 25, 24, 27, 1, 0, 3, 2}},
	TransBUr: {Corner: [8]uint8{70, 68, 71, 69, 34, 32, 35, 33}, Edge: [12]uint8{19, 16, 17, 18, 8, 9, 10, 11, 7, 6, 5, 4}},
	TransBRr: {Corner: [8]uint8{66, 65, 67, 64, 39, 36, 38, 37}, Edge: [12]uint8{22, 21, 20, 23, 25, 26, 27, 24, 3, 2, 1, 0}},
	TransBDr: {Corner: [8]uint8{71, 69, 70, 68, 35, 33, 34, 32}, Edge: [12]uint8{18, 17, 16, 19, 10, 11, 8, 9, 6, 7, 4, 5}},
	TransBLr: {Corner: [8]uint8{67, 64, 66, 65, 38, 37, 39, 36}, Edge: [12]uint8{23, 20, 21, 22, 27, 24, 25, 26, 2, 3, 0, 1}},
	TransUFm: {Corner: [8]uint8{4, 5, 6, 7, 0, 1, 2, 3}, Edge: [12]uint8{0, 1, 2, 3, 5, 4, 7, 6, 9, 8, 11, 10}},
	TransULm: {Corner: [8]uint8{0, 1, 3, 2, 5, 4, 6, 7}, Edge: [12]uint8{4, 5, 6, 7, 0, 1, 2, 3, 24, 27, 26, 25}},
	TransUBm: {Corner: [8]uint8{5, 4, 7, 6, 1, 0, 3, 2}, Edge: [12]uint8{1, 0, 3, 2, 4, 5, 6, 7, 11, 10, 9, 8}},
	TransURm: {Corner: [8]uint8{1, 0, 2, 3, 4, 5, 7, 6}, Edge: [12]uint8{5, 4, 7, 6, 1, 0, 3, 2, 26, 25, 24, 27}},
	TransDFm: {Corner: [8]uint8{6, 7, 4, 5, 2, 3, 0, 1}, Edge: [12]uint8{3, 2, 1, 0, 7, 6, 5, 4, 8, 9, 10, 11}},
	TransDLm: {Corner: [8]uint8{2, 3, 1, 0, 7, 6, 4, 5}, Edge: [12]uint8{6, 7, 4, 5, 3, 2, 1, 0, 25, 26, 27, 24}},
	TransDBm: {Corner: [8]uint8{7, 6, 5, 4, 3, 2, 1, 0}, Edge: [12]uint8{2, 3, 0, 1, 6, 7, 4, 5, 10, 11, 8, 9}},
	TransDRm: {Corner: [8]uint8{3, 2, 0, 1, 6, 7, 5, 4}, Edge: [12]uint8{7, 6, 5, 4, 2, 3, 0, 1, 27, 24, 25, 26}},
	TransRUm: {Corner: [8]uint8{70, 68, 69, 71, 32, 34, 35, 33}, Edge: [12]uint8{8, 9, 10, 11, 19, 16, 17, 18, 23, 20, 21, 22}},
	TransRFm: {Corner: [8]uint8{66, 65, 64, 67, 36, 39, 38, 37}, Edge: [12]uint8{25, 26, 27, 24, 22, 21, 20, 23, 19, 16, 17, 18}},
	TransRDm: {Corner: [8]uint8{71, 69, 68, 70, 33, 35, 34, 32}, Edge: [12]uint8{10, 11, 8, 9, 18, 17, 16, 19, 22, 21, 20, 23}},
	TransRBm: {Corner: [8]uint8{67, 64, 65, 66, 37, 38, 39, 36}, Edge: [12]uint8{27, 24, 25, 26, 23, 20, 21, 22, 18, 17, 16, 19}},
	TransLUm: {Corner: [8]uint8{68, 70, 71, 69, 34, 32, 33, 35}, Edge: [12]uint8{9, 8, 11, 10, 16, 19, 18, 17, 21, 22, 23, 20}},
	TransLFm: {Corner: [8]uint8{64, 67, 66, 65, 38, 37, 36, 39}, Edge: [12]uint8{24, 27, 26, 25, 20, 23, 22, 21, 16, 19, 18, 17}},
	TransLDm: {Corner: [8]uint8{69, 71, 70, 68, 35, 33, 32, 34}, Edge: [12]uint8{11, 10, 9, 8, 17, 18, 19, 16, 20, 23, 22, 21}},
	TransLBm: {Corner: [8]uint8{65, 66, 67, 64, 39, 36, 37, 38}, Edge: [12]uint8{26, 25, 24, 27, 21, 22, 23, 20, 17, 18, 19, 16}},
	TransFUm: {Corner: [8]uint8{32, 34, 33, 35, 68, 70, 69, 71}, Edge: [12]uint8{16, 19, 18, 17, 8, 9, 10, 11, 4, 5, 6, 7}},
	TransFRm: {Corner: [8]uint8{37, 38, 36, 39, 64, 67, 65, 66}, Edge: [12]uint8{20, 23, 22, 21, 27, 24, 25, 26, 1, 0, 3, 2}},
	TransFDm: {Corner: [8]uint8{33, 35, 32, 34, 69, 71, 68, 70}, Edge: [12]uint8{17, 18, 19, 16, 10, 11, 8, 9, 5, 4, 7, 6}},
	TransFLm: {Corner: [8]uint8{36, 39, 37, 38, 65, 66, 64, 67}, Edge: [12]uint8{21, 22, 23, 20, 25, 26, 27, 24, 0, 1, 2, 3}},
	TransBUm: {Corner: [8]uint8{34, 32, 35, 33, 70, 68, 71, 69}, Edge: [12]uint8{19, 16, 17, 18, 9, 8, 11, 10, 6, 7, 4, 5}},
	TransBRm: {Corner: [8]uint8{39, 36, 38, 37, 66, 65, 67, 64}, Edge: [12]uint8{22, 21, 20, 23, 26, 25, 24, 27, 2, 3, 0, 1}},
	TransBDm: {Corner: [8]uint8{35, 33, 34, 32, 71, 69, 70, 68}, Edge: [12]uint8{18, 17, 16, 19, 11, 10, 9, 8, 7, 6, 5, 4}},
	TransBLm: {Corner: [8]uint8{38, 37, 39, 36, 67, 64, 66, 65}, Edge: [12]uint8{23, 20, 21, 22, 24, 27, 26, 25, 3, 2, 1, 0}},
}

// String returns the transformation in "rotation XY" / "mirrored XY" form.
func (t Trans) String() string {
	if t >= NTrans {
		return "error trans"
	}
	return transStrings[t]
}

// IsMirrored reports whether the transformation includes a reflection.
func (t Trans) IsMirrored() bool {
	return t >= TransUFm
}

// InverseTrans returns the inverse transformation.
func InverseTrans(t Trans) Trans {
	return inverseTrans[t]
}

// Transform conjugates the cube by the transformation t. For mirrored
// transforms the corner orientations of the result are inverted, because
// mirroring swaps clockwise and counterclockwise twists.
func (c Cube) Transform(t Trans) Cube {
	ret := Compose(Compose(transCube[t], c), transCubeInverse[t])
	if t.IsMirrored() {
		ret = InvertCO(ret)
	}
	return ret
}

// TransformEdges conjugates only the edges of the cube by t, leaving the
// corner slots untouched. Sufficient (and cheaper) when only edge-derived
// coordinates of the result are needed.
func (c Cube) TransformEdges(t Trans) Cube {
	ret := c
	ret.Edge = composeEdges(composeEdges(transCube[t].Edge, c.Edge), transCubeInverse[t].Edge)
	return ret
}

// ParseTrans parses a transformation string such as "rotation UF" or
// "mirrored BL".
func ParseTrans(s string) (Trans, error) {
	for t := Trans(0); t < NTrans; t++ {
		if len(s) >= 11 && s[:11] == transStrings[t] {
			return t, nil
		}
	}
	return 0, ErrInvalidTrans
}

func composeEdges(e1, e2 [12]uint8) [12]uint8 {
	var ret [12]uint8
	for i := 0; i < 12; i++ {
		piece2 := e2[i]
		piece1 := e1[piece2&pbits]
		ret[i] = (piece1 & pbits) | ((piece2 ^ piece1) & eoBit)
	}
	return ret
}
