// Package goh48 implements an optimal solver for the 3x3x3 Rubik's cube
// built around the H48 family of pruning tables, in pure Go.
//
// The cube is represented as a permutation with packed orientations: eight
// corner bytes and twelve edge bytes. Composition, inversion and the 48
// whole-cube symmetries are a handful of table lookups per piece, and the
// same representation doubles as the LST text format.
//
// # Pruning tables
//
// The solver's heuristics come from two tables generated by breadth-first
// exploration of the move graph and compressed through symmetry:
//
//   - cocsep: corner orientation and corner separation, reduced by the 48
//     symmetries to 3393 classes, with the transform to each class
//     representative and the distance to solved corners.
//   - h48: for every (class, edge separation, eo-prefix) triple, a lower
//     bound on the distance to the solved cube, stored 4 or 2 bits per
//     entry. The parameter h in [0, 11] selects how many edge-orientation
//     bits the coordinate keeps; every extra bit doubles the table and
//     sharpens the bound. 2-bit tables store max(0, depth-base) and fall
//     back to the full-precision h=0 table below the base.
//
// Tables are generated once with GenData, persisted verbatim, and consumed
// read-only by Solve.
//
// # Solving
//
// Solve runs an iterative-deepening depth-first search over the 18 face
// turns, walking the scramble and its inverse in lockstep and pruning with
// the table bounds of both cubes (NISS branching). Search is bounded by a
// move range, a solution count, and an optional optimality tolerance.
//
// # Formats
//
// Cubes read and write in two text formats: H48 (piece names plus
// orientation digits, e.g. "UF0 ... DBL0") and LST (the twenty raw bytes as
// decimal). Moves use standard face-turn notation ("R U2 F'"); whole-cube
// transformations are spelled like "rotation UF" or "mirrored BL".
package goh48
