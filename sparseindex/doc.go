// Package sparseindex computes the bijection from a (board, pattern) pair
// to an integer in [0, 16^n): a unique key for the placement of a
// pattern's n tiles, independent of the empty cell's position and of
// every tile outside the pattern.
//
// Index and ReflectedIndex are the only two entry points; both the
// pattern-database builder and the heuristic oracle key the shared PDB
// table with Index(board, p.Tiles)+p.Offset or
// ReflectedIndex(board, p.ReflectedTiles)+p.Offset.
package sparseindex
