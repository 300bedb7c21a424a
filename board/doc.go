// Package board models a single 4x4 sliding-tile puzzle: the tile layout,
// the fixed move table, the diagonal reflection symmetry, and the in-place
// apply/undo primitives the pattern-database builder and the IDA* engine
// both build on.
//
// A Board is a flat [16]Tile, row-major, with tile 0 denoting the empty
// cell. The move table is derived once, at package init, from the grid
// topology rather than hand-copied, but its shape and direction ordering
// (Down, Left, Up, Right) match the reference puzzle's layout exactly.
package board
