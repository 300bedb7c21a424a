// Package puzzle ties together board, heuristic and search into the
// operations a caller actually wants: checking whether a board is
// solvable, parsing a line of tile numbers into a Board, solving a
// standalone 4x4 board, and solving the 4x4 lower-right corner of a
// larger N*N board by relabeling its corner tiles.
package puzzle
