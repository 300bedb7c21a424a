package puzzle

import "errors"

// ErrUnsolvable is returned when a well-formed board fails the
// permutation-parity / empty-cell-distance solvability check. Passing
// such a board to search.Solve would raise the bound until a path passed
// search.MaxMoves, ending in search.ErrMoveOverflow.
var ErrUnsolvable = errors.New("puzzle: board is not solvable")

// ErrInvalidLine is returned by ParseLine when a line does not decode to
// exactly 16 tile numbers in [0, 15].
var ErrInvalidLine = errors.New("puzzle: line does not describe a valid board")

// ErrInvalidCorner is returned by SolveSubBoard when dim or offset do not
// describe a valid 4x4 corner of a dim*dim board.
var ErrInvalidCorner = errors.New("puzzle: invalid sub-board embedding parameters")
