package search

import "errors"

// ErrSearchExhausted is returned when an iteration cuts off no path at
// all, so there is no larger bound to try. A solvable board always
// terminates before this; an unsolvable one ends in ErrMoveOverflow.
var ErrSearchExhausted = errors.New("search: exhausted all bounds without finding a solution")

// ErrMoveOverflow is returned if a search path grows past MaxMoves moves
// deep, which optimal solutions to a solvable 4x4 board never do.
var ErrMoveOverflow = errors.New("search: move list exceeded maximum solution length")
