package puzzle

import (
	"fmt"

	"github.com/tilepuzzle/fifteen/board"
	"github.com/tilepuzzle/fifteen/heuristic"
	"github.com/tilepuzzle/fifteen/search"
)

// Solve returns an optimal move sequence for b, rejecting b up front with
// ErrUnsolvable rather than letting the search raise its bound until a
// path overflows search.MaxMoves.
func Solve(b board.Board, oracle *heuristic.Oracle) ([]board.Tile, error) {
	if !Solvable(b) {
		return nil, ErrUnsolvable
	}
	return search.Solve(b, oracle)
}

// SolveSubBoard solves the 4x4 lower-right corner of a larger dim*dim
// board, given as a row-major slice of tile numbers (0 for empty) in
// [0, dim*dim). offset marks where the corner begins: rows and columns
// offset..dim-1. It returns, in order, the full-board tile numbers that
// must be moved to solve that corner — not applied to full, since
// SolveSubBoard has no notion of the rest of the board's layout beyond
// the corner it was given.
func SolveSubBoard(full []int, dim, offset int, oracle *heuristic.Oracle) ([]int, error) {
	if dim <= 0 || offset < 0 || dim-offset != board.Side || len(full) != dim*dim {
		return nil, ErrInvalidCorner
	}

	corner, err := embedCorner(full, dim, offset)
	if err != nil {
		return nil, err
	}

	moves, err := search.Solve(corner, oracle)
	if err != nil {
		return nil, err
	}

	out := make([]int, len(moves))
	for i, tile := range moves {
		out[i] = unembedTile(tile, dim, offset)
	}
	return out, nil
}

// embedCorner relabels the dim*dim board's bottom-right 4x4 corner into
// a local board.Board: the tile occupying each corner cell is replaced
// by the local tile number its *solved destination* maps to once that
// destination is shifted into corner-local coordinates. This way the
// local search only ever reasons about arrangements relative to the
// corner, regardless of where in the full board those tiles actually
// belong.
func embedCorner(full []int, dim, offset int) (board.Board, error) {
	var b board.Board
	i := 0
	for row := offset; row < dim; row++ {
		for col := offset; col < dim; col++ {
			v := full[row*dim+col]
			if v == 0 {
				b[i] = board.EmptyTile
				i++
				continue
			}
			pos := v - 1
			adjustedRow := pos/dim - offset
			adjustedCol := pos%dim - offset
			if adjustedRow < 0 || adjustedRow >= board.Side || adjustedCol < 0 || adjustedCol >= board.Side {
				return b, fmt.Errorf("%w: tile %d destination falls outside the corner", ErrInvalidCorner, v)
			}
			b[i] = board.Tile(adjustedRow*board.Side + adjustedCol + 1)
			i++
		}
	}
	return b, nil
}

// unembedTile reverses embedCorner's relabeling for a single move: given
// a local tile number produced by the corner search, it returns the
// full-board tile number whose destination that local tile stood for.
func unembedTile(tile board.Tile, dim, offset int) int {
	adjustedRow := (int(tile) - 1) / board.Side
	adjustedCol := (int(tile) - 1) % board.Side
	return (adjustedRow+offset)*dim + (adjustedCol + offset) + 1
}
