package sparseindex

import (
	"fmt"

	"github.com/tilepuzzle/fifteen/board"
)

// Index computes Σ pos(tiles[i], b) * 16^i for the given tile order,
// where pos(t, b) is the board index currently holding tile t. The
// result is in [0, 16^len(tiles)) and depends only on the positions of
// the named tiles — not on the empty cell or on any other tile.
//
// tiles must each appear exactly once in b; Index panics otherwise, since
// that can only happen for a malformed Board, a precondition Index's
// callers (the PDB builder and the heuristic oracle) already guarantee.
func Index(b board.Board, tiles []board.Tile) int {
	idx := 0
	pow := 1
	for _, tile := range tiles {
		idx += positionOf(b, tile) * pow
		pow *= board.NumCells
	}
	return idx
}

// ReflectedIndex is Index computed against the board reflected about the
// main diagonal: each tile's board position is mapped through
// board.Reflect before being weighted, and reflectedTiles (the pattern's
// ReflectedTiles, in the same walk order as its Tiles) names which tile
// occupies each reflected slot.
func ReflectedIndex(b board.Board, reflectedTiles []board.Tile) int {
	idx := 0
	pow := 1
	for _, tile := range reflectedTiles {
		idx += board.Reflect(positionOf(b, tile)) * pow
		pow *= board.NumCells
	}
	return idx
}

func positionOf(b board.Board, tile board.Tile) int {
	for i, t := range b {
		if t == tile {
			return i
		}
	}
	panic(fmt.Sprintf("sparseindex: tile %d not present on board %v", tile, b))
}
